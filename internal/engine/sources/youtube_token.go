package sources

import (
	"fmt"
	"strings"
)

// Watch page tokens needed by get_transcript.
const (
	tokenAPIKey      = "INNERTUBE_API_KEY"
	tokenShareEntity = "serializedShareEntity"
)

// ExtractToken returns the value of the first `"name":"value"` pair in page.
// It is a plain string scan, not an HTML or JS parser: the value runs up to the
// next double quote, which holds for the two tokens YouTube embeds.
func ExtractToken(page, name string) (string, error) {
	marker := `"` + name + `":"`
	i := strings.Index(page, marker)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrTokenNotFound, name)
	}
	rest := page[i+len(marker):]
	if j := strings.IndexByte(rest, '"'); j >= 0 {
		return rest[:j], nil
	}
	return rest, nil
}

// extractTokens pulls the API key and share entity descriptor from the watch page.
func extractTokens(page string) (apiKey, shareEntity string, err error) {
	if apiKey, err = ExtractToken(page, tokenAPIKey); err != nil {
		return "", "", err
	}
	if shareEntity, err = ExtractToken(page, tokenShareEntity); err != nil {
		return "", "", err
	}
	return apiKey, shareEntity, nil
}
