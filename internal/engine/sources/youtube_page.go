package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"golang.org/x/net/html"
)

const watchPageMaxBytes = 6 * 1024 * 1024

// pageUserAgent returns the configured page UA or a random desktop browser UA.
// YouTube serves a different page to non-browser agents.
func pageUserAgent() string {
	if engine.Cfg.PageUserAgent != "" {
		return engine.Cfg.PageUserAgent
	}
	return engine.RandomUserAgent()
}

// watchPageURL builds the watch page URL for videoID.
func watchPageURL(videoID string) string {
	return engine.Cfg.WatchURL + "?v=" + url.QueryEscape(videoID)
}

// fetchWatchPage GETs the watch page HTML. Single attempt, no retry.
func fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", ErrInvalidVideoID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchPageURL(videoID), nil)
	if err != nil {
		return "", fmt.Errorf("%w: watch page request: %w", ErrTransport, err)
	}
	for k, v := range engine.ChromeHeaders() {
		req.Header.Set(k, v)
	}
	// net/http only decompresses transparently when it sets Accept-Encoding itself.
	req.Header.Del("Accept-Encoding")
	req.Header.Set("User-Agent", pageUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: watch page: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: watch page: HTTP %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, watchPageMaxBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read watch page: %w", ErrTransport, err)
	}
	return string(body), nil
}

// PageTitle returns the video title from a watch page: og:title when present,
// otherwise <title> without the " - YouTube" suffix. Empty if neither exists.
func PageTitle(page string) string {
	z := html.NewTokenizer(strings.NewReader(page))
	var title string
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(title), "- YouTube"))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "meta":
				var prop, content string
				for _, a := range tok.Attr {
					switch a.Key {
					case "property", "name":
						prop = a.Val
					case "content":
						content = a.Val
					}
				}
				if prop == "og:title" && content != "" {
					return strings.TrimSpace(content)
				}
			case "title":
				inTitle = title == ""
			}
		case html.TextToken:
			if inTitle {
				title += string(z.Text())
			}
		case html.EndTagToken:
			if tn, _ := z.TagName(); string(tn) == "title" {
				inTitle = false
			}
		}
	}
}
