package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// YouTube Innertube get_transcript: request types and the single POST.

const transcriptMaxBytes = 8 * 1024 * 1024

type getTranscriptReq struct {
	Context innertubeCtx `json:"context"`
	Params  string       `json:"params"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	UserAgent     string `json:"userAgent"`
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

// newGetTranscriptReq builds the request body from the configured client context.
func newGetTranscriptReq(shareEntity string) getTranscriptReq {
	c := engine.Cfg.Innertube
	return getTranscriptReq{
		Context: innertubeCtx{Client: innertubeClient{
			UserAgent:     c.UserAgent,
			ClientName:    c.Name,
			ClientVersion: c.Version,
		}},
		Params: shareEntity,
	}
}

// getTranscriptURL appends the API key to the configured endpoint.
func getTranscriptURL(apiKey string) (string, error) {
	u, err := url.Parse(engine.Cfg.TranscriptURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// postGetTranscript POSTs to get_transcript and decodes the response as a
// generic JSON tree. Single attempt, no retry.
func postGetTranscript(ctx context.Context, apiKey, shareEntity string) (map[string]any, error) {
	bodyBytes, err := json.Marshal(newGetTranscriptReq(shareEntity))
	if err != nil {
		return nil, err
	}
	endpoint, err := getTranscriptURL(apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: transcript endpoint: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: get_transcript request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", engine.Cfg.Innertube.UserAgent)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get_transcript: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: get_transcript: HTTP %d: %s", ErrTransport, resp.StatusCode, snippet)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, transcriptMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read get_transcript: %w", ErrTransport, err)
	}

	var tree map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: decode get_transcript: %w", ErrResponseParse, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: get_transcript returned null", ErrResponseParse)
	}
	return tree, nil
}
