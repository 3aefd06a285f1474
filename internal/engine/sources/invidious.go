package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"golang.org/x/time/rate"
)

// Invidious mirror: video search and metadata. Only the presentation layer
// uses it; transcripts always come from YouTube directly.

// ErrMirror marks failures talking to the Invidious instance.
var ErrMirror = errors.New("invidious mirror failure")

const mirrorMaxBytes = 4 * 1024 * 1024

// Invidious is a rate-limited client for one Invidious instance's /api/v1.
type Invidious struct {
	apiURL  string
	limiter *rate.Limiter
}

// NewInvidious returns a client for the instance at baseURL (scheme + host).
// rps <= 0 disables rate limiting.
func NewInvidious(baseURL string, rps float64) *Invidious {
	lim := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		lim = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Invidious{
		apiURL:  strings.TrimRight(baseURL, "/") + "/api/v1",
		limiter: lim,
	}
}

// Process-wide instance, resolved on first use and kept for process lifetime.
// A failed resolution is not remembered so the next call tries again.
var defaultMirror struct {
	mu sync.Mutex
	iv *Invidious
}

// DefaultInvidious returns the process-wide Invidious client, resolving the
// instance on first use.
func DefaultInvidious(ctx context.Context) (*Invidious, error) {
	defaultMirror.mu.Lock()
	defer defaultMirror.mu.Unlock()
	if defaultMirror.iv != nil {
		return defaultMirror.iv, nil
	}
	base, err := ResolveInvidiousURL(ctx)
	if err != nil {
		return nil, err
	}
	defaultMirror.iv = NewInvidious(base, engine.Cfg.InvidiousRPS)
	slog.Info("invidious: using instance", slog.String("api", defaultMirror.iv.apiURL))
	return defaultMirror.iv, nil
}

// resetDefaultInvidious drops the cached instance (tests).
func resetDefaultInvidious() {
	defaultMirror.mu.Lock()
	defaultMirror.iv = nil
	defaultMirror.mu.Unlock()
}

// ResolveInvidiousURL returns https://<host> when a host is configured,
// otherwise a random public instance with API support.
func ResolveInvidiousURL(ctx context.Context) (string, error) {
	if host := engine.Cfg.InvidiousHost; host != "" {
		if strings.Contains(host, "://") {
			return host, nil
		}
		return "https://" + host, nil
	}

	data, err := mirrorGet(ctx, nil, engine.Cfg.InvidiousInstancesURL)
	if err != nil {
		return "", fmt.Errorf("instance list: %w", err)
	}
	return pickInstance(data, rand.Intn)
}

// instanceInfo is the second element of each instances.json entry.
type instanceInfo struct {
	API  *bool  `json:"api"`
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// pickInstance chooses one https instance with api enabled from instances.json,
// whose entries are [name, info] pairs.
func pickInstance(data []byte, intn func(int) int) (string, error) {
	var entries [][]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("%w: decode instance list: %w", ErrMirror, err)
	}
	var uris []string
	for _, e := range entries {
		if len(e) < 2 {
			continue
		}
		var info instanceInfo
		if err := json.Unmarshal(e[1], &info); err != nil {
			continue
		}
		if info.API != nil && *info.API && info.Type == "https" && info.URI != "" {
			uris = append(uris, info.URI)
		}
	}
	if len(uris) == 0 {
		return "", fmt.Errorf("%w: no https instance with api support", ErrMirror)
	}
	return uris[intn(len(uris))], nil
}

// mirrorGet GETs rawURL with retries and returns the body. lim may be nil.
func mirrorGet(ctx context.Context, lim *rate.Limiter, rawURL string) ([]byte, error) {
	if lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return nil, err
		}
	}
	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		req.Header.Set("Accept", "application/json")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		engine.IncrMirrorErrors()
		return nil, fmt.Errorf("%w: %w", ErrMirror, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrMirrorErrors()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrMirror, resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, mirrorMaxBytes))
}

// --- /api/v1 response types ---

type invThumbnail struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

type invSearchItem struct {
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	VideoID         string         `json:"videoId"`
	Author          string         `json:"author"`
	LengthSeconds   int            `json:"lengthSeconds"`
	VideoThumbnails []invThumbnail `json:"videoThumbnails"`
}

type invFormat struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type invVideo struct {
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	DescriptionHTML string      `json:"descriptionHtml"`
	AdaptiveFormats []invFormat `json:"adaptiveFormats"`
}

// Search runs a video search on the instance.
func (iv *Invidious) Search(ctx context.Context, term string) ([]engine.VideoResult, error) {
	engine.IncrSearchRequests()
	q := url.Values{}
	q.Set("q", term)
	q.Set("type", "video")

	data, err := mirrorGet(ctx, iv.limiter, iv.apiURL+"/search?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	var items []invSearchItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode search: %w", ErrMirror, err)
	}

	results := make([]engine.VideoResult, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" || (it.Type != "" && it.Type != "video") {
			continue
		}
		results = append(results, engine.VideoResult{
			ID:            it.VideoID,
			Title:         it.Title,
			Author:        it.Author,
			ThumbnailURL:  thumbnailURL(it.VideoThumbnails, "medium"),
			LengthSeconds: it.LengthSeconds,
			URL:           engine.DefaultWatchURL + "?v=" + it.VideoID,
		})
	}
	return results, nil
}

// thumbnailURL returns the URL of the first thumbnail with the given quality.
func thumbnailURL(thumbs []invThumbnail, quality string) string {
	for _, t := range thumbs {
		if t.Quality == quality {
			return t.URL
		}
	}
	return ""
}

// VideoInfo fetches metadata for one video.
func (iv *Invidious) VideoInfo(ctx context.Context, videoID string) (engine.VideoInfo, error) {
	engine.IncrVideoInfoRequests()
	if videoID == "" {
		return engine.VideoInfo{}, ErrInvalidVideoID
	}

	data, err := mirrorGet(ctx, iv.limiter, iv.apiURL+"/videos/"+url.PathEscape(videoID))
	if err != nil {
		return engine.VideoInfo{}, fmt.Errorf("video info: %w", err)
	}
	var v invVideo
	if err := json.Unmarshal(data, &v); err != nil {
		return engine.VideoInfo{}, fmt.Errorf("%w: decode video: %w", ErrMirror, err)
	}

	info := engine.VideoInfo{
		ID:          videoID,
		Title:       v.Title,
		Author:      v.Author,
		Description: descriptionMarkdown(v.DescriptionHTML),
		AudioURL:    audioURL(v.AdaptiveFormats),
	}
	if info.Title == "" {
		info.Title = "some video"
	}
	if info.Author == "" {
		info.Author = "unknown"
	}
	return info, nil
}

// audioURL returns the first audio/mp4 adaptive format, or "#".
func audioURL(formats []invFormat) string {
	for _, f := range formats {
		if strings.Contains(f.Type, "audio/mp4") && f.URL != "" {
			return f.URL
		}
	}
	return "#"
}

// descriptionMarkdown converts the description HTML to markdown, falling back
// to stripped text.
func descriptionMarkdown(descHTML string) string {
	if strings.TrimSpace(descHTML) == "" {
		return ""
	}
	md, err := htmltomarkdown.ConvertString(descHTML)
	if err != nil {
		return engine.CleanHTML(descHTML)
	}
	return strings.TrimSpace(md)
}
