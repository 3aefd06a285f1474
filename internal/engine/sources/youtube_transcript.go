package sources

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Transcript is a fetched, consolidated transcript plus the page title.
type Transcript struct {
	VideoID string
	Title   string
	Cues    []Cue
}

// FetchTranscript fetches the transcript for videoID and consolidates it with
// the configured window:
//  1. GET watch page → INNERTUBE_API_KEY + serializedShareEntity
//  2. POST get_transcript with both tokens
//  3. walk the response into raw cues and consolidate
func FetchTranscript(ctx context.Context, videoID string) ([]Cue, error) {
	t, err := FetchTranscriptWindow(ctx, videoID, engine.Cfg.TranscriptWindow.Seconds())
	if err != nil {
		return nil, err
	}
	return t.Cues, nil
}

// FetchTranscriptWindow is FetchTranscript with an explicit window in seconds
// (<= 0 uses the configured one). It also returns the page title.
func FetchTranscriptWindow(ctx context.Context, videoID string, window float64) (Transcript, error) {
	engine.IncrTranscriptRequests()
	if window <= 0 {
		window = engine.Cfg.TranscriptWindow.Seconds()
	}

	raw, title, err := fetchRawCues(ctx, videoID)
	if err != nil {
		kind := ErrorKind(err)
		engine.IncrTranscriptFailure(kind)
		slog.Warn("youtube: transcript failed",
			slog.String("video_id", videoID), slog.String("kind", kind), slog.Any("error", err))
		return Transcript{}, err
	}

	cues := Consolidate(raw, window)
	engine.IncrTranscriptCues(len(raw))
	slog.Debug("youtube: transcript fetched",
		slog.String("video_id", videoID),
		slog.Int("raw_cues", len(raw)),
		slog.Int("blocks", len(cues)))

	return Transcript{VideoID: videoID, Title: title, Cues: cues}, nil
}

// fetchRawCues runs the page → tokens → API → walk steps.
func fetchRawCues(ctx context.Context, videoID string) ([]Cue, string, error) {
	page, err := fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	apiKey, shareEntity, err := extractTokens(page)
	if err != nil {
		return nil, "", err
	}

	tree, err := postGetTranscript(ctx, apiKey, shareEntity)
	if err != nil {
		return nil, "", err
	}

	raw, err := ParseCues(tree)
	if err != nil {
		return nil, "", err
	}
	return raw, PageTitle(page), nil
}
