package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests  atomic.Int64
	TranscriptTransport atomic.Int64
	TranscriptToken     atomic.Int64
	TranscriptParse     atomic.Int64
	TranscriptCues      atomic.Int64
	SearchRequests      atomic.Int64
	VideoInfoRequests   atomic.Int64
	MirrorErrors        atomic.Int64
	SummaryRequests     atomic.Int64
	LLMErrors           atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"transcript_requests":         metrics.TranscriptRequests.Load(),
		"transcript_transport_errors": metrics.TranscriptTransport.Load(),
		"transcript_token_errors":     metrics.TranscriptToken.Load(),
		"transcript_parse_errors":     metrics.TranscriptParse.Load(),
		"transcript_cues":             metrics.TranscriptCues.Load(),
		"search_requests":             metrics.SearchRequests.Load(),
		"video_info_requests":         metrics.VideoInfoRequests.Load(),
		"mirror_errors":               metrics.MirrorErrors.Load(),
		"summary_requests":            metrics.SummaryRequests.Load(),
		"llm_errors":                  metrics.LLMErrors.Load(),
		"cache_hits":                  hits,
		"cache_misses":                misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests",
		"transcript_transport_errors", "transcript_token_errors", "transcript_parse_errors",
		"transcript_cues",
		"search_requests", "video_info_requests", "mirror_errors",
		"summary_requests", "llm_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrTranscriptRequests()  { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptCues(n int) { metrics.TranscriptCues.Add(int64(n)) }
func IncrSearchRequests()      { metrics.SearchRequests.Add(1) }
func IncrVideoInfoRequests()   { metrics.VideoInfoRequests.Add(1) }
func IncrMirrorErrors()        { metrics.MirrorErrors.Add(1) }

// IncrTranscriptFailure counts a failed transcript fetch by error kind.
func IncrTranscriptFailure(kind string) {
	switch kind {
	case "transport":
		metrics.TranscriptTransport.Add(1)
	case "token_not_found":
		metrics.TranscriptToken.Add(1)
	case "response_parse":
		metrics.TranscriptParse.Add(1)
	}
}

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
