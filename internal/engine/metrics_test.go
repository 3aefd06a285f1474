package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestIncrTranscriptFailure(t *testing.T) {
	before := GetMetrics()
	IncrTranscriptFailure("transport")
	IncrTranscriptFailure("token_not_found")
	IncrTranscriptFailure("response_parse")
	IncrTranscriptFailure("canceled")
	after := GetMetrics()

	for _, k := range []string{"transcript_transport_errors", "transcript_token_errors", "transcript_parse_errors"} {
		if after[k]-before[k] != 1 {
			t.Errorf("%s delta = %d, want 1", k, after[k]-before[k])
		}
	}
}

func TestFormatMetrics(t *testing.T) {
	IncrTranscriptRequests()
	IncrTranscriptCues(3)
	out := FormatMetrics()
	for _, k := range []string{"transcript_requests ", "transcript_cues ", "cache_hits ", "cache_misses "} {
		if !strings.Contains(out, k) {
			t.Errorf("FormatMetrics() missing %q:\n%s", k, out)
		}
	}
	if got := strings.Count(out, "\n"); got != len(GetMetrics()) {
		t.Errorf("FormatMetrics() lines = %d, want %d", got, len(GetMetrics()))
	}
}

func TestTrackOperation(t *testing.T) {
	want := errors.New("boom")
	err := TrackOperation(context.Background(), "op", func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Errorf("TrackOperation() = %v, want %v", err, want)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TRANSCRIPT_WINDOW", "45s")
	t.Setenv("YT_CLIENT_VERSION", "2.20240101.00.00")
	t.Setenv("LLM_API_KEY", "")

	c := ConfigFromEnv()
	if c.TranscriptWindow.Seconds() != 45 {
		t.Errorf("TranscriptWindow = %v, want 45s", c.TranscriptWindow)
	}
	if c.Innertube.Version != "2.20240101.00.00" {
		t.Errorf("Innertube.Version = %q", c.Innertube.Version)
	}
	if c.WatchURL != DefaultWatchURL || c.Innertube.Name != "WEB" {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.LLMClient != nil {
		t.Error("LLMClient should be nil without LLM_API_KEY")
	}
}
