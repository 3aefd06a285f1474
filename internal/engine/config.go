package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// InnertubeClient is the client context sent to the Innertube API.
// YouTube validates these loosely and may start rejecting stale versions,
// so they are rotated through env rather than hard-coded in the sources.
type InnertubeClient struct {
	Name      string
	Version   string
	UserAgent string
}

// Config holds all engine configuration, injected from main.
type Config struct {
	WatchURL      string // watch page base, video id goes in ?v=
	TranscriptURL string // Innertube get_transcript endpoint
	Innertube     InnertubeClient
	PageUserAgent string // empty = random desktop browser UA per request

	TranscriptWindow time.Duration // consolidation window

	InvidiousHost         string // empty = pick a random public instance
	InvidiousInstancesURL string
	InvidiousRPS          float64

	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMClient      *llm.Client // nil = summaries disabled

	MaxTranscriptChars   int // cap on transcript text sent to the LLM
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
}

// Defaults used when a Config field is left empty.
const (
	DefaultWatchURL              = "https://www.youtube.com/watch"
	DefaultTranscriptURL         = "https://www.youtube.com/youtubei/v1/get_transcript"
	DefaultInnertubeClientName   = "WEB"
	DefaultInnertubeVersion      = "2.20250222.10.00"
	DefaultInvidiousInstancesURL = "https://api.invidious.io/instances.json?sort_by=type"
	DefaultTranscriptWindow      = 30 * time.Second
)

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Empty protocol fields fall back to the package defaults.
func Init(c Config) {
	if c.WatchURL == "" {
		c.WatchURL = DefaultWatchURL
	}
	if c.TranscriptURL == "" {
		c.TranscriptURL = DefaultTranscriptURL
	}
	if c.Innertube.Name == "" {
		c.Innertube.Name = DefaultInnertubeClientName
	}
	if c.Innertube.Version == "" {
		c.Innertube.Version = DefaultInnertubeVersion
	}
	if c.Innertube.UserAgent == "" {
		c.Innertube.UserAgent = UserAgentChrome
	}
	if c.TranscriptWindow <= 0 {
		c.TranscriptWindow = DefaultTranscriptWindow
	}
	if c.InvidiousInstancesURL == "" {
		c.InvidiousInstancesURL = DefaultInvidiousInstancesURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	cfg = c
	Cfg = &cfg
}
