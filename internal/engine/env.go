package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
)

// ConfigFromEnv reads the engine configuration from the environment.
// The LLM client is built here too; it stays nil without LLM_API_KEY.
func ConfigFromEnv() Config {
	c := Config{
		WatchURL:      env.Str("YT_WATCH_URL", DefaultWatchURL),
		TranscriptURL: env.Str("YT_TRANSCRIPT_URL", DefaultTranscriptURL),
		Innertube: InnertubeClient{
			Name:      env.Str("YT_CLIENT_NAME", DefaultInnertubeClientName),
			Version:   env.Str("YT_CLIENT_VERSION", DefaultInnertubeVersion),
			UserAgent: env.Str("YT_CLIENT_USER_AGENT", UserAgentChrome),
		},
		PageUserAgent:         env.Str("YT_PAGE_USER_AGENT", ""),
		TranscriptWindow:      env.Duration("TRANSCRIPT_WINDOW", DefaultTranscriptWindow),
		InvidiousHost:         env.Str("YOUTRANSCRIPT_INVIDIOUS_HOST", ""),
		InvidiousInstancesURL: env.Str("INVIDIOUS_INSTANCES_URL", DefaultInvidiousInstancesURL),
		InvidiousRPS:          env.Float("INVIDIOUS_RPS", 2),
		LLMAPIKey:             env.Str("LLM_API_KEY", ""),
		LLMAPIBase:            env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:              env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:        env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:          env.Int("LLM_MAX_TOKENS", 4096),
		MaxTranscriptChars:    env.Int("MAX_TRANSCRIPT_CHARS", 60000),
		CacheMaxEntries:       env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval:  env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: env.Duration("FETCH_TIMEOUT", 15*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	c.LLMClient = NewLLMClient(c)
	return c
}
