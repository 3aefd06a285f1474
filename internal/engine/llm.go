package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// ErrLLMDisabled is returned when no LLM client is configured.
var ErrLLMDisabled = errors.New("llm not configured (set LLM_API_KEY)")

// ErrEmptyTranscript is returned when there is nothing to summarize.
var ErrEmptyTranscript = errors.New("empty transcript")

// currentDate returns today's date in ISO 8601 format (UTC).
func currentDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// LLMEnabled reports whether summaries can be produced.
func LLMEnabled() bool {
	return cfg.LLMClient != nil
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", ErrLLMDisabled
	}
	metrics.SummaryRequests.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// TranscriptLines renders cues as "[m:ss] text" lines for prompts.
func TranscriptLines(cues []CueItem) string {
	var sb strings.Builder
	for _, c := range cues {
		text := strings.Join(strings.Fields(c.Text), " ")
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "[%s] %s\n", c.StartText, text)
	}
	return sb.String()
}

// BuildSummaryPrompt assembles the summary prompt, capping transcript size at maxChars runes.
func BuildSummaryPrompt(title, question string, cues []CueItem, maxChars int) string {
	instruction := summaryInstruction
	if q := strings.TrimSpace(question); q != "" {
		instruction = fmt.Sprintf(questionInstruction, q)
	}
	if title == "" {
		title = "untitled"
	}
	transcript := TranscriptLines(cues)
	if maxChars > 0 {
		transcript = TruncateRunes(transcript, maxChars, "\n[transcript truncated]")
	}
	return fmt.Sprintf(transcriptSummaryPrompt, currentDate(), title, instruction, transcript)
}

// SummarizeTranscript asks the LLM for a timestamped summary of cues.
func SummarizeTranscript(ctx context.Context, title, question string, cues []CueItem) (string, error) {
	if len(cues) == 0 {
		return "", ErrEmptyTranscript
	}
	prompt := BuildSummaryPrompt(title, question, cues, cfg.MaxTranscriptChars)
	out, err := CallLLM(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return out, nil
}

// NewLLMClient builds the go-kit client from config, or nil when no key is set.
func NewLLMClient(c Config) *llm.Client {
	if c.LLMAPIKey == "" {
		return nil
	}
	return llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
	)
}
