package transcriptserver

import (
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/toolutil"
)

// userMessage turns a pipeline error into the text shown to tool callers.
func userMessage(err error) string {
	switch sources.ErrorKind(err) {
	case sources.KindResponseParse:
		return "no transcript found"
	case sources.KindTokenNotFound:
		return "youtube page format changed or video unavailable"
	case sources.KindTransport:
		return "youtube unreachable, try again"
	case sources.KindCanceled:
		return "request canceled"
	case sources.KindInvalidVideoID:
		return "video id is required"
	}
	switch {
	case errors.Is(err, toolutil.ErrNoVideo):
		return toolutil.ErrNoVideo.Error()
	case errors.Is(err, sources.ErrMirror):
		return "video mirror unavailable, try again"
	case errors.Is(err, engine.ErrEmptyTranscript):
		return "no transcript found"
	case errors.Is(err, engine.ErrLLMDisabled):
		return "summaries are disabled: set LLM_API_KEY"
	}
	return "internal error"
}

// toolError keeps err in the chain while leading with the user message.
func toolError(err error) error {
	return fmt.Errorf("%s: %w", userMessage(err), err)
}
