package sources

import (
	"context"
	"errors"
)

// Transcript failure kinds. Every error returned by FetchTranscript wraps
// exactly one of these, so callers can tell them apart with errors.Is.
var (
	// ErrTransport: page fetch or API call did not complete, or returned non-2xx.
	ErrTransport = errors.New("youtube transport failure")
	// ErrTokenNotFound: an expected token is absent from the watch page.
	ErrTokenNotFound = errors.New("token not found in watch page")
	// ErrResponseParse: the API response is not JSON or lacks the transcript shape.
	ErrResponseParse = errors.New("transcript response unavailable")
	// ErrInvalidVideoID: empty video identifier.
	ErrInvalidVideoID = errors.New("video id is required")
)

// Error kind labels used in logs, metrics and tool messages.
const (
	KindTransport      = "transport"
	KindTokenNotFound  = "token_not_found"
	KindResponseParse  = "response_parse"
	KindInvalidVideoID = "invalid_video_id"
	KindCanceled       = "canceled"
	KindUnknown        = "unknown"
)

// ErrorKind maps err to a stable label. Cancellation is checked first since
// an aborted request also surfaces as a transport failure.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrTokenNotFound):
		return KindTokenNotFound
	case errors.Is(err, ErrResponseParse):
		return KindResponseParse
	case errors.Is(err, ErrInvalidVideoID):
		return KindInvalidVideoID
	}
	return KindUnknown
}
