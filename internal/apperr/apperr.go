// Package apperr provides the typed error taxonomy for the transcript service.
// Retrieval and formatting failures are expressed as *Error values carrying a
// machine-readable code and a recommended HTTP status, so the HTTP layer can
// map every failure kind exactly once at the response boundary.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is the unified application error type.
type Error struct {
	// Code is a machine-readable error code.
	Code Code `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code this error maps to.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, never serialized to clients.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// --- Constructors, one per taxonomy entry ---

// VideoUnavailable reports that the video cannot be found or accessed.
func VideoUnavailable(videoID string) *Error {
	return &Error{
		Code: CodeVideoUnavailable, Message: fmt.Sprintf("The video %s is unavailable.", videoID),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"video_id": videoID},
	}
}

// TranscriptsDisabled reports that the uploader disabled transcripts.
func TranscriptsDisabled(videoID string) *Error {
	return &Error{
		Code: CodeTranscriptsDisabled, Message: fmt.Sprintf("Transcripts are disabled for video %s.", videoID),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"video_id": videoID},
	}
}

// NoTranscriptFound reports that no transcript track exists for the video.
func NoTranscriptFound(videoID string) *Error {
	return &Error{
		Code: CodeNoTranscriptFound, Message: fmt.Sprintf("No transcripts are available for video %s.", videoID),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"video_id": videoID},
	}
}

// LanguageNotAvailable reports that the requested language has no transcript
// track. The available language codes are included so clients can pick one.
func LanguageNotAvailable(videoID, language string, available []string) *Error {
	return &Error{
		Code: CodeLanguageNotAvailable, Message: fmt.Sprintf("No transcript in language %q for video %s.", language, videoID),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"video_id": videoID, "language": language, "available_languages": available},
	}
}

// IPBlocked reports that the upstream provider is blocking automated access
// from this IP. Distinguished from NetworkError so the response can recommend
// configuring proxy credentials.
func IPBlocked() *Error {
	return &Error{
		Code: CodeIPBlocked, Message: "YouTube is blocking requests from this IP. Configure rotating proxy credentials (PROXY_USERNAME/PROXY_PASSWORD) to work around this.",
		HTTPStatus: http.StatusForbidden,
	}
}

// InvalidFormat reports an unrecognized output format value.
func InvalidFormat(value string) *Error {
	return &Error{
		Code: CodeInvalidFormat, Message: fmt.Sprintf("Unknown format %q. Supported formats: text, vtt, srt, json.", value),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"format": value},
	}
}

// InvalidInput reports a query parameter that failed to bind.
func InvalidInput(reason string) *Error {
	return &Error{
		Code: CodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NetworkError reports a connectivity failure reaching the upstream provider.
func NetworkError(cause error) *Error {
	return &Error{
		Code: CodeNetworkError, Message: "Failed to reach YouTube. Please try again.",
		HTTPStatus: http.StatusBadGateway, Cause: cause,
	}
}

// Timeout reports that the upstream fetch exceeded its deadline.
func Timeout(cause error) *Error {
	return &Error{
		Code: CodeTimeout, Message: "The upstream fetch took too long. Please try again.",
		HTTPStatus: http.StatusGatewayTimeout, Cause: cause,
	}
}

// Internal wraps an unanticipated error into a generic 500 with a safe message.
func Internal(cause error) *Error {
	return &Error{
		Code: CodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
