package httpclient

import (
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeBlocked indicates the remote side refused automated access (403/429).
	ErrCodeBlocked
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
	// ErrCodeUnexpected indicates any other non-2xx status.
	ErrCodeUnexpected
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeBlocked:
		return "blocked"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeServer:
		return "server"
	default:
		return "unexpected"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// classifyStatusCode converts a non-2xx status into a structured error.
func classifyStatusCode(status int, body []byte) *Error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 403 || status == 429:
		return &Error{StatusCode: status, Code: ErrCodeBlocked, Message: fmt.Sprintf("HTTP %d", status), Body: body}
	case status == 404:
		return &Error{StatusCode: status, Code: ErrCodeNotFound, Message: "HTTP 404", Body: body}
	case status >= 500:
		return &Error{StatusCode: status, Code: ErrCodeServer, Message: fmt.Sprintf("HTTP %d", status), Body: body}
	default:
		return &Error{StatusCode: status, Code: ErrCodeUnexpected, Message: fmt.Sprintf("HTTP %d", status), Body: body}
	}
}
