package apperr

import (
	stderrors "errors"
)

// Response is the JSON structure returned to clients.
type Response struct {
	Error Body `json:"error"`
}

// Body contains the error details sent to clients.
type Body struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an Error to a Response for JSON serialization.
// The cause is deliberately omitted so internal details never leak.
func (e *Error) ToResponse() Response {
	return Response{
		Error: Body{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// As converts err to an *Error if possible.
func As(err error) (*Error, bool) {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
