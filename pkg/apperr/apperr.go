package apperr

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInputRequired    = "INPUT_REQUIRED"
	CodeInputInvalid     = "INPUT_INVALID"
	CodeNotFound         = "NOT_FOUND"
	CodeUpstreamDown     = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamProtocol = "UPSTREAM_PROTOCOL_ERROR"
	CodeUpstreamAPI      = "UPSTREAM_API_ERROR"
	CodeConfiguration    = "CONFIGURATION_ERROR"
)

// Error is the common error shape for the whole tool. Handlers convert it
// to a user-facing fragment at the request boundary; the Code decides which
// message template is used and StatusCode decides the HTTP status.
type Error struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Code extracts the error code, or "" for errors from outside this package.
func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return Code(err) == code
}

func NewInputRequired(field string) *Error {
	return &Error{
		Message:    fmt.Sprintf("%s is required", field),
		Code:       CodeInputRequired,
		StatusCode: 400,
		Context:    map[string]any{"field": field},
	}
}

func NewInputInvalid(message, field string, value any) *Error {
	return &Error{
		Message:    message,
		Code:       CodeInputInvalid,
		StatusCode: 400,
		Context: map[string]any{
			"field": field,
			"value": value,
		},
	}
}

func NewNotFound(entity, id string) *Error {
	return &Error{
		Message:    fmt.Sprintf("%s not found", entity),
		Code:       CodeNotFound,
		StatusCode: 404,
		Context: map[string]any{
			"entity": entity,
			"id":     id,
		},
	}
}

func NewUpstreamUnavailable(operation string, cause error) *Error {
	return &Error{
		Message:    fmt.Sprintf("upstream unavailable during %s", operation),
		Code:       CodeUpstreamDown,
		StatusCode: 502,
		Context:    map[string]any{"operation": operation},
		Cause:      cause,
	}
}

func NewUpstreamProtocol(operation string, cause error) *Error {
	return &Error{
		Message:    fmt.Sprintf("malformed upstream response during %s", operation),
		Code:       CodeUpstreamProtocol,
		StatusCode: 502,
		Context:    map[string]any{"operation": operation},
		Cause:      cause,
	}
}

func NewUpstreamAPI(message string, statusCode int, context map[string]any) *Error {
	if statusCode == 0 {
		statusCode = 502
	}
	return &Error{
		Message:    message,
		Code:       CodeUpstreamAPI,
		StatusCode: statusCode,
		Context:    context,
	}
}

func NewConfiguration(message string) *Error {
	return &Error{
		Message:    message,
		Code:       CodeConfiguration,
		StatusCode: 500,
	}
}
