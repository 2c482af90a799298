package client

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated indicates no usable credential is available locally.
// Commands surface it before any request is issued.
var ErrNotAuthenticated = errors.New(`not authenticated: run "ragflowctl login" first`)

// ValidationError reports input rejected locally. No request reached the
// service when one of these is returned.
type ValidationError struct {
	Err error
}

// NewValidationError wraps a locally detected input problem.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RemoteError is a service-level failure: the HTTP exchange succeeded but the
// response envelope carried a non-zero code.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected the request (code %d)", e.Code)
	}
	return e.Message
}

// TransportError is a failure below the service protocol: the request never
// completed, the status was outside 2xx, or the body was not the expected
// envelope. Body carries raw response text when one was received.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("unexpected response (HTTP %d): %v", e.Status, e.Err)
	case e.Body != "":
		return fmt.Sprintf("unexpected response (HTTP %d): %s", e.Status, truncateBody(e.Body))
	default:
		return fmt.Sprintf("unexpected response (HTTP %d)", e.Status)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// maxErrorBodyLen caps how much raw response text is surfaced in error
// messages.
const maxErrorBodyLen = 200

func truncateBody(body string) string {
	runes := []rune(body)
	if len(runes) <= maxErrorBodyLen {
		return body
	}
	return string(runes[:maxErrorBodyLen]) + "..."
}
