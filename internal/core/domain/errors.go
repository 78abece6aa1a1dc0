package domain

import (
	"errors"
	"time"
)

// Error kinds. Every failure that crosses a component boundary is classified
// as exactly one of these; callers test with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("service unavailable")
	ErrInternal     = errors.New("internal error")
)

// Error is a classified failure carrying a caller-safe message.
type Error struct {
	Kind    error
	Message string
	// RetryAfter is the upstream's back-off hint, zero when absent.
	RetryAfter time.Duration
	// Err is the underlying cause, kept for logs only.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput reports a malformed or missing request parameter.
func InvalidInput(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// NotFound reports that the upstream has no matching resource.
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Unavailable reports a transient upstream failure.
func Unavailable(msg string, cause error) *Error {
	return &Error{Kind: ErrUnavailable, Message: msg, Err: cause}
}

// Internal reports an unexpected failure.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: ErrInternal, Message: msg, Err: cause}
}

// AsError extracts the classified error from err. Unclassified errors are
// reported as ErrInternal.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return Internal("unexpected error", err)
}
