package bot

import (
	"errors"
	"fmt"
)

// ErrorKind names the boundary where a message-cycle failure happened, so
// the logging and reply layers can tell a bad frame from a bad panel.
type ErrorKind int

const (
	// KindConfig indicates invalid or missing configuration.
	KindConfig ErrorKind = iota
	// KindRender indicates a failure while composing the frame.
	KindRender
	// KindSink indicates a display driver failure (wake, paint, clear, sleep).
	KindSink
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config error"
	case KindRender:
		return "render error"
	case KindSink:
		return "display error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error carries the failure boundary alongside the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error
func NewConfigError(message string, err error) *Error {
	return &Error{Kind: KindConfig, Message: message, Err: err}
}

// NewRenderError creates a frame composition error
func NewRenderError(message string, err error) *Error {
	return &Error{Kind: KindRender, Message: message, Err: err}
}

// NewSinkError creates a display driver error
func NewSinkError(message string, err error) *Error {
	return &Error{Kind: KindSink, Message: message, Err: err}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool { return isKind(err, KindConfig) }

// IsRenderError checks if an error is a frame composition error
func IsRenderError(err error) bool { return isKind(err, KindRender) }

// IsSinkError checks if an error is a display driver error
func IsSinkError(err error) bool { return isKind(err, KindSink) }
