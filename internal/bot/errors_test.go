package bot

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_MessageIncludesKindAndCause(t *testing.T) {
	cause := errors.New("busy timeout")
	err := NewSinkError("paint frame", cause)

	msg := err.Error()
	if !strings.Contains(msg, "display error") {
		t.Errorf("Expected kind in message, got %q", msg)
	}
	if !strings.Contains(msg, "busy timeout") {
		t.Errorf("Expected cause in message, got %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewRenderError("compose frame", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the underlying cause")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"sink error matches", NewSinkError("wake", nil), IsSinkError, true},
		{"render error matches", NewRenderError("compose", nil), IsRenderError, true},
		{"config error matches", NewConfigError("token", nil), IsConfigError, true},
		{"kinds do not cross", NewSinkError("wake", nil), IsRenderError, false},
		{"plain error does not match", errors.New("plain"), IsSinkError, false},
		{"nil does not match", nil, IsConfigError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKindPredicates_SeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("serving update: %w", NewSinkError("sleep display", errors.New("gpio gone")))

	if !IsSinkError(err) {
		t.Error("Expected predicate to match through fmt.Errorf wrapping")
	}
}
