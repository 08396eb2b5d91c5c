// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--count"),
			expected: "invalid value 42 for flag --count",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "generate", Limit: 5 * time.Second}
	expected := `operation "generate" timed out after 5s`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "width", Message: "must be one of 8, 16, 32, 64, 128, big"}
	expected := `validation error for "width": must be one of 8, 16, 32, 64, 128, big`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("underlying failure")
		err := WrapError(cause, "running width %d", 64)

		if err.Error() != "running width 64: underlying failure" {
			t.Errorf("unexpected message: %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause in the chain")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if err := WrapError(nil, "context"); err != nil {
			t.Errorf("WrapError(nil) = %v, want nil", err)
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped cancellation", WrapError(context.Canceled, "run"), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
