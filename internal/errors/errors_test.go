package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrProvider,
		ErrTerminal,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "provider error",
			code:       ErrProvider,
			message:    "Host reported no kernel version",
			suggestion: "This host does not expose the identity fields the dashboard requires.",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "Standard output is not a terminal",
			suggestion: "Run supermarket from an interactive terminal.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrProvider, "Failed to read memory statistics", "Check that /proc is mounted.")

	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "✗ Failed to read memory statistics"))
	assert.Contains(t, msg, "Check that /proc is mounted.")
}

func TestError_FormatIncludesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapWithCode(cause, ErrTerminal, "Terminal session failed", "")

	msg := err.Error()

	assert.Contains(t, msg, "✗ Terminal session failed")
	assert.Contains(t, msg, "permission denied")
}

func TestWrap_DefaultsToProviderCode(t *testing.T) {
	cause := errors.New("read failed")

	err := Wrap(cause, "Failed to read the process table")

	assert.Equal(t, ErrProvider, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapWithCode(cause, ErrProvider, "wrapper", "")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	providerErr := New(ErrProvider, "msg", "")
	wrapped := WrapWithCode(providerErr, ErrTerminal, "outer", "")

	assert.True(t, IsCode(providerErr, ErrProvider))
	assert.False(t, IsCode(providerErr, ErrTerminal))
	assert.True(t, IsCode(wrapped, ErrTerminal), "outermost code wins")
	assert.False(t, IsCode(nil, ErrProvider))
	assert.False(t, IsCode(errors.New("plain"), ErrProvider))
}
