package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when SUPERMARKET_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when SUPERMARKET_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when SUPERMARKET_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture log output
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			// Set environment
			if tt.envValue != "" {
				t.Setenv("SUPERMARKET_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("SUPERMARKET_DEBUG")
			}

			l := NewEnvLogger("[test]")
			l.Debug("debug message %d", 42)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] debug message 42")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[metrics]")
	l.Info("info %s", "one")
	l.Warn("warn %s", "two")
	l.Error("error %s", "three")

	out := buf.String()
	assert.Contains(t, out, "[metrics] info one")
	assert.Contains(t, out, "[metrics] WARN: warn two")
	assert.Contains(t, out, "[metrics] ERROR: error three")
}

func TestNoop_DiscardsEverything(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	t.Setenv("SUPERMARKET_DEBUG", "1")

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestBufferLogger_CapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("d %d", 1)
	l.Info("i %d", 2)
	l.Warn("w %d", 3)
	l.Error("e %d", 4)

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "d 1"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "i 2"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "w 3"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "e 4"}, l.Messages[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("something")

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	require.NotEmpty(t, l.Messages)

	l.Clear()

	assert.Empty(t, l.Messages)
}
