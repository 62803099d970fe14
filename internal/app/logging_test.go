package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
	l.out.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return l
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", LogLevelDebug, true},
		{"DEBUG", LogLevelDebug, true},
		{"info", LogLevelInfo, true},
		{"warn", LogLevelWarn, true},
		{"WARNING", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"unknown", LogLevelInfo, false},
		{"", LogLevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := ParseLogLevel(tt.input)
		assert.Equal(t, tt.expected, level, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelDebug)

	l.Info("started %d items", 3)

	assert.Equal(t, "2024-03-01T12:00:00.000 [INFO] test: started 3 items\n", buf.String())
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	l.Error("shown")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("shown")))

	buf.Reset()
	l.SetLevel(LogLevelDebug)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG]")
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelInfo)

	l.WithComponent("selection").WithField("added", 2).Info("change")

	assert.Contains(t, buf.String(), "change {added=2, component=selection}\n")
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := fixedLogger(&buf, LogLevelInfo)
	_ = parent.WithField("k", "v")

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "k=v")
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := fixedLogger(&buf, LogLevelInfo)
	child := parent.WithComponent("script")

	parent.SetLevel(LogLevelError)
	child.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestLogger_Disable(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelDebug)
	l.Disable()

	l.Error("nothing")
	assert.Empty(t, buf.String())

	NullLogger().Error("nothing either")
}
