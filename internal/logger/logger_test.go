package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("probe %s failed", "10.0.0.1")
	l.Info("starting %d probers", 4)
	l.Warn("slow probe")
	l.Error("boom")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "probe 10.0.0.1 failed", l.Messages[0].Message)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.True(t, l.HasLevel("info"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoopLogger(t *testing.T) {
	l := Noop()

	// Should not panic and produce no observable output
	l.Debug("ignored")
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
}
