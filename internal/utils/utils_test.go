package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRequestID(t *testing.T) {
	id := uuid.NewString()
	assert.Equal(t, id, RequestID(id))
	assert.Equal(t, id, RequestID("  "+id+" "))

	for _, incoming := range []string{"", "not-a-uuid", "<script>"} {
		got := RequestID(incoming)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.NotEqual(t, incoming, got)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
