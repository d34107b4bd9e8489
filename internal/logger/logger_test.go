package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultLevel(t *testing.T) {
	logger, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_Verbose(t *testing.T) {
	logger, err := New(false, true)
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONEncoding(t *testing.T) {
	logger, err := New(true, false)
	require.NoError(t, err)
	require.NotNil(t, logger)
}
