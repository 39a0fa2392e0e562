package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	sugar, err := NewLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, sugar)
	require.False(t, sugar.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, sugar.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	sugar, err := NewLogger("loud")
	require.NoError(t, err)
	require.True(t, sugar.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.False(t, sugar.Desugar().Core().Enabled(zapcore.DebugLevel))
}
