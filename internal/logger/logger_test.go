package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name         string
		json, debug  bool
		wantEncoding string
		wantLevel    zapcore.Level
	}{
		{"console info", false, false, "console", zapcore.InfoLevel},
		{"json info", true, false, "json", zapcore.InfoLevel},
		{"console debug", false, true, "console", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(tt.json, tt.debug)
			assert.Equal(t, tt.wantEncoding, cfg.Encoding)
			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
