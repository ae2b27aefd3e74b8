package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/marcodamonte/exercises/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Log
		verbose bool
		want    zapcore.Level
	}{
		{"production info", config.Log{Level: "info"}, false, zapcore.InfoLevel},
		{"development warn", config.Log{Level: "warn", Development: true}, false, zapcore.WarnLevel},
		{"verbose overrides", config.Log{Level: "error"}, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "chatty"}, false)
	assert.Error(t, err)
}
