package logger

import (
	"testing"

	"homework-grader/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	log = nil
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { log = nil })

	tests := []struct {
		name    string
		cfg     config.LoggerConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "Default Level", cfg: config.LoggerConfig{}, enabled: zapcore.InfoLevel},
		{name: "Debug Console", cfg: config.LoggerConfig{Level: "debug"}, enabled: zapcore.DebugLevel},
		{name: "Warn Production", cfg: config.LoggerConfig{Level: "warn", Env: "production"}, enabled: zapcore.WarnLevel},
		{name: "Unknown Level", cfg: config.LoggerConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log = nil
			err := Initialize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			l := Get()
			assert.True(t, l.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.enabled-1))
			}
		})
	}
}
