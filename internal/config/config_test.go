package config

import (
	"runtime"
	"testing"
	"time"

	"goplots/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DEBUG", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT",
		"RENDER_CONCURRENCY", "PPROF_PORT", "PPROF_ENABLED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Render.Concurrency)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, "6060", cfg.Profiling.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DEBUG", "0")
	t.Setenv("RENDER_CONCURRENCY", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_PORT", "9101")
	t.Setenv("MAX_BODY_BYTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, 3, cfg.Render.Concurrency)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes, "unparsable values fall back to defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"zero concurrency", map[string]string{"RENDER_CONCURRENCY": "0"}},
		{"negative body limit", map[string]string{"MAX_BODY_BYTES": "-1"}},
		{"pprof port clash", map[string]string{"PORT": "7000", "PPROF_PORT": "7000", "PPROF_ENABLED": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
