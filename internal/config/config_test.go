package config

import (
	"testing"
	"time"

	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT", "LAUNCH_DATA_FILE", "LAUNCH_SHEET",
	"DATABASE_URL", "LAUNCH_TABLE", "LOG_LEVEL", "LOG_MODE", "PPROF_PORT", "PPROF_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8050", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, []string{"http://localhost:8050", "http://127.0.0.1:8050"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.Data.File)
	assert.Equal(t, "Sheet1", cfg.Data.Sheet)
	assert.Empty(t, cfg.Data.DatabaseURL)
	assert.Equal(t, "launch_records", cfg.Data.Table)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, "6060", cfg.Profiling.Port)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LAUNCH_DATA_FILE", "launches.xlsx")
	t.Setenv("DATABASE_URL", "postgres://localhost/launches")
	t.Setenv("PPROF_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "launches.xlsx", cfg.Data.File)
	assert.Equal(t, "postgres://localhost/launches", cfg.Data.DatabaseURL)
	assert.True(t, cfg.Profiling.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port":     {"PORT", "eighty"},
		"gin mode": {"GIN_MODE", "verbose"},
		"bool":     {"PPROF_ENABLED", "maybe"},
		"duration": {"SHUTDOWN_TIMEOUT", "soon"},
		"negative": {"SHUTDOWN_TIMEOUT", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
