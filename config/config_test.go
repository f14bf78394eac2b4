package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 300*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), cfg.Dataset.Start)
	assert.Equal(t, 2, cfg.Dataset.FlexibilityDays)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 1, cfg.SearchLog.Workers)
	assert.Equal(t, 64, cfg.SearchLog.QueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\ndataset:\n  seed: 7\n")
	t.Setenv("FLATFINDER_SERVER_PORT", "9191")
	t.Setenv("FLATFINDER_DATASET_START_DATE", "2025-06-01")
	t.Setenv("FLATFINDER_DATABASE_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, uint64(7), cfg.Dataset.Seed)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), cfg.Dataset.Start)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoad_InvalidStartDate(t *testing.T) {
	path := writeConfig(t, "dataset:\n  start_date: \"April\"\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_FlexibilityDays(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		env      string
		expected int
	}{
		{name: "Unset", body: "server:\n  port: 9000\n", expected: 2},
		{name: "Zero is kept", body: "dataset:\n  flexibility_days: 0\n", expected: 0},
		{name: "Explicit", body: "dataset:\n  flexibility_days: 4\n", expected: 4},
		{name: "Negative falls back", body: "dataset:\n  flexibility_days: -3\n", expected: 2},
		{name: "Env zero overrides file", body: "dataset:\n  flexibility_days: 4\n", env: "0", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env != "" {
				t.Setenv("FLATFINDER_DATASET_FLEXIBILITY_DAYS", tc.env)
			}

			cfg, err := Load(writeConfig(t, tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Dataset.FlexibilityDays)
		})
	}
}
