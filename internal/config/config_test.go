package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "CAMPUS_FILE", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:       "info",
		LogFormat:      "console",
		ServiceName:    "campus",
		MetricsEnabled: true,
	}, cfg)
}

func TestFromEnvInvalidBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "może")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_ENABLED")
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv nie nadpisuje istniejących zmiennych, więc czyścimy je przed testem
	for _, key := range []string{"LOG_LEVEL", "CAMPUS_FILE", "METRICS_ENABLED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nCAMPUS_FILE=campus.yaml\nMETRICS_ENABLED=false\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "campus.yaml", cfg.CampusFile)
	assert.False(t, cfg.MetricsEnabled)
}
