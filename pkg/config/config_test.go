package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TMDB_API_KEY", "TMDB_BASE_URL", "TMDB_IMAGE_BASE_URL", "MOVIES_REGION",
		"HTTP_TIMEOUT_SECONDS", "MOVIES_DB_PATH", "MOVIES_EXPORT_DIR", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Catalog.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.Catalog.BaseURL)
	assert.Equal(t, DefaultImageBaseURL, cfg.Catalog.ImageBaseURL)
	assert.Equal(t, "", cfg.Catalog.Region)
	assert.Equal(t, DefaultTimeout, cfg.Catalog.Timeout)
	assert.Equal(t, "movies.db", filepath.Base(cfg.Storage.DBPath))
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "TMDB_API_KEY=secret\n" +
		"TMDB_BASE_URL=http://localhost:9999/3/\n" +
		"MOVIES_REGION=gr\n" +
		"HTTP_TIMEOUT_SECONDS=5\n" +
		"MOVIES_DB_PATH=/tmp/x/movies.db\n" +
		"LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Catalog.APIKey)
	assert.Equal(t, "http://localhost:9999/3", cfg.Catalog.BaseURL)
	assert.Equal(t, "GR", cfg.Catalog.Region)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "/tmp/x/movies.db", cfg.Storage.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "from-env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TMDB_API_KEY=from-file\n"), 0644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Catalog.APIKey)
}

func TestInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.Catalog.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}
