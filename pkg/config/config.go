package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org"
	DefaultTimeout      = 20 * time.Second
)

type CatalogConfig struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	// Region is an ISO 3166-1 country code applied to the list endpoints.
	Region  string
	Timeout time.Duration
}

type StorageConfig struct {
	DBPath    string
	ExportDir string
}

type LogConfig struct {
	Level slog.Level
	// File receives TUI logs; the alt screen owns stdout.
	File string
}

// AppConfig holds everything the binary needs to wire its components.
type AppConfig struct {
	Catalog CatalogConfig
	Storage StorageConfig
	Log     LogConfig
}

// Load reads an optional .env file and then the environment. A missing
// .env file is not an error.
func Load(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".movies")

	cfg := &AppConfig{}

	cfg.Catalog.APIKey = os.Getenv("TMDB_API_KEY")
	cfg.Catalog.BaseURL = strings.TrimRight(getEnvAsString("TMDB_BASE_URL", DefaultBaseURL), "/")
	cfg.Catalog.ImageBaseURL = strings.TrimRight(getEnvAsString("TMDB_IMAGE_BASE_URL", DefaultImageBaseURL), "/")
	cfg.Catalog.Region = strings.ToUpper(os.Getenv("MOVIES_REGION"))
	cfg.Catalog.Timeout = time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", int(DefaultTimeout/time.Second))) * time.Second

	cfg.Storage.DBPath = getEnvAsString("MOVIES_DB_PATH", filepath.Join(dataDir, "movies.db"))
	cfg.Storage.ExportDir = getEnvAsString("MOVIES_EXPORT_DIR", filepath.Join(home, "Downloads"))

	cfg.Log.Level = parseLevel(getEnvAsString("LOG_LEVEL", "info"))
	cfg.Log.File = getEnvAsString("LOG_FILE", filepath.Join(dataDir, "movies.log"))

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", valueStr)
		return defaultValue
	}
	return value
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
