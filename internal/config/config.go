package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"searchindex/internal/keywords"
	"searchindex/internal/search"
)

// Config holds all configuration for the application.
type Config struct {
	DBDriver      string
	DBDSN         string
	FullText      bool
	MinWordLength int
	StopWordsFile string
	StopWords     []string
	FieldsFile    string
	Fields        search.StaticFieldResolver // field handle -> field IDs, for attr:value queries on custom fields
	LockDir       string
	SubLeft       bool
	SubRight      bool
	APIPort       string
	LogLevel      slog.Level
	LogFormat     string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:         getEnv("DB_DSN", "./data/searchindex.db"),
		StopWordsFile: getEnv("SEARCH_STOPWORDS_FILE", ""),
		FieldsFile:    getEnv("SEARCH_FIELDS_FILE", ""),
		LockDir:       getEnv("SEARCH_LOCK_DIR", ""),
		APIPort:       getEnv("API_PORT", "9000"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	switch cfg.DBDriver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("DB_DRIVER must be one of sqlite3, mysql, postgres, got %q", cfg.DBDriver)
	}

	if cfg.FullText, err = getBool("SEARCH_FULLTEXT", true); err != nil {
		return nil, err
	}
	if cfg.SubLeft, err = getBool("SEARCH_SUB_LEFT", false); err != nil {
		return nil, err
	}
	if cfg.SubRight, err = getBool("SEARCH_SUB_RIGHT", true); err != nil {
		return nil, err
	}

	// Must match the server's innodb_ft_min_token_size / ft_min_word_len, otherwise short words
	// are sent to MATCH and silently find nothing.
	if cfg.MinWordLength, err = getInt("SEARCH_MIN_WORD_LENGTH", 4); err != nil {
		return nil, err
	}
	if cfg.MinWordLength <= 0 {
		return nil, fmt.Errorf("SEARCH_MIN_WORD_LENGTH must be greater than 0")
	}

	if cfg.StopWordsFile != "" {
		words, err := keywords.LoadStopWords(cfg.StopWordsFile)
		if err != nil {
			return nil, fmt.Errorf("SEARCH_STOPWORDS_FILE: %w", err)
		}
		cfg.StopWords = words
	}

	cfg.Fields = search.StaticFieldResolver{}
	if cfg.FieldsFile != "" {
		if cfg.Fields, err = search.LoadFieldResolver(cfg.FieldsFile); err != nil {
			return nil, fmt.Errorf("SEARCH_FIELDS_FILE: %w", err)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// Create the data directory for a file-backed SQLite database
	if cfg.DBDriver == "sqlite3" && cfg.DBDSN != ":memory:" && !strings.HasPrefix(cfg.DBDSN, "file:") {
		dataDir := filepath.Dir(cfg.DBDSN)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if cfg.LockDir != "" {
		if err := os.MkdirAll(cfg.LockDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create lock directory: %w", err)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}
