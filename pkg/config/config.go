// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, corpus, search, validation and logging settings; .env files are preloaded

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"feed-discovery-api/core/domain"
	"github.com/joho/godotenv"
)

const (
	minWriteTimeout    = 60 * time.Second
	writeTimeoutMargin = 10 * time.Second
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Corpus locates the reference feed corpus
	Corpus CorpusConfig

	// Search bounds the result limit
	Search SearchConfig

	// Validation contains probe and metadata settings
	Validation ValidationConfig

	// Log selects the logging backend
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CorpusConfig holds corpus loading configuration
type CorpusConfig struct {
	// Path is a JSON or YAML corpus file
	Path string

	// Version is reported as the search source; empty uses the file's version
	Version string
}

// SearchConfig holds ranking configuration
type SearchConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	ProbeTimeout    time.Duration
	MetadataTimeout time.Duration

	// MetadataMaxBytes caps how much of a feed body is sampled
	MetadataMaxBytes int

	// Concurrency caps simultaneous URL checks per request
	Concurrency int

	// MaxURLs caps how many URLs one validation request may carry
	MaxURLs int
}

// BatchDuration is the worst case for a full batch: every URL waits out
// both the probe and the metadata timeout, MaxURLs/Concurrency waves deep.
func (v ValidationConfig) BatchDuration() time.Duration {
	if v.Concurrency < 1 || v.MaxURLs < 1 {
		return 0
	}
	waves := (v.MaxURLs + v.Concurrency - 1) / v.Concurrency
	return time.Duration(waves) * (v.ProbeTimeout + v.MetadataTimeout)
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend is logrus or zap
	Backend string
	Level   string

	// File enables rotating file output
	File string
}

// LoadEnvFiles preloads .env files. ENV_FILE, when set, is the only file
// read; otherwise .env.local takes precedence over .env. Variables already
// present in the environment are never overridden.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Corpus: CorpusConfig{
			Path:    getEnvOrDefault("CORPUS_PATH", "data/feeds.json"),
			Version: getEnvOrDefault("CORPUS_VERSION", ""),
		},
		Search: SearchConfig{
			DefaultLimit: getEnvAsIntOrDefault("DEFAULT_RESULT_LIMIT", 5),
			MaxLimit:     getEnvAsIntOrDefault("MAX_RESULT_LIMIT", 20),
		},
		Validation: ValidationConfig{
			ProbeTimeout:     getEnvAsMillisOrDefault("VALIDATION_TIMEOUT_MS", 5*time.Second),
			MetadataTimeout:  getEnvAsMillisOrDefault("METADATA_TIMEOUT_MS", 5*time.Second),
			MetadataMaxBytes: getEnvAsIntOrDefault("METADATA_MAX_BYTES", 100*1024),
			Concurrency:      getEnvAsIntOrDefault("VALIDATION_CONCURRENCY", 10),
			MaxURLs:          getEnvAsIntOrDefault("MAX_VALIDATE_URLS", 50),
		},
		Log: LogConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "logrus")),
			Level:   strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsMillisOrDefault reads a millisecond count as a duration
func getEnvAsMillisOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

// WriteTimeout is the server write deadline. It always outlasts a full
// validation batch so every request gets its per-URL results.
func (c *Config) WriteTimeout() time.Duration {
	timeout := c.Validation.BatchDuration() + writeTimeoutMargin
	if timeout < minWriteTimeout {
		return minWriteTimeout
	}
	return timeout
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Corpus.Path == "" {
		return errors.New("corpus path cannot be empty")
	}

	if c.Search.MaxLimit < domain.MinLimit || c.Search.MaxLimit > domain.MaxLimit {
		return fmt.Errorf("max result limit must be between %d and %d", domain.MinLimit, domain.MaxLimit)
	}

	if c.Search.DefaultLimit < 1 || c.Search.DefaultLimit > c.Search.MaxLimit {
		return fmt.Errorf("default result limit must be between 1 and %d", c.Search.MaxLimit)
	}

	if c.Validation.ProbeTimeout <= 0 || c.Validation.MetadataTimeout <= 0 {
		return errors.New("validation timeouts must be positive")
	}

	if c.Validation.MetadataMaxBytes < 1 {
		return errors.New("metadata max bytes must be positive")
	}

	if c.Validation.Concurrency < 1 {
		return errors.New("validation concurrency must be at least 1")
	}

	if c.Validation.MaxURLs < 1 {
		return errors.New("max validate urls must be at least 1")
	}

	if c.Log.Backend != "logrus" && c.Log.Backend != "zap" {
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	return nil
}
