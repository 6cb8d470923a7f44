package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	DBPath    string
	LogLevel  slog.Level
	LogFormat string

	// Speech-to-text backend (OpenAI-compatible /v1/audio/transcriptions).
	// An empty STTAPIKey disables recording entirely (capability gate).
	STTBaseURL string
	STTAPIKey  string
	STTModel   string

	// Chat-completions backend used for summarization.
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Microphone input passed to ffmpeg ("pulse", "alsa", "avfoundation").
	AudioInputFormat string
	AudioInputDevice string

	// Optional semantic search over transcripts. The feature is enabled only
	// when all Qdrant/embedding fields are present.
	QdrantURL          string
	QdrantCollection   string
	QdrantVectorSize   int
	EmbeddingBaseURL   string
	EmbeddingModelName string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it is
// loaded automatically; environment variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up toward the project root looking for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:   getEnv("API_PORT", "9000"),
		DBPath:    getEnv("DB_PATH", "./data/sitevoice.db"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		STTBaseURL: getEnv("STT_BASE_URL", "https://api.openai.com"),
		STTAPIKey:  getEnv("STT_API_KEY", ""),
		STTModel:   getEnv("STT_MODEL", "whisper-1"),

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),

		AudioInputFormat: getEnv("AUDIO_INPUT_FORMAT", "pulse"),
		AudioInputDevice: getEnv("AUDIO_INPUT_DEVICE", "default"),

		QdrantURL:          getEnv("QDRANT_URL", ""),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "transcripts"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", ""),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// QDRANT_VECTOR_SIZE must match the output size of the embeddings model.
	// It is required only when the search feature is configured.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr != "" {
		vectorSize, err := strconv.Atoi(vectorSizeStr)
		if err != nil {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
		}
		if vectorSize <= 0 {
			return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
		}
		cfg.QdrantVectorSize = vectorSize
	}

	if cfg.QdrantURL != "" && !cfg.SearchEnabled() {
		return nil, fmt.Errorf("QDRANT_URL is set but EMBEDDING_BASE_URL, EMBEDDING_MODEL_NAME or QDRANT_VECTOR_SIZE is missing")
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// SearchEnabled reports whether the semantic transcript search feature is
// fully configured.
func (c *Config) SearchEnabled() bool {
	return c.QdrantURL != "" && c.EmbeddingBaseURL != "" && c.EmbeddingModelName != "" && c.QdrantVectorSize > 0
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %s", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
