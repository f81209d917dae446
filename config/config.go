package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Catalog storage configuration
	StorageBackend string // "memory" or "mongo"
	MongoURI       string
	DatabaseName   string

	// Chatbot configuration
	MatchStrategy string // "contains" or "similarity"
	GeminiAPIKey  string
	GeminiModels  []string
	AITimeout     time.Duration

	// Server configuration
	Port string
}

const defaultAITimeoutSeconds = 45

func LoadConfig() *Config {
	aiTimeoutSeconds := getEnvInt("AI_TIMEOUT_SECONDS", defaultAITimeoutSeconds)
	if aiTimeoutSeconds <= 0 {
		slog.Warn("AI_TIMEOUT_SECONDS must be positive, using default",
			"value", aiTimeoutSeconds, "default", defaultAITimeoutSeconds)
		aiTimeoutSeconds = defaultAITimeoutSeconds
	}

	cfg := &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("MONGO_DB_NAME", "cake_shop"),
		MatchStrategy:  getEnv("MATCH_STRATEGY", "contains"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModels:   splitList(getEnv("GEMINI_MODELS", "gemini-1.5-flash,gemini-1.5-pro,gemini-1.0")),
		AITimeout:      time.Duration(aiTimeoutSeconds) * time.Second,
		Port:           getEnv("PORT", "8080"),
	}

	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI replies will run in degraded mode")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
