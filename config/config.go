// Package config provides configuration for the study platform service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Storage. The default in-memory DSN keeps all data
	// process-lifetime; point it at a file to persist across restarts.
	DatabaseURL string

	// LLM settings
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	LLMTimeout    time.Duration

	// Web search settings
	TavilyAPIKey     string
	TavilyBaseURL    string
	SearchTimeout    time.Duration
	WebSearchEnabled bool

	// Prompt context bounds. Only the newest entries within these
	// limits are included in the assistant prompt.
	MaxContextNotes     int
	MaxContextSolutions int
	MaxHistoryTurns     int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:            getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:         getEnv("DATABASE_URL", ":memory:"),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		Model:               getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:          time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		TavilyAPIKey:        getEnv("TAVILY_API_KEY", ""),
		TavilyBaseURL:       getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
		SearchTimeout:       time.Duration(getEnvInt("SEARCH_TIMEOUT_MS", 15000)) * time.Millisecond,
		WebSearchEnabled:    getEnvBool("WEB_SEARCH_ENABLED", true),
		MaxContextNotes:     getEnvInt("MAX_CONTEXT_NOTES", 20),
		MaxContextSolutions: getEnvInt("MAX_CONTEXT_SOLUTIONS", 20),
		MaxHistoryTurns:     getEnvInt("MAX_HISTORY_TURNS", 20),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
