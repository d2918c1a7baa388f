package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
}

// Load reads configuration from environment variables. A missing LLM
// credential is not a load error; the relay reports it per request.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Store: loadStoreConfig()}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the upstream LLM connection.
type AIConfig struct {
	APIKey       string
	Model        string
	BaseURL      string
	MaxTokens    int
	HistoryLimit int
}

func loadAIConfig() (AIConfig, error) {
	maxTokens, err := parseOptionalIntEnv("CLAUDE_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	historyLimit, err := parseOptionalIntEnv("CHAT_HISTORY_LIMIT")
	if err != nil {
		return AIConfig{}, err
	}

	cfg := AIConfig{
		APIKey:    strings.TrimSpace(os.Getenv("CLAUDE_API_KEY")),
		Model:     getEnvOrDefault("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
		BaseURL:   getEnvOrDefault("CLAUDE_BASE_URL", "https://api.anthropic.com"),
		MaxTokens: 1024,
	}
	if maxTokens != nil {
		cfg.MaxTokens = *maxTokens
	}
	if historyLimit != nil {
		cfg.HistoryLimit = *historyLimit
	}
	return cfg, nil
}

// StoreConfig describes the key-value backend. An empty Addr selects
// the in-process store.
type StoreConfig struct {
	Addr     string
	Password string
	DB       int
}

func loadStoreConfig() StoreConfig {
	db := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	return StoreConfig{
		Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
