package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Document limits
	MaxDocumentSize int64 `env:"MAX_DOCUMENT_SIZE" envDefault:"4194304"` // 4 MiB in bytes

	// Inference
	LLMProvider   string `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" (Gemini API) or "openai"
	GeminiKey     string `env:"GEMINI_API_KEY"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	LLMModel      string `env:"LLM_MODEL"` // empty picks the provider default
	LLMMaxRetries int    `env:"LLM_MAX_RETRIES" envDefault:"0"`

	// Result cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"noop"` // "noop" or "redis"
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"3600"` // seconds

	// Remote document fetch
	FetchTimeout int `env:"FETCH_TIMEOUT" envDefault:"30"` // seconds
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
