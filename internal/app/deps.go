package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/cache"
	"resume-analyzer/internal/config"
	"resume-analyzer/internal/inference"
	"resume-analyzer/internal/logger"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Cache    cache.Cache
	LLM      inference.Client
	Analyzer analysis.Analyzer
}

// Build loads env, config, and shared components.
func Build(ctx context.Context) (Deps, error) {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llm, err := buildLLM(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize inference client: %w", err)
	}
	cch, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}

	svc := analysis.NewService(analysis.ServiceConfig{
		MaxDocumentSize: cfg.MaxDocumentSize,
		CacheTTL:        time.Duration(cfg.CacheTTL) * time.Second,
		FetchTimeout:    time.Duration(cfg.FetchTimeout) * time.Second,
	}, llm, cch, log)

	return Deps{
		Config:   cfg,
		Log:      log,
		Cache:    cch,
		LLM:      llm,
		Analyzer: svc,
	}, nil
}

func buildLLM(ctx context.Context, cfg config.Config, log *slog.Logger) (inference.Client, error) {
	var client inference.Client
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		c, err := inference.NewGeminiClient(ctx, cfg.GeminiKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini inference client", "model", cfg.LLMModel)
		client = c
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		c, err := inference.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI inference client", "model", cfg.LLMModel)
		client = c
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}

	return inference.WithRetry(client, cfg.LLMMaxRetries, 500*time.Millisecond), nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
		log.Info("using Redis result cache")
		return c, nil
	case "noop":
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: noop, redis)", cfg.CacheProvider)
	}
}
