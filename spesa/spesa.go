package spesa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/odit-bit/spesabot/spesa/assist"
	"github.com/odit-bit/spesabot/spesa/assist/driver"
	"github.com/odit-bit/spesabot/spesa/config"
	"github.com/odit-bit/spesabot/spesa/list"
	"github.com/odit-bit/spesabot/spesa/storage"
)

// Spesa wires the shopping-list store and the AI assistant together. It is
// constructed once at process start and handed to the command layers.
type Spesa struct {
	Lists  *list.Store
	Assist *assist.Assistant
}

func New(ctx context.Context, cfg *config.Config) (*Spesa, error) {
	if cfg.Server.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("configuration", "provider", cfg.Provider.Name, "store", cfg.Store.Path)
	}

	// list store
	file := storage.NewFile(cfg.Store.Path)
	store, err := list.Open(file)
	if err != nil {
		return nil, fmt.Errorf("spesa open store: %w", err)
	}

	// llm provider
	provider, err := buildProvider(ctx, cfg.Provider)
	if err != nil {
		return nil, err
	}

	a := assist.New(
		provider,
		cfg.Provider.Model,
		assist.WithFallbackModel(cfg.Provider.FallbackModel),
		assist.WithTimeout(cfg.Provider.Timeout),
	)

	return &Spesa{
		Lists:  store,
		Assist: a,
	}, nil
}

// buildProvider returns nil (not an error) when the provider needs a
// credential and none is configured; the assistant then answers with its
// fixed unavailable message.
func buildProvider(ctx context.Context, p config.Provider) (assist.Provider, error) {
	switch p.Name {
	case "openai":
		if p.ApiKey == "" {
			slog.Warn("provider api key not set, assistant disabled")
			return nil, nil
		}
		return driver.NewOpenAI(p.Endpoint, p.ApiKey), nil

	case "ollama":
		return driver.NewOllamaAdapter(p.Endpoint)

	case "genai":
		if p.ApiKey == "" {
			slog.Warn("provider api key not set, assistant disabled")
			return nil, nil
		}
		return driver.NewGeminiAdapter(ctx, p.ApiKey)

	default:
		return nil, fmt.Errorf("unknown provider specified in config: %s", p.Name)
	}
}
