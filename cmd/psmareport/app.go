package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/radiolabs/psmareport/internal/backend"
	"github.com/radiolabs/psmareport/internal/config"
	"github.com/radiolabs/psmareport/internal/logging"
	"github.com/radiolabs/psmareport/internal/pipeline"
	"github.com/radiolabs/psmareport/internal/rag"
	"github.com/radiolabs/psmareport/internal/schema"
)

// defaultKeyFile is consulted when the config points at no key file.
const defaultKeyFile = "api_key.txt"

// app bundles the wired components shared by the commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	reg    *schema.Registry
}

func newApp() (*app, error) {
	// Bootstrap logger so config loading problems are visible; replaced by
	// the configured logger right after.
	boot, err := logging.New(logging.Config{})
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, boot)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	reg, err := schema.NewRegistry(schema.Language(cfg.Language))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, reg: reg}, nil
}

// invoker builds the configured LLM backend.
func (a *app) invoker() (backend.Invoker, error) {
	retry := a.cfg.Backend.Retry.Policy()

	switch a.cfg.Backend.Provider {
	case config.ProviderOllama:
		ocfg := a.cfg.Backend.Ollama
		ocfg.Retry = retry
		return backend.NewOllamaBackend(ocfg, a.logger)

	case config.ProviderChat:
		ccfg := a.cfg.Backend.Chat
		ccfg.Retry = retry
		if ccfg.APIKey == "" {
			keyFile := a.cfg.Backend.APIKeyFile
			if keyFile == "" {
				if _, err := os.Stat(defaultKeyFile); err == nil {
					keyFile = defaultKeyFile
				}
			}
			if keyFile != "" {
				key, err := config.ReadAPIKey(keyFile)
				if err != nil {
					return nil, err
				}
				ccfg.APIKey = key
			}
		}
		return backend.NewChatBackend(ccfg, a.logger)

	default:
		return nil, fmt.Errorf("unknown backend provider %q", a.cfg.Backend.Provider)
	}
}

// contextSource builds the RAG store when enabled, indexing the configured
// corpus (a no-op when the corpus file is unchanged). Returns nil when RAG
// is disabled.
func (a *app) contextSource(ctx context.Context) (pipeline.ContextSource, error) {
	if !a.cfg.RAG.Enabled {
		return nil, nil
	}

	embedder, err := rag.NewEmbedder(a.cfg.RAG.Embedder)
	if err != nil {
		return nil, err
	}
	store, err := rag.NewStore(a.cfg.RAG.Store, embedder, a.logger)
	if err != nil {
		return nil, err
	}
	if a.cfg.RAG.CorpusPath != "" {
		if _, err := store.IndexCSV(ctx, a.cfg.RAG.CorpusPath); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// runner wires the full extraction pipeline.
func (a *app) runner(ctx context.Context) (*pipeline.Runner, error) {
	inv, err := a.invoker()
	if err != nil {
		return nil, err
	}
	source, err := a.contextSource(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(a.reg, inv, source, a.cfg.Pipeline, a.logger)
}
