// Package rag maintains a local corpus of prior reports and retrieves the
// passages most similar to an incoming report, so extraction prompts can be
// grounded in institution-specific phrasing.
package rag

import (
	"context"
	"fmt"

	lcembeddings "github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder turns text into a vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// EmbedderConfig configures the embedding provider. Any OpenAI-compatible
// embeddings endpoint works, including local TEI or Ollama gateways.
type EmbedderConfig struct {
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
	APIKey  string `koanf:"api_key"`
}

func (c EmbedderConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("embedder base URL required")
	}
	if c.Model == "" {
		return fmt.Errorf("embedder model required")
	}
	return nil
}

type openAIEmbedder struct {
	embedder *lcembeddings.EmbedderImpl
}

// NewEmbedder creates an embedder backed by an OpenAI-compatible endpoint.
func NewEmbedder(cfg EmbedderConfig) (Embedder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating embedder config: %w", err)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		// The client requires a token even for unauthenticated local
		// endpoints.
		apiKey = "placeholder"
	}

	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithEmbeddingModel(cfg.Model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embeddings client: %w", err)
	}

	embedder, err := lcembeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return &openAIEmbedder{embedder: embedder}, nil
}

func (e *openAIEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return vec, nil
}
