// Package config provides configuration loading for psmareport.
package config

import (
	"fmt"
	"time"

	"github.com/radiolabs/psmareport/internal/backend"
	"github.com/radiolabs/psmareport/internal/logging"
	"github.com/radiolabs/psmareport/internal/pipeline"
	"github.com/radiolabs/psmareport/internal/rag"
	"github.com/radiolabs/psmareport/internal/schema"
)

// Backend provider names.
const (
	ProviderChat   = "chat"
	ProviderOllama = "ollama"
)

// Config is the full application configuration.
type Config struct {
	// Language selects the extraction prompt localization (en, de).
	Language string `koanf:"language"`

	Server   ServerConfig    `koanf:"server"`
	Backend  BackendConfig   `koanf:"backend"`
	Pipeline pipeline.Config `koanf:"pipeline"`
	RAG      RAGConfig       `koanf:"rag"`
	Logging  logging.Config  `koanf:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// BackendConfig selects and configures the LLM backend.
type BackendConfig struct {
	// Provider is chat (OpenAI-compatible HTTP) or ollama (local).
	Provider string `koanf:"provider"`
	// APIKeyFile holds the bearer key for the chat provider; read at
	// startup so the key never lives in the config file.
	APIKeyFile string               `koanf:"api_key_file"`
	Chat       backend.ChatConfig   `koanf:"chat"`
	Ollama     backend.OllamaConfig `koanf:"ollama"`
	Retry      RetryConfig          `koanf:"retry"`
}

// RetryConfig is the wire form of backend.RetryPolicy.
type RetryConfig struct {
	MaxRetries     int           `koanf:"max_retries"`
	BaseDelay      time.Duration `koanf:"base_delay"`
	AttemptTimeout time.Duration `koanf:"attempt_timeout"`
}

// Policy converts to a backend.RetryPolicy.
func (r RetryConfig) Policy() backend.RetryPolicy {
	return backend.RetryPolicy{
		MaxRetries:     r.MaxRetries,
		BaseDelay:      r.BaseDelay,
		AttemptTimeout: r.AttemptTimeout,
	}
}

// RAGConfig configures retrieval enrichment.
type RAGConfig struct {
	Enabled bool `koanf:"enabled"`
	// CorpusPath is the CSV of prior reports to index.
	CorpusPath string             `koanf:"corpus_path"`
	Store      rag.StoreConfig    `koanf:"store"`
	Embedder   rag.EmbedderConfig `koanf:"embedder"`
}

// ApplyDefaults sets default values for missing configuration fields.
func (c *Config) ApplyDefaults() {
	if c.Language == "" {
		c.Language = string(schema.LanguageEN)
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8094
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Backend.Provider == "" {
		c.Backend.Provider = ProviderChat
	}
	if c.Backend.Retry.MaxRetries == 0 {
		def := backend.DefaultRetryPolicy()
		c.Backend.Retry.MaxRetries = def.MaxRetries
		c.Backend.Retry.BaseDelay = def.BaseDelay
		c.Backend.Retry.AttemptTimeout = def.AttemptTimeout
	}

	c.Pipeline.ApplyDefaults()
	c.RAG.Store.ApplyDefaults()
	if c.RAG.Enabled && c.RAG.Store.Path == "" {
		c.RAG.Store.Path = defaultVectorStorePath()
	}
	c.Logging.ApplyDefaults()
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	switch c.Language {
	case string(schema.LanguageEN), string(schema.LanguageDE):
	default:
		return fmt.Errorf("unsupported language %q", c.Language)
	}

	switch c.Backend.Provider {
	case ProviderChat, ProviderOllama:
	default:
		return fmt.Errorf("unknown backend provider %q", c.Backend.Provider)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	if c.RAG.Enabled {
		if err := c.RAG.Embedder.Validate(); err != nil {
			return fmt.Errorf("rag enabled: %w", err)
		}
	}
	return nil
}
