package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 8094, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ProviderChat, cfg.Backend.Provider)
	assert.Equal(t, 8, cfg.Backend.Retry.MaxRetries)
	assert.Equal(t, 1*time.Second, cfg.Backend.Retry.BaseDelay)
	assert.Equal(t, 4, cfg.Pipeline.BatchSize)
	assert.Equal(t, 1024, cfg.Pipeline.MaxInputLength)
	assert.False(t, cfg.RAG.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
language: de
server:
  port: 9000
backend:
  provider: ollama
  ollama:
    model: mistral
pipeline:
  batch_size: 2
  max_input_length: 512
logging:
  level: debug
  format: console
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, ProviderOllama, cfg.Backend.Provider)
	assert.Equal(t, "mistral", cfg.Backend.Ollama.Model)
	assert.Equal(t, 2, cfg.Pipeline.BatchSize)
	assert.Equal(t, 512, cfg.Pipeline.MaxInputLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("PSMAREPORT_SERVER_PORT", "9001")
	t.Setenv("PSMAREPORT_BACKEND_PROVIDER", "ollama")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, ProviderOllama, cfg.Backend.Provider)
}

func TestLoadUnparseableFileFallsBack(t *testing.T) {
	path := writeConfig(t, "{{{ not yaml")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 8094, cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	path := writeConfig(t, "language: fr\n")
	_, err := Load(path, nil)
	assert.Error(t, err)

	path = writeConfig(t, "backend:\n  provider: smoke-signals\n")
	_, err = Load(path, nil)
	assert.Error(t, err)
}

func TestLoadRAGRequiresEmbedder(t *testing.T) {
	path := writeConfig(t, "rag:\n  enabled: true\n")
	_, err := Load(path, nil)
	assert.Error(t, err)

	path = writeConfig(t, `
rag:
  enabled: true
  embedder:
    base_url: http://localhost:8080
    model: BAAI/bge-small-en-v1.5
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.RAG.Store.Path)
	assert.Equal(t, "report_corpus", cfg.RAG.Store.Collection)
}

func TestReadAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_key.txt")
	require.NoError(t, os.WriteFile(path, []byte("  sk-test-key \n"), 0o600))

	key, err := ReadAPIKey(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-key", key)

	_, err = ReadAPIKey(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = ReadAPIKey(empty)
	assert.Error(t, err)
}
