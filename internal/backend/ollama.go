package backend

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

const defaultOllamaModel = "llama3.1"

// OllamaConfig configures a local Ollama backend.
type OllamaConfig struct {
	ServerURL string `koanf:"server_url"`
	Model     string `koanf:"model"`
	Retry     RetryPolicy
}

// OllamaBackend runs extraction against a local Ollama server. It exists so
// that reports never have to leave the machine.
type OllamaBackend struct {
	llm    *ollama.LLM
	retry  RetryPolicy
	logger *zap.Logger
}

// NewOllamaBackend creates an Ollama backend.
func NewOllamaBackend(cfg OllamaConfig, logger *zap.Logger) (*OllamaBackend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	opts := []ollama.Option{
		ollama.WithModel(model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}

	return &OllamaBackend{
		llm:    llm,
		retry:  cfg.Retry.normalized(),
		logger: logger.Named("backend.ollama"),
	}, nil
}

// InvokeBatch completes every request in order; see Invoker.
func (o *OllamaBackend) InvokeBatch(ctx context.Context, reqs []Request) ([]string, error) {
	answers := make([]string, len(reqs))
	for i, req := range reqs {
		answer, err := withRetry(ctx, o.retry, func(attemptCtx context.Context) (string, error) {
			return o.completeOne(attemptCtx, req.Content)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			o.logger.Warn("request failed after retries",
				zap.String("field", req.FieldKey),
				zap.Error(err))
			answer = Errorf("%v", err)
		}
		answers[i] = answer
	}
	return answers, nil
}

func (o *OllamaBackend) completeOne(ctx context.Context, content string) (string, error) {
	resp, err := o.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, SystemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, content),
		},
		llms.WithTemperature(0),
	)
	if err != nil {
		// Local server hiccups (model loading, connection refused) are
		// worth retrying.
		return "", &retryableError{err: fmt.Errorf("ollama generate failed: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from ollama")
	}
	return resp.Choices[0].Content, nil
}

var _ Invoker = (*OllamaBackend)(nil)
