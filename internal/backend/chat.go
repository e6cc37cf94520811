package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultChatModel = "deepseek-chat"
	defaultMaxTokens = 512
	defaultTimeout   = 60 * time.Second
)

// Rate limiter defaults: 50 requests per minute.
const (
	defaultRateLimit = 50.0 / 60.0
	defaultBurst     = 5
)

// ChatConfig configures an OpenAI-compatible chat backend.
type ChatConfig struct {
	BaseURL   string  `koanf:"base_url"`
	Model     string  `koanf:"model"`
	APIKey    string  `koanf:"api_key"`
	MaxTokens int     `koanf:"max_tokens"`
	Timeout   int     `koanf:"timeout"`
	RateLimit float64 `koanf:"rate_limit"`
	Retry     RetryPolicy
}

// ChatBackend talks to any OpenAI-compatible /v1/chat/completions endpoint
// (OpenAI, DeepSeek, hospital API gateways).
type ChatBackend struct {
	model      string
	apiKey     string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      RetryPolicy
	logger     *zap.Logger
}

// NewChatBackend creates a chat backend. The API key is required; everything
// else has working defaults.
func NewChatBackend(cfg ChatConfig, logger *zap.Logger) (*ChatBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("chat backend API key required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("chat backend base URL required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	model := cfg.Model
	if model == "" {
		model = defaultChatModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	limit := rate.Limit(defaultRateLimit)
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &ChatBackend{
		model:     model,
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, defaultBurst),
		retry:   cfg.Retry.normalized(),
		logger:  logger.Named("backend.chat"),
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// InvokeBatch completes every request in order. A request that exhausts its
// retries yields an ErrorMarker answer; only context cancellation fails the
// batch as a whole.
func (c *ChatBackend) InvokeBatch(ctx context.Context, reqs []Request) ([]string, error) {
	answers := make([]string, len(reqs))
	for i, req := range reqs {
		answer, err := withRetry(ctx, c.retry, func(attemptCtx context.Context) (string, error) {
			return c.completeOne(attemptCtx, req.Content)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("request failed after retries",
				zap.String("field", req.FieldKey),
				zap.Error(err))
			answer = Errorf("%v", err)
		}
		answers[i] = answer
	}
	return answers, nil
}

func (c *ChatBackend) completeOne(ctx context.Context, content string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: content},
		},
		MaxTokens:   c.maxTokens,
		Temperature: 0, // deterministic extraction
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &retryableError{err: fmt.Errorf("API request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &retryableError{err: fmt.Errorf("rate limited (429)")}
	}
	if resp.StatusCode >= 500 {
		return "", &retryableError{err: fmt.Errorf("server error (%d): %s", resp.StatusCode, string(body))}
	}
	if resp.StatusCode != http.StatusOK {
		var errResp chatError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}
	return chatResp.Choices[0].Message.Content, nil
}

var _ Invoker = (*ChatBackend)(nil)
