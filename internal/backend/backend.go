// Package backend sends extraction questions to an LLM and returns the raw
// answers. Per-question failures are reported in-band with an ERROR marker
// so a single dead question never aborts a batch; a returned error means the
// whole batch failed (cancellation, misconfiguration).
package backend

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ErrorMarker prefixes an in-band failure answer. Downstream parsing treats
// marked answers as absent values.
const ErrorMarker = "ERROR:"

// Errorf renders an in-band failure answer.
func Errorf(format string, args ...any) string {
	return ErrorMarker + " " + fmt.Sprintf(format, args...)
}

// IsError reports whether a raw answer is an in-band failure.
func IsError(answer string) bool {
	return strings.HasPrefix(strings.TrimSpace(answer), ErrorMarker)
}

// Request is one extraction question bound to its field.
type Request struct {
	FieldKey string
	Content  string
}

// Invoker completes a batch of extraction requests. Implementations return
// one answer per request, in order, substituting ErrorMarker answers for
// requests that exhausted their retries.
type Invoker interface {
	InvokeBatch(ctx context.Context, reqs []Request) ([]string, error)
}

// RetryPolicy controls per-request retry behavior. Delays double on every
// attempt starting from BaseDelay.
type RetryPolicy struct {
	MaxRetries     int
	BaseDelay      time.Duration
	AttemptTimeout time.Duration
}

// DefaultRetryPolicy matches the production setting: eight retries starting
// at one second, thirty seconds per attempt.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     8,
		BaseDelay:      1 * time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxRetries <= 0 {
		p.MaxRetries = def.MaxRetries
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = def.AttemptTimeout
	}
	return p
}

// SystemPrompt is the instruction sent alongside every question.
const SystemPrompt = "You are a medical information extraction assistant. Answer the question using only the provided clinical text. Answer concisely."
