package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radiolabs/psmareport/internal/backend"
	"github.com/radiolabs/psmareport/internal/form"
	"github.com/radiolabs/psmareport/internal/parse"
	"github.com/radiolabs/psmareport/internal/schema"
)

const (
	// DefaultBatchSize groups this many questions per backend call.
	DefaultBatchSize = 4
	// DefaultMaxInputLength is the report truncation limit in characters.
	DefaultMaxInputLength = 1024

	promptFormat = "<prompt>%s</prompt>\n\n%s"
)

// ErrEmptyInput rejects runs over reports that are blank after trimming.
var ErrEmptyInput = errors.New("report text is empty")

// ContextSource retrieves supporting passages for a report. Used to enrich
// the input handed to the backend; optional.
type ContextSource interface {
	Retrieve(ctx context.Context, query string, k int) ([]string, error)
}

// Config tunes an extraction run.
type Config struct {
	BatchSize      int `koanf:"batch_size"`
	MaxInputLength int `koanf:"max_input_length"`
	// ContextK is how many retrieved passages to include when a
	// ContextSource is set.
	ContextK int `koanf:"context_k"`
}

// ApplyDefaults fills zero values with production defaults.
func (c *Config) ApplyDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxInputLength <= 0 {
		c.MaxInputLength = DefaultMaxInputLength
	}
	if c.ContextK <= 0 {
		c.ContextK = 3
	}
}

// Result summarizes one extraction run.
type Result struct {
	Batches      int      `json:"batches"`
	Parsed       int      `json:"parsed"`
	Failed       int      `json:"failed"`
	FailedFields []string `json:"failed_fields,omitempty"`
	Truncated    bool     `json:"truncated"`
	Duration     float64  `json:"duration_seconds"`
}

// Runner executes extraction runs against a fixed schema and backend.
type Runner struct {
	reg     *schema.Registry
	invoker backend.Invoker
	source  ContextSource
	cfg     Config
	logger  *zap.Logger
}

// NewRunner builds a runner. source may be nil to run without retrieval.
func NewRunner(reg *schema.Registry, invoker backend.Invoker, source ContextSource, cfg Config, logger *zap.Logger) (*Runner, error) {
	if reg == nil {
		return nil, fmt.Errorf("schema registry required")
	}
	if invoker == nil {
		return nil, fmt.Errorf("backend invoker required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ApplyDefaults()
	return &Runner{
		reg:     reg,
		invoker: invoker,
		source:  source,
		cfg:     cfg,
		logger:  logger.Named("pipeline"),
	}, nil
}

// Run extracts every schema question from the report text and applies the
// parsed answers to st. Batches fail independently: an error from one batch
// marks its fields failed and the run continues with the next. The returned
// error is reserved for unusable input and cancellation.
func (r *Runner) Run(ctx context.Context, input string, st *form.State) (Result, error) {
	start := time.Now()

	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}, ErrEmptyInput
	}

	var res Result
	if r.source != nil {
		passages, err := r.source.Retrieve(ctx, input, r.cfg.ContextK)
		if err != nil {
			// Retrieval is an enrichment; the run proceeds without it.
			r.logger.Warn("context retrieval failed", zap.Error(err))
		} else if len(passages) > 0 {
			input = input + "\n\nRelevant context:\n" + strings.Join(passages, "\n---\n")
		}
	}

	// The cap bounds the full text handed to the backend, retrieved
	// context included.
	if len(input) > r.cfg.MaxInputLength {
		input = input[:r.cfg.MaxInputLength] + "..."
		res.Truncated = true
		InputTruncatedTotal.Inc()
	}

	reqs, members, err := r.buildRequests(input)
	if err != nil {
		return Result{}, err
	}

	parsed := make(map[string]schema.Value)
	for _, batch := range batches(reqs, r.cfg.BatchSize) {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Batches++

		batchStart := time.Now()
		answers, err := r.invoker.InvokeBatch(ctx, batch)
		BatchDuration.Observe(time.Since(batchStart).Seconds())
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			BatchesTotal.WithLabelValues("error").Inc()
			for _, req := range batch {
				for _, key := range members[req.FieldKey] {
					res.Failed++
					res.FailedFields = append(res.FailedFields, key)
					AnswersTotal.WithLabelValues("failed").Inc()
				}
			}
			r.logger.Error("batch failed",
				zap.Int("batch", res.Batches),
				zap.Int("fields", len(batch)),
				zap.Error(err))
			continue
		}
		BatchesTotal.WithLabelValues("success").Inc()

		for i, req := range batch {
			if i >= len(answers) || backend.IsError(answers[i]) {
				for _, key := range members[req.FieldKey] {
					res.Failed++
					res.FailedFields = append(res.FailedFields, key)
					AnswersTotal.WithLabelValues("failed").Inc()
				}
				continue
			}
			// One answer per prompt group; every member field parses
			// it against its own definition.
			for _, key := range members[req.FieldKey] {
				def, err := r.reg.Field(key)
				if err != nil {
					return res, err
				}
				v := parse.Answer(answers[i], def)
				if v.IsAbsent() {
					AnswersTotal.WithLabelValues("skipped").Inc()
					continue
				}
				parsed[key] = v
				res.Parsed++
				AnswersTotal.WithLabelValues("parsed").Inc()
			}
		}
	}

	if err := st.Apply(parsed); err != nil {
		return res, err
	}

	res.Duration = time.Since(start).Seconds()
	RunDuration.Observe(res.Duration)
	r.logger.Info("extraction run complete",
		zap.Int("batches", res.Batches),
		zap.Int("parsed", res.Parsed),
		zap.Int("failed", res.Failed),
		zap.Bool("truncated", res.Truncated))
	return res, nil
}

// buildRequests renders one formatted question per prompt group, in schema
// declaration order. Fields sharing a prompt key share a single request;
// the returned map carries each request's member field keys, keyed by the
// group's first field.
func (r *Runner) buildRequests(input string) ([]backend.Request, map[string][]string, error) {
	groups := r.reg.PromptGroups()
	reqs := make([]backend.Request, 0, len(groups))
	members := make(map[string][]string, len(groups))
	for _, g := range groups {
		lead := g.Fields[0]
		prompt, err := r.reg.Prompt(lead)
		if err != nil {
			return nil, nil, err
		}
		reqs = append(reqs, backend.Request{
			FieldKey: lead,
			Content:  fmt.Sprintf(promptFormat, prompt, input),
		})
		members[lead] = g.Fields
	}
	return reqs, members, nil
}
