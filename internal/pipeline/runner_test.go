package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiolabs/psmareport/internal/backend"
	"github.com/radiolabs/psmareport/internal/form"
	"github.com/radiolabs/psmareport/internal/schema"
)

// stubInvoker answers by field key and records every batch it receives.
type stubInvoker struct {
	answers   map[string]string
	batches   [][]backend.Request
	failBatch func(batch []backend.Request) error
}

func (s *stubInvoker) InvokeBatch(ctx context.Context, reqs []backend.Request) ([]string, error) {
	s.batches = append(s.batches, reqs)
	if s.failBatch != nil {
		if err := s.failBatch(reqs); err != nil {
			return nil, err
		}
	}
	out := make([]string, len(reqs))
	for i, req := range reqs {
		if a, ok := s.answers[req.FieldKey]; ok {
			out[i] = a
		} else {
			out[i] = "Unknown"
		}
	}
	return out, nil
}

func newRunner(t *testing.T, inv backend.Invoker, cfg Config) (*Runner, *form.State) {
	t.Helper()
	reg := schema.MustRegistry(schema.LanguageEN)
	r, err := NewRunner(reg, inv, nil, cfg, nil)
	require.NoError(t, err)
	return r, form.New(reg)
}

func TestRunBatchCount(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{BatchSize: 4})

	res, err := r.Run(context.Background(), "some report text", st)
	require.NoError(t, err)

	// Batches count over distinct prompt groups, not raw fields.
	n := len(st.Registry().PromptGroups())
	want := (n + 3) / 4
	assert.Equal(t, want, res.Batches)
	assert.Len(t, inv.batches, want)

	// Every batch but the last is full.
	for i, b := range inv.batches[:len(inv.batches)-1] {
		assert.Len(t, b, 4, "batch %d", i)
	}
	assert.LessOrEqual(t, len(inv.batches[len(inv.batches)-1]), 4)
}

func TestRunOneRequestPerPromptGroup(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{BatchSize: 200})

	_, err := r.Run(context.Background(), "report", st)
	require.NoError(t, err)
	require.Len(t, inv.batches, 1)

	groups := st.Registry().PromptGroups()
	reqs := inv.batches[0]
	require.Len(t, reqs, len(groups))
	for i, g := range groups {
		assert.Equal(t, g.Fields[0], reqs[i].FieldKey)
	}
}

func TestRunAppliesParsedAnswers(t *testing.T) {
	inv := &stubInvoker{answers: map[string]string{
		"chemotherapy":   "Yes, docetaxel was given.",
		"liver_suv_mean": "The liver SUV mean is 5.6.",
		"therapy_date":   "Therapy began on 2023/01/15.",
	}}
	r, st := newRunner(t, inv, Config{})

	res, err := r.Run(context.Background(), "report", st)
	require.NoError(t, err)
	assert.Zero(t, res.Failed)

	v, _ := st.Get("chemotherapy")
	assert.Equal(t, "Yes", v.Str())
	v, _ = st.Get("liver_suv_mean")
	assert.Equal(t, 5.6, v.Number())
	v, _ = st.Get("therapy_date")
	assert.Equal(t, "2023/01/15", v.Display())

	// Apply went through the single entrypoint: summary is current.
	assert.Contains(t, st.Summary(), "Chemotherapy?: Yes")
}

func TestRunPromptFormat(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{BatchSize: 200})

	_, err := r.Run(context.Background(), "the report body", st)
	require.NoError(t, err)
	require.Len(t, inv.batches, 1)

	first := inv.batches[0][0]
	assert.True(t, strings.HasPrefix(first.Content, "<prompt>You are nuclear medicine expert."))
	assert.Contains(t, first.Content, "</prompt>\n\nthe report body")
}

func TestRunTruncatesInput(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{BatchSize: 200, MaxInputLength: 10})

	long := strings.Repeat("x", 50)
	res, err := r.Run(context.Background(), long, st)
	require.NoError(t, err)
	assert.True(t, res.Truncated)

	content := inv.batches[0][0].Content
	assert.Contains(t, content, strings.Repeat("x", 10)+"...")
	assert.NotContains(t, content, strings.Repeat("x", 11))
}

func TestRunEmptyInput(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{})

	_, err := r.Run(context.Background(), "   \n\t ", st)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, inv.batches)
}

func TestRunBatchFailureIsContained(t *testing.T) {
	boom := errors.New("backend exploded")
	inv := &stubInvoker{
		answers: map[string]string{"chemotherapy": "Yes"},
	}
	inv.failBatch = func(batch []backend.Request) error {
		for _, req := range batch {
			if req.FieldKey == "radical_prostatectomy" {
				return boom
			}
		}
		return nil
	}
	r, st := newRunner(t, inv, Config{BatchSize: 1})

	res, err := r.Run(context.Background(), "report", st)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, []string{"radical_prostatectomy"}, res.FailedFields)

	// The failed field keeps its default; later batches still applied.
	v, _ := st.Get("radical_prostatectomy")
	assert.Equal(t, schema.UnknownAnswer, v.Str())
	v, _ = st.Get("chemotherapy")
	assert.Equal(t, "Yes", v.Str())
}

func TestRunInBandErrorsSkipField(t *testing.T) {
	inv := &stubInvoker{answers: map[string]string{
		"chemotherapy": backend.Errorf("max retries exceeded"),
		"arpi":         "Yes",
	}}
	r, st := newRunner(t, inv, Config{})

	res, err := r.Run(context.Background(), "report", st)
	require.NoError(t, err)
	assert.Contains(t, res.FailedFields, "chemotherapy")

	v, _ := st.Get("chemotherapy")
	assert.Equal(t, schema.UnknownAnswer, v.Str())
	v, _ = st.Get("arpi")
	assert.Equal(t, "Yes", v.Str())
}

func TestRunCancellation(t *testing.T) {
	inv := &stubInvoker{}
	r, st := newRunner(t, inv, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, "report", st)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithContextSource(t *testing.T) {
	inv := &stubInvoker{}
	reg := schema.MustRegistry(schema.LanguageEN)
	src := contextSourceFunc(func(ctx context.Context, query string, k int) ([]string, error) {
		return []string{"passage one", "passage two"}, nil
	})
	r, err := NewRunner(reg, inv, src, Config{BatchSize: 200}, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), "report", form.New(reg))
	require.NoError(t, err)

	content := inv.batches[0][0].Content
	assert.Contains(t, content, "Relevant context:\npassage one\n---\npassage two")
}

func TestRunContextCountsAgainstInputCap(t *testing.T) {
	inv := &stubInvoker{}
	reg := schema.MustRegistry(schema.LanguageEN)
	src := contextSourceFunc(func(ctx context.Context, query string, k int) ([]string, error) {
		return []string{strings.Repeat("p", 100)}, nil
	})
	r, err := NewRunner(reg, inv, src, Config{BatchSize: 200, MaxInputLength: 40}, nil)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), "short report", form.New(reg))
	require.NoError(t, err)
	assert.True(t, res.Truncated)

	// The text after the prompt wrapper is capped, retrieved context
	// included.
	content := inv.batches[0][0].Content
	_, body, ok := strings.Cut(content, "</prompt>\n\n")
	require.True(t, ok)
	assert.LessOrEqual(t, len(body), 40+len("..."))
	assert.Contains(t, body, "Relevant context:")
}

type contextSourceFunc func(ctx context.Context, query string, k int) ([]string, error)

func (f contextSourceFunc) Retrieve(ctx context.Context, query string, k int) ([]string, error) {
	return f(ctx, query, k)
}

func TestBatches(t *testing.T) {
	mk := func(n int) []backend.Request {
		out := make([]backend.Request, n)
		for i := range out {
			out[i].FieldKey = string(rune('a' + i))
		}
		return out
	}

	tests := []struct {
		n, size, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{9, 4, 3},
		{3, 1, 3},
		{3, 0, 3}, // zero size clamps to 1
	}

	for _, tt := range tests {
		got := batches(mk(tt.n), tt.size)
		assert.Len(t, got, tt.want, "n=%d size=%d", tt.n, tt.size)
		total := 0
		for _, b := range got {
			total += len(b)
		}
		assert.Equal(t, tt.n, total)
	}
}
