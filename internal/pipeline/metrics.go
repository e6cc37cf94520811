// Package pipeline drives extraction runs: it batches the schema's questions
// against a report, invokes the backend batch by batch, parses the answers
// and applies them to the form state.
package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesTotal counts invoked batches.
	// Labels: result (success, error)
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "psmareport",
			Subsystem: "pipeline",
			Name:      "batches_total",
			Help:      "Total number of extraction batches invoked",
		},
		[]string{"result"},
	)

	// AnswersTotal counts per-field answers.
	// Labels: result (parsed, failed, skipped)
	AnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "psmareport",
			Subsystem: "pipeline",
			Name:      "answers_total",
			Help:      "Total number of per-field extraction answers",
		},
		[]string{"result"},
	)

	// BatchDuration tracks how long one backend batch takes.
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "psmareport",
			Subsystem: "pipeline",
			Name:      "batch_duration_seconds",
			Help:      "Duration of one backend batch invocation in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// RunDuration tracks whole extraction runs.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "psmareport",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Duration of one full extraction run in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	// InputTruncatedTotal counts inputs cut to the length limit.
	InputTruncatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "psmareport",
			Subsystem: "pipeline",
			Name:      "input_truncated_total",
			Help:      "Total number of report inputs truncated to the length limit",
		},
	)
)
