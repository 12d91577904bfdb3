package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/inquire/pkg/domain"
)

const namespace = "inquire"

// Run outcomes, used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
)

// Metrics holds the collectors fed by the engine hooks.
type Metrics struct {
	registry *prometheus.Registry

	asked    *prometheus.CounterVec
	answered *prometheus.CounterVec
	invalid  *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	runs     *prometheus.CounterVec
	progress prometheus.Histogram
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		asked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_asked_total",
			Help:      "Prompts shown, including retries.",
		}, []string{"field"}),
		answered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_answered_total",
			Help:      "Questions that received a valid answer.",
		}, []string{"field"}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_invalid_total",
			Help:      "Replies rejected by validation.",
		}, []string{"field"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_skipped_total",
			Help:      "Questions skipped because a dependency did not hold.",
		}, []string{"field"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by outcome.",
		}, []string{"outcome"}),
		progress: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_progress_ratio",
			Help:      "Share of fields answered when a run finished.",
			Buckets:   prometheus.LinearBuckets(0, 0.25, 5),
		}),
	}
	m.registry.MustRegister(m.asked, m.answered, m.invalid, m.skipped, m.runs, m.progress)
	return m
}

// Registry exposes the registry, e.g. for promhttp or Gather.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAsk: func(_ context.Context, e *domain.QuestionEvent) {
			m.asked.WithLabelValues(e.Field).Inc()
		},
		OnAnswer: func(_ context.Context, e *domain.QuestionEvent) {
			m.answered.WithLabelValues(e.Field).Inc()
		},
		OnInvalid: func(_ context.Context, e *domain.QuestionEvent) {
			m.invalid.WithLabelValues(e.Field).Inc()
		},
		OnSkip: func(_ context.Context, e *domain.QuestionEvent) {
			m.skipped.WithLabelValues(e.Field).Inc()
		},
		OnFinish: func(_ context.Context, e *domain.RunEvent) {
			outcome := OutcomeCompleted
			if e.Cancelled {
				outcome = OutcomeCancelled
			}
			m.runs.WithLabelValues(outcome).Inc()
			if e.Total > 0 {
				m.progress.Observe(float64(e.Answered) / float64(e.Total))
			}
		},
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
