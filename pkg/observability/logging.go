package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/inquire/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level. Values are never
// logged, only field names and counts.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	question := func(msg string) func(context.Context, *domain.QuestionEvent) {
		return func(ctx context.Context, e *domain.QuestionEvent) {
			logger.DebugContext(ctx, msg, "field", e.Field, "kind", string(e.Kind), "attempt", e.Attempt)
		}
	}

	return domain.LifecycleHooks{
		OnAsk:     question("question_asked"),
		OnAnswer:  question("question_answered"),
		OnInvalid: question("reply_invalid"),
		OnSkip:    question("question_skipped"),
		OnFinish: func(ctx context.Context, e *domain.RunEvent) {
			logger.DebugContext(ctx, "run_finished",
				"total", e.Total,
				"answered", e.Answered,
				"cancelled", e.Cancelled,
			)
		},
	}
}
