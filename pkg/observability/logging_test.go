package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/inquire/internal/logging"
	"github.com/aretw0/inquire/pkg/domain"
	"github.com/aretw0/inquire/pkg/observability"
)

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := observability.LoggingHooks(logging.NewWithWriter(&buf, slog.LevelDebug))
	ctx := context.Background()

	hooks.OnAnswer(ctx, &domain.QuestionEvent{Field: "token", Kind: domain.KindPassword, Value: "s3cret"})
	hooks.OnFinish(ctx, &domain.RunEvent{Total: 2, Answered: 1, Cancelled: true})

	out := buf.String()
	assert.Contains(t, out, "msg=question_answered")
	assert.Contains(t, out, "field=token")
	assert.NotContains(t, out, "s3cret")
	assert.Contains(t, out, "msg=run_finished")
	assert.Contains(t, out, "cancelled=true")
}
