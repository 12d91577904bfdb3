package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelledError(t *testing.T) {
	cause := errors.New("reader closed")
	err := fmt.Errorf("run: %w", &CancelledError{Answered: 2, Cause: cause})

	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "run: cancelled after giving 2 answers", err.Error())

	var cancelled *CancelledError
	assert.ErrorAs(t, err, &cancelled)
	assert.Equal(t, 2, cancelled.Answered)
}

func TestInvalidOptionsError(t *testing.T) {
	assert.EqualError(t, &InvalidOptionsError{Reason: "question set is nil"}, "invalid question set: question set is nil")
	assert.EqualError(t, &InvalidOptionsError{Field: "a", Reason: "duplicate field"}, `invalid question set: field "a": duplicate field`)
	assert.NotErrorIs(t, &InvalidOptionsError{}, ErrCancelled)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	first := LifecycleHooks{
		OnAsk: func(context.Context, *QuestionEvent) { calls = append(calls, "first") },
	}
	second := LifecycleHooks{
		OnAsk:    func(context.Context, *QuestionEvent) { calls = append(calls, "second") },
		OnFinish: func(context.Context, *RunEvent) { calls = append(calls, "finish") },
	}

	merged := first.Merge(second)
	merged.OnAsk(context.Background(), &QuestionEvent{})
	merged.OnFinish(context.Background(), &RunEvent{})

	assert.Equal(t, []string{"first", "second", "finish"}, calls)
	assert.Nil(t, merged.OnSkip)
}
