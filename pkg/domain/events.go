package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAsk     EventType = "ask"
	EventAnswer  EventType = "answer"
	EventSkip    EventType = "skip"
	EventInvalid EventType = "invalid"
	EventFinish  EventType = "finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// QuestionEvent describes something that happened to a single field.
// Value is left empty for password questions.
type QuestionEvent struct {
	EventBase
	Field   string `json:"field"`
	Kind    Kind   `json:"kind,omitempty"`
	Attempt int    `json:"attempt,omitempty"`
	Value   any    `json:"value,omitempty"`
}

// RunEvent describes the end of a run.
type RunEvent struct {
	EventBase
	Total     int  `json:"total"`
	Answered  int  `json:"answered"`
	Cancelled bool `json:"cancelled"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnAsk     func(context.Context, *QuestionEvent)
	OnAnswer  func(context.Context, *QuestionEvent)
	OnSkip    func(context.Context, *QuestionEvent)
	OnInvalid func(context.Context, *QuestionEvent)
	OnFinish  func(context.Context, *RunEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAsk:     chainQuestion(h.OnAsk, other.OnAsk),
		OnAnswer:  chainQuestion(h.OnAnswer, other.OnAnswer),
		OnSkip:    chainQuestion(h.OnSkip, other.OnSkip),
		OnInvalid: chainQuestion(h.OnInvalid, other.OnInvalid),
		OnFinish:  chainRun(h.OnFinish, other.OnFinish),
	}
}

func chainQuestion(a, b func(context.Context, *QuestionEvent)) func(context.Context, *QuestionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *QuestionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainRun(a, b func(context.Context, *RunEvent)) func(context.Context, *RunEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *RunEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
