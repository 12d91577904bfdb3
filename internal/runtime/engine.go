package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/inquire/internal/logging"
	"github.com/aretw0/inquire/pkg/domain"
	"github.com/aretw0/inquire/pkg/ports"
)

// Engine is the question sequencer. It walks an ordered question set,
// asking one question at a time through the Reader it acquires from its
// provider, and ends with either the full answer map or a CancelledError.
type Engine struct {
	provider ports.ReaderProvider
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	styler   Styler
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithStyler sets how message and error lines are decorated.
func WithStyler(s Styler) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.styler = s
		}
	}
}

// NewEngine creates a sequencer bound to a reader provider.
func NewEngine(provider ports.ReaderProvider, opts ...EngineOption) *Engine {
	e := &Engine{
		provider: provider,
		logger:   logging.NewNop(),
		styler:   plainStyler{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run is the ephemeral state of one invocation.
type run struct {
	keys      []string
	questions []domain.Question
	index     int
	answers   domain.Answers
	reader    ports.Reader
	closed    bool
}

// Run asks every question of set in order and returns the collected answers.
// A malformed set fails with an InvalidOptionsError before the reader is touched.
// If the operator closes the input early, the partial answers are returned
// together with a CancelledError.
func (e *Engine) Run(ctx context.Context, set *domain.QuestionSet) (domain.Answers, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	reader, err := e.provider.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire reader: %w", err)
	}

	r := &run{
		keys:      set.Keys(),
		questions: set.Questions(),
		answers:   make(domain.Answers, set.Len()),
		reader:    reader,
	}

	runErr := e.sequence(ctx, r)

	if err := e.provider.Release(); err != nil {
		e.logger.Warn("failed to release reader", "error", err)
	}

	return e.finish(ctx, r, runErr)
}

func (e *Engine) sequence(ctx context.Context, r *run) error {
	for r.index = 0; r.index < len(r.keys); r.index++ {
		field, q := r.keys[r.index], r.questions[r.index]

		if len(q.DependsOn) > 0 && !DependenciesMet(q.DependsOn, r.answers) {
			r.answers[field] = nil
			e.logger.Debug("question skipped", "field", field)
			e.emitQuestion(ctx, e.hooks.OnSkip, domain.EventSkip, field, q, 0, nil)
			continue
		}

		value, err := e.ask(ctx, r, field, q)
		if err != nil {
			r.closed = true
			return err
		}
		r.answers[field] = value
		e.emitQuestion(ctx, e.hooks.OnAnswer, domain.EventAnswer, field, q, 0, value)
		if r.closed {
			return ports.ErrClosed
		}
	}
	return nil
}

// ask repeats one question until the reply validates or the reader fails.
func (e *Engine) ask(ctx context.Context, r *run, field string, q domain.Question) (any, error) {
	for attempt := 1; ; attempt++ {
		fallback := q.ResolveDefault(r.answers)
		prompt := renderPrompt(field, q, fallback)

		if msg := renderMessage(q); msg != "" {
			if _, err := fmt.Fprint(r.reader, e.styler.Message(msg)+"\n"); err != nil {
				return nil, err
			}
		}

		e.emitQuestion(ctx, e.hooks.OnAsk, domain.EventAsk, field, q, attempt, nil)

		reply, err := e.read(ctx, r, q, prompt)
		if err != nil {
			return nil, err
		}

		value := Coerce(reply)
		if verr := Validate(field, q, value, r.answers); verr != nil {
			e.logger.Debug("invalid reply", "field", field, "attempt", attempt, "reason", verr.(*ValidationError).Reason)
			e.emitQuestion(ctx, e.hooks.OnInvalid, domain.EventInvalid, field, q, attempt, nil)
			if r.closed {
				return nil, ports.ErrClosed
			}
			if _, err := fmt.Fprint(r.reader, e.styler.Error(renderError(q))+" \n"); err != nil {
				return nil, err
			}
			continue
		}

		if value == nil {
			value = fallback
		}
		return value, nil
	}
}

// read returns one reply. A reader that closes while leaving secret capture
// still delivers the reply it already read, and marks the run closed.
func (e *Engine) read(ctx context.Context, r *run, q domain.Question, prompt string) (string, error) {
	if q.Kind != domain.KindPassword {
		return r.reader.ReadLine(ctx, prompt)
	}

	if err := r.reader.BeginSecretCapture(); err != nil {
		return "", err
	}
	reply, err := r.reader.ReadSecret(ctx, prompt)
	if endErr := r.reader.EndSecretCapture(); endErr != nil && err == nil {
		if !errors.Is(endErr, ports.ErrClosed) {
			return "", endErr
		}
		r.closed = true
	}
	return reply, err
}

// finish decides the terminal result. Completion is checked before the
// close: a reader that closes once every field is answered is not a cancel.
func (e *Engine) finish(ctx context.Context, r *run, runErr error) (domain.Answers, error) {
	answered := len(r.answers)
	cancelled := r.closed && answered < len(r.keys)

	if e.hooks.OnFinish != nil {
		e.hooks.OnFinish(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFinish},
			Total:     len(r.keys),
			Answered:  answered,
			Cancelled: cancelled,
		})
	}

	if !cancelled {
		e.logger.Debug("run completed", "fields", len(r.keys))
		return r.answers, nil
	}

	e.logger.Debug("run cancelled", "answered", answered, "total", len(r.keys), "error", runErr)
	return r.answers, &domain.CancelledError{
		Answered: answered,
		Answers:  r.answers.Clone(),
		Cause:    runErr,
	}
}

func (e *Engine) emitQuestion(ctx context.Context, hook func(context.Context, *domain.QuestionEvent), typ domain.EventType, field string, q domain.Question, attempt int, value any) {
	if hook == nil {
		return
	}
	if q.Kind == domain.KindPassword {
		value = nil
	}
	hook(ctx, &domain.QuestionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Field:     field,
		Kind:      q.Kind,
		Attempt:   attempt,
		Value:     value,
	})
}
