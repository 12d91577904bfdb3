package inquire

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/inquire/internal/presentation/tui"
	"github.com/aretw0/inquire/internal/runtime"
	"github.com/aretw0/inquire/pkg/domain"
	"github.com/aretw0/inquire/pkg/ports"
	"github.com/aretw0/inquire/pkg/terminal"
)

// ConfirmField is the answer key used by Confirm.
const ConfirmField = "reply"

// Styler decorates the message and error lines written around a prompt.
type Styler interface {
	Message(text string) string
	Error(text string) string
}

// Engine is the high-level entry point for the inquire library.
// It wraps the internal sequencer and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	provider ports.ReaderProvider
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	styler   Styler
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithProvider sets where readers come from. Defaults to terminal.Default().
func WithProvider(p ports.ReaderProvider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStyler sets how message and error lines are decorated.
func WithStyler(s Styler) Option {
	return func(e *Engine) {
		e.styler = s
	}
}

// WithColor toggles terminal styling: bold messages and red errors.
// Styling is on by default unless NO_COLOR is set.
func WithColor(enabled bool) Option {
	return func(e *Engine) {
		e.styler = tui.NewStyles(os.Stdout, !enabled)
	}
}

// New initializes an engine. Without WithProvider it reads from the
// process-wide terminal registry.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.provider == nil {
		eng.provider = terminal.Default()
	}
	if eng.styler == nil {
		eng.styler = tui.NewStyles(os.Stdout, false)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithStyler(eng.styler),
	}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}

	eng.runtime = runtime.NewEngine(eng.provider, runtimeOpts...)
	return eng
}

// Get asks every question of set in order.
// See runtime.Engine.Run for the error contract.
func (e *Engine) Get(ctx context.Context, set *domain.QuestionSet) (domain.Answers, error) {
	return e.runtime.Run(ctx, set)
}

// Confirm asks a single yes/no question defaulting to yes.
// It returns true for "y", "yes", "true" or an empty reply.
func (e *Engine) Confirm(ctx context.Context, message string) (bool, error) {
	set := domain.NewQuestionSet(domain.Field{
		Key: ConfirmField,
		Definition: domain.Question{
			Kind:    domain.KindConfirm,
			Message: message,
			Default: domain.Static("yes"),
		},
	})

	answers, err := e.Get(ctx, set)
	if err != nil {
		return false, err
	}

	switch v := answers[ConfirmField].(type) {
	case bool:
		return v, nil
	case string:
		return v == "yes", nil
	}
	return false, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

func std() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Get asks set on the process terminal.
func Get(ctx context.Context, set *domain.QuestionSet) (domain.Answers, error) {
	return std().Get(ctx, set)
}

// Confirm asks a yes/no question on the process terminal.
func Confirm(ctx context.Context, message string) (bool, error) {
	return std().Confirm(ctx, message)
}
