package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/inquire"
	"github.com/aretw0/inquire/internal/logging"
	"github.com/aretw0/inquire/internal/presentation/tui"
	"github.com/aretw0/inquire/pkg/domain"
	"github.com/aretw0/inquire/pkg/observability"
	"github.com/aretw0/inquire/pkg/terminal"
)

// Session bundles the streams and settings of one command. Prompts go to
// Err so that Out only ever carries results.
type Session struct {
	Opts   Options
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger

	styles   tui.Styles
	registry *terminal.Registry
	metrics  *observability.Metrics
}

// NewSession prepares a session over the given streams.
func NewSession(opts Options, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		Opts:     opts,
		In:       in,
		Out:      out,
		Err:      errOut,
		Logger:   createLogger(errOut, opts.Debug),
		styles:   tui.NewStyles(errOut, opts.NoColor),
		registry: terminal.NewRegistry(in, errOut),
		metrics:  observability.NewMetrics(),
	}
}

// createLogger configures the application logger.
// Logs share Stderr with the prompts, so they stay quiet unless debugging.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	return logging.NewWithWriter(w, logging.Level(debug))
}

func (s *Session) engine() *inquire.Engine {
	hooks := s.metrics.Hooks()
	if s.Opts.Debug {
		hooks = hooks.Merge(observability.LoggingHooks(s.Logger))
	}

	return inquire.New(
		inquire.WithProvider(s.registry),
		inquire.WithLogger(s.Logger),
		inquire.WithLifecycleHooks(hooks),
		inquire.WithStyler(s.styles),
	)
}

// intro prints the banner and the rendered description, when enabled.
func (s *Session) intro(description string) {
	if s.Opts.Banner {
		tui.PrintBanner(s.Err, s.styles)
	}
	if description == "" {
		return
	}

	render, err := tui.NewRenderer(s.styles)
	if err != nil {
		s.Logger.Warn("failed to create markdown renderer", "error", err)
		fmt.Fprintln(s.Err, description)
		return
	}
	out, err := render(description)
	if err != nil {
		s.Logger.Warn("failed to render description", "error", err)
		out = description + "\n"
	}
	fmt.Fprint(s.Err, out)
}

// finish flushes metrics and maps a run error to an exit code.
func (s *Session) finish(err error) error {
	if s.Opts.MetricsFile != "" {
		if werr := s.metrics.WriteTextfile(s.Opts.MetricsFile); werr != nil {
			s.Logger.Warn("failed to write metrics", "path", s.Opts.MetricsFile, "error", werr)
		}
	}

	if err == nil {
		return nil
	}
	if isCancelled(err) {
		// The prompt line is still open.
		fmt.Fprintln(s.Err)
		return &ExitError{Code: ExitCancelled, Err: err}
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

func isCancelled(err error) bool {
	return errors.Is(err, domain.ErrCancelled) || errors.Is(err, context.Canceled)
}
