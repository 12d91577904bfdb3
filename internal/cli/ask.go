package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/inquire/pkg/adapters/file"
)

// RunAsk asks every question of the file at path and prints the answers.
func (s *Session) RunAsk(ctx context.Context, path string) error {
	doc, set, err := file.Load(path)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	s.Logger.Debug("question file loaded", "path", path, "fields", set.Len())

	s.intro(doc.Description)

	answers, runErr := s.engine().Get(ctx, set)
	if err := s.finish(runErr); err != nil {
		return err
	}

	if err := writeAnswers(s.Out, s.Opts.Format, set.Keys(), answers); err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to write answers: %w", err)}
	}
	return nil
}
