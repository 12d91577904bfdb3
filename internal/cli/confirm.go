package cli

import (
	"context"
)

// RunConfirm asks a yes/no question. Declining is reported as ExitDeclined
// with nothing to print.
func (s *Session) RunConfirm(ctx context.Context, message string) error {
	ok, err := s.engine().Confirm(ctx, message)
	if err := s.finish(err); err != nil {
		return err
	}
	if !ok {
		return &ExitError{Code: ExitDeclined}
	}
	return nil
}
