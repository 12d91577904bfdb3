package terminal

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// RawModeFunc puts the input into per-keystroke mode and returns a function
// restoring the previous mode.
type RawModeFunc func() (restore func() error, err error)

type fdReader interface {
	Fd() uintptr
}

// rawModeFor returns a RawModeFunc for src. Sources that are not terminals
// (pipes, files, buffers) already deliver every byte, so nothing changes.
func rawModeFor(src io.Reader) RawModeFunc {
	f, ok := src.(fdReader)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	fd := int(f.Fd())
	return func() (func() error, error) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		return func() error {
			return term.Restore(fd, state)
		}, nil
	}
}

// IsTerminal reports whether src is attached to a terminal.
func IsTerminal(src io.Reader) bool {
	f, ok := src.(fdReader)
	return ok && term.IsTerminal(int(f.Fd()))
}
