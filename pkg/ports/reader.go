package ports

import (
	"context"
	"errors"
	"io"
)

// ErrClosed is returned by a Reader once the operator closed the input channel.
var ErrClosed = errors.New("input closed")

// Reader is the line-oriented channel the sequencer talks to.
// Writes go to the operator's screen.
type Reader interface {
	io.Writer

	// ReadLine shows prompt and blocks until one line is entered.
	// The returned text has its line terminator removed and is otherwise untrimmed.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// BeginSecretCapture switches the reader into per-keystroke capture.
	BeginSecretCapture() error

	// ReadSecret reads a masked line. Only valid between Begin and EndSecretCapture.
	ReadSecret(ctx context.Context, prompt string) (string, error)

	// EndSecretCapture restores line mode.
	EndSecretCapture() error
}

// ReaderProvider owns the process-wide Reader.
// Acquire returns the live reader if there is one, or builds a new one.
// Release tears it down so a later Acquire builds a fresh one.
type ReaderProvider interface {
	Acquire() (Reader, error)
	Release() error
}
