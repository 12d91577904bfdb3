package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/inquire/pkg/ports"
)

// DefaultMask is echoed once per typed character of a secret.
const DefaultMask = "*"

// ErrNotCapturing is returned by ReadSecret outside Begin/EndSecretCapture.
var ErrNotCapturing = errors.New("secret capture not started")

// TextReader is a line-oriented view over an input pump.
// It implements ports.Reader.
type TextReader struct {
	pump     *pump
	out      io.Writer
	mask     string
	maxInput int
	rawMode  RawModeFunc

	mu        sync.Mutex
	closed    chan struct{}
	closeOnce sync.Once
	capturing bool
	restore   func() error
	eof       bool
}

// Option defines configuration for TextReader.
type Option func(*TextReader)

// WithMask sets the placeholder echoed for each secret character.
func WithMask(mask string) Option {
	return func(r *TextReader) {
		r.mask = mask
	}
}

// WithMaxInputSize caps the size of a single line.
func WithMaxInputSize(limit int) Option {
	return func(r *TextReader) {
		r.maxInput = limit
	}
}

// WithRawMode overrides how secret capture switches the terminal mode.
func WithRawMode(fn RawModeFunc) Option {
	return func(r *TextReader) {
		r.rawMode = fn
	}
}

// NewReader creates a standalone reader with its own pump over in.
// Use a Registry when the reader must be shared across runs.
func NewReader(in io.Reader, out io.Writer, opts ...Option) *TextReader {
	if in == nil {
		in = os.Stdin
	}
	return newTextReader(newPump(in), rawModeFor(in), out, opts...)
}

func newTextReader(p *pump, raw RawModeFunc, out io.Writer, opts ...Option) *TextReader {
	if out == nil {
		out = os.Stdout
	}
	r := &TextReader{
		pump:    p,
		out:     out,
		mask:    DefaultMask,
		rawMode: raw,
		closed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TextReader) Write(p []byte) (int, error) {
	if r.Closed() {
		return 0, ports.ErrClosed
	}
	return r.out.Write(p)
}

// ReadLine shows prompt and returns the next line without its terminator.
// Lines rejected by the sanitizer are reported and read again.
func (r *TextReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if _, err := io.WriteString(r, prompt); err != nil {
			return "", err
		}

		line, err := r.readLine(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(line, r.maxInput)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

func (r *TextReader) readLine(ctx context.Context) (string, error) {
	var b strings.Builder
	for {
		c, err := r.next(ctx)
		if err != nil {
			// An unterminated last line is still delivered; the close is reported on the next read.
			if errors.Is(err, ports.ErrClosed) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		switch c {
		case '\n':
			return strings.TrimSuffix(b.String(), "\r"), nil
		default:
			b.WriteRune(c)
		}
	}
}

// BeginSecretCapture switches a terminal source to raw mode.
func (r *TextReader) BeginSecretCapture() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capturing {
		return nil
	}
	if r.rawMode != nil {
		restore, err := r.rawMode()
		if err != nil {
			return err
		}
		r.restore = restore
	}
	r.capturing = true
	return nil
}

// ReadSecret shows prompt and reads keystrokes until enter, echoing one
// mask per character. Ctrl+C closes the whole reader.
func (r *TextReader) ReadSecret(ctx context.Context, prompt string) (string, error) {
	r.mu.Lock()
	capturing, raw := r.capturing, r.restore != nil
	r.mu.Unlock()
	if !capturing {
		return "", ErrNotCapturing
	}

	if _, err := io.WriteString(r, prompt); err != nil {
		return "", err
	}

	secret := newSecretBuffer(prompt, r.mask)
	for {
		c, err := r.next(ctx)
		if err != nil {
			return "", err
		}

		echo, action := secret.Feed(c)
		if raw && echo == "\n" {
			echo = "\r\n"
		}
		if echo != "" {
			if _, err := io.WriteString(r.out, echo); err != nil {
				return "", err
			}
		}

		switch action {
		case keySubmit:
			r.pump.afterSubmit(c)
			return secret.String(), nil
		case keyInterrupt:
			r.Close()
			return "", ports.ErrClosed
		}
	}
}

// EndSecretCapture restores the terminal mode saved by BeginSecretCapture.
func (r *TextReader) EndSecretCapture() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endCaptureLocked()
}

func (r *TextReader) endCaptureLocked() error {
	r.capturing = false
	if r.restore == nil {
		return nil
	}
	restore := r.restore
	r.restore = nil
	return restore()
}

// Close releases the view. The pump keeps running for the next reader.
func (r *TextReader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.closed)
		r.mu.Lock()
		err = r.endCaptureLocked()
		r.mu.Unlock()
	})
	return err
}

// Closed reports whether the reader was closed by Close, Ctrl+C or end of input.
func (r *TextReader) Closed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}

// next returns the next rune, or ports.ErrClosed / the context error.
func (r *TextReader) next(ctx context.Context) (rune, error) {
	ch := r.pump.start()
	for {
		r.mu.Lock()
		eof := r.eof
		r.mu.Unlock()
		if eof || r.Closed() {
			return 0, ports.ErrClosed
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-r.closed:
			return 0, ports.ErrClosed
		case res, ok := <-ch:
			if !ok || res.err != nil {
				r.mu.Lock()
				r.eof = true
				r.mu.Unlock()
				r.Close()
				if res.err != nil && !errors.Is(res.err, io.EOF) {
					return 0, fmt.Errorf("%w: %v", ports.ErrClosed, res.err)
				}
				return 0, ports.ErrClosed
			}

			if r.pump.skip(res.r) {
				continue
			}
			return res.r, nil
		}
	}
}
