package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/aretw0/inquire/pkg/ports"
)

// Registry owns the process-wide reader for one input source.
// It implements ports.ReaderProvider.
type Registry struct {
	mu   sync.Mutex
	in   io.Reader
	out  io.Writer
	opts []Option
	pump *pump
	live *TextReader
}

// NewRegistry creates a registry over in/out. Nothing is read until the
// first Acquire.
func NewRegistry(in io.Reader, out io.Writer, opts ...Option) *Registry {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Registry{in: in, out: out, opts: opts}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry bound to os.Stdin and os.Stdout.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(os.Stdin, os.Stdout)
	})
	return defaultRegistry
}

// Acquire resumes the live reader, or builds a new one if there is none.
func (g *Registry) Acquire() (ports.Reader, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.live != nil && !g.live.Closed() {
		return g.live, nil
	}
	if g.pump == nil {
		g.pump = newPump(g.in)
	}
	g.live = newTextReader(g.pump, rawModeFor(g.in), g.out, g.opts...)
	return g.live, nil
}

// Release closes the live reader and forgets it.
func (g *Registry) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.live == nil {
		return nil
	}
	err := g.live.Close()
	g.live = nil
	return err
}

// Live reports whether a reader is currently acquired and open.
func (g *Registry) Live() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.live != nil && !g.live.Closed()
}
