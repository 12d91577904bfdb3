package terminal

import (
	"bufio"
	"io"
	"sync"
)

type runeResult struct {
	r   rune
	err error
}

// pump reads runes from src on a single goroutine. The channel is
// unbuffered, so a rune is only consumed when a reader asks for it.
type pump struct {
	src       *bufio.Reader
	ch        chan runeResult
	startOnce sync.Once

	// swallowLF is shared by every view over the source.
	mu        sync.Mutex
	swallowLF bool
}

func newPump(src io.Reader) *pump {
	return &pump{
		src: bufio.NewReader(src),
		ch:  make(chan runeResult),
	}
}

func (p *pump) start() <-chan runeResult {
	p.startOnce.Do(func() {
		go p.run()
	})
	return p.ch
}

func (p *pump) run() {
	for {
		r, _, err := p.src.ReadRune()
		if err != nil {
			// The error is delivered once, then the channel closes for good.
			p.ch <- runeResult{err: err}
			close(p.ch)
			return
		}
		p.ch <- runeResult{r: r}
	}
}

// afterSubmit records the key that ended a secret reply.
func (p *pump) afterSubmit(key rune) {
	p.mu.Lock()
	p.swallowLF = key == '\r'
	p.mu.Unlock()
}

// skip reports whether r is the "\n" of a "\r\n" pair already submitted.
func (p *pump) skip(r rune) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	skip := p.swallowLF && r == '\n'
	p.swallowLF = false
	return skip
}
