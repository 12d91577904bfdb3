package testutils

import (
	"bytes"
	"context"
	"sync"

	"github.com/aretw0/inquire/pkg/ports"
)

// ScriptedReader replays a fixed list of replies. Once the script is
// exhausted every read reports ports.ErrClosed, as if the operator had
// closed the input channel.
type ScriptedReader struct {
	mu       sync.Mutex
	replies  []string
	Prompts  []string
	Secrets  []string
	Output   bytes.Buffer
	Captures int
	capture  bool
}

// NewScriptedReader creates a reader answering with replies in order.
func NewScriptedReader(replies ...string) *ScriptedReader {
	return &ScriptedReader{replies: replies}
}

func (s *ScriptedReader) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Output.Write(p)
}

func (s *ScriptedReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prompts = append(s.Prompts, prompt)
	return s.next(ctx)
}

func (s *ScriptedReader) BeginSecretCapture() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture = true
	s.Captures++
	return nil
}

func (s *ScriptedReader) ReadSecret(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prompts = append(s.Prompts, prompt)
	s.Secrets = append(s.Secrets, prompt)
	return s.next(ctx)
}

func (s *ScriptedReader) EndSecretCapture() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture = false
	return nil
}

// Capturing reports whether the reader is between Begin and EndSecretCapture.
func (s *ScriptedReader) Capturing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture
}

// Remaining returns how many scripted replies were not consumed.
func (s *ScriptedReader) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replies)
}

func (s *ScriptedReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.replies) == 0 {
		return "", ports.ErrClosed
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

// ScriptedProvider hands out a single ScriptedReader and counts lifecycle calls.
type ScriptedProvider struct {
	Reader   *ScriptedReader
	Acquired int
	Released int
	live     bool
}

// NewScriptedProvider wraps a reader answering with replies.
func NewScriptedProvider(replies ...string) *ScriptedProvider {
	return &ScriptedProvider{Reader: NewScriptedReader(replies...)}
}

func (p *ScriptedProvider) Acquire() (ports.Reader, error) {
	p.Acquired++
	p.live = true
	return p.Reader, nil
}

func (p *ScriptedProvider) Release() error {
	p.Released++
	p.live = false
	return nil
}

// Live reports whether the reader is currently acquired.
func (p *ScriptedProvider) Live() bool {
	return p.live
}
