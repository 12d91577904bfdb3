package terminal

import (
	"strings"
	"unicode"
)

type keyAction int

const (
	keyContinue keyAction = iota
	keySubmit
	keyInterrupt
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// clearLine moves to column 0 and erases the whole line.
const clearLine = "\r\x1b[2K"

// secretBuffer accumulates a masked reply one keystroke at a time.
type secretBuffer struct {
	prompt string
	mask   string
	buf    []rune
	escape int // 0 none, 1 after ESC, 2 inside a CSI sequence
}

func newSecretBuffer(prompt, mask string) *secretBuffer {
	return &secretBuffer{prompt: prompt, mask: mask}
}

// Feed applies one keystroke and returns what must be echoed.
func (s *secretBuffer) Feed(r rune) (string, keyAction) {
	if s.escape > 0 {
		s.skipEscape(r)
		return "", keyContinue
	}

	switch r {
	case '\r', '\n':
		return "\n", keySubmit
	case keyCtrlC:
		return "", keyInterrupt
	case keyCtrlD:
		if len(s.buf) == 0 {
			return "", keyInterrupt
		}
		return "", keyContinue
	case keyBackspace, keyDelete:
		if len(s.buf) > 0 {
			s.buf = s.buf[:len(s.buf)-1]
		}
		return clearLine + s.prompt + strings.Repeat(s.mask, len(s.buf)), keyContinue
	case keyEscape:
		s.escape = 1
		return "", keyContinue
	}

	if unicode.IsControl(r) {
		return "", keyContinue
	}

	s.buf = append(s.buf, r)
	return s.mask, keyContinue
}

// skipEscape drops arrow keys and other CSI/SS3 sequences.
func (s *secretBuffer) skipEscape(r rune) {
	switch s.escape {
	case 1:
		if r == '[' || r == 'O' {
			s.escape = 2
			return
		}
		s.escape = 0
	case 2:
		if r >= 0x40 && r <= 0x7e {
			s.escape = 0
		}
	}
}

func (s *secretBuffer) String() string {
	return string(s.buf)
}
