package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Styles decorates prompt output for a terminal. It satisfies the
// engine's Styler: messages are bold and errors are red.
type Styles struct {
	profile termenv.Profile
}

// NewStyles detects the color profile of out. With noColor set, or when
// NO_COLOR is present in the environment, every line is left plain.
func NewStyles(out io.Writer, noColor bool) Styles {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return Styles{profile: termenv.Ascii}
	}
	if out == nil {
		out = os.Stdout
	}
	return Styles{profile: termenv.NewOutput(out).Profile}
}

// StylesFor uses an explicit profile.
func StylesFor(p termenv.Profile) Styles {
	return Styles{profile: p}
}

// Message renders a question message line.
func (s Styles) Message(text string) string {
	if s.profile == termenv.Ascii {
		return text
	}
	return s.profile.String(text).Bold().String()
}

// Error renders a validation failure line.
func (s Styles) Error(text string) string {
	if s.profile == termenv.Ascii {
		return text
	}
	return s.profile.String(text).Foreground(s.profile.Color("1")).String()
}
