package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// DefaultWordWrap is the column width descriptions are wrapped at.
const DefaultWordWrap = 80

// NewRenderer returns a function that renders a question file description.
// Plain output keeps the markdown source as typed.
func NewRenderer(s Styles) (func(string) (string, error), error) {
	if s.profile == termenv.Ascii {
		return func(markdown string) (string, error) {
			text := strings.TrimSpace(markdown)
			if text == "" {
				return "", nil
			}
			return text + "\n\n", nil
		}, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultWordWrap),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		if strings.TrimSpace(markdown) == "" {
			return "", nil
		}
		return r.Render(markdown)
	}, nil
}
