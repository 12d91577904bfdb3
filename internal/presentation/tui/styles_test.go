package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyles_Plain(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)

	assert.Equal(t, "Pick one (options are a, b)", s.Message("Pick one (options are a, b)"))
	assert.Equal(t, "Invalid value.", s.Error("Invalid value."))
}

func TestStyles_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s := NewStyles(&bytes.Buffer{}, false)
	assert.Equal(t, "Name", s.Message("Name"))
}

func TestStyles_ANSI(t *testing.T) {
	s := StylesFor(termenv.ANSI)

	msg := s.Message("Name")
	assert.Contains(t, msg, "Name")
	assert.Contains(t, msg, "\x1b[1m", "messages are bold")

	errLine := s.Error("Invalid value.")
	assert.Contains(t, errLine, "Invalid value.")
	assert.Contains(t, errLine, "\x1b[31m", "errors are red")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, StylesFor(termenv.Ascii))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, len(bannerLines)+2, strings.Count(out, "\n"))
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(StylesFor(termenv.Ascii))
	require.NoError(t, err)

	out, err := render("  # Setup\n\nAnswer a few questions.  ")
	require.NoError(t, err)
	assert.Equal(t, "# Setup\n\nAnswer a few questions.\n\n", out)

	out, err = render("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewRenderer_Markdown(t *testing.T) {
	render, err := NewRenderer(StylesFor(termenv.ANSI256))
	require.NoError(t, err)

	out, err := render("Answer **a few** questions.")
	require.NoError(t, err)
	assert.Contains(t, out, "few")
}
