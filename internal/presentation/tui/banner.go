package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _                   _          ", "#818cf8"},
	{" (_)_ __   __ _ _   _(_)_ __ ___ ", "#a78bfa"},
	{" | | '_ \\ / _` | | | | | '__/ _ \\", "#c084fc"},
	{" | | | | | (_| | |_| | | | |  __/", "#e879f9"},
	{" |_|_| |_|\\__, |\\__,_|_|_|  \\___|", "#f472b6"},
	{"             |_|                 ", "#fb7185"},
}

// PrintBanner writes the inquire logo to w.
func PrintBanner(w io.Writer, s Styles) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		if s.profile == termenv.Ascii {
			fmt.Fprintln(w, line.text)
			continue
		}
		fmt.Fprintln(w, s.profile.String(line.text).Foreground(s.profile.Color(line.color)))
	}
	fmt.Fprintln(w)
}
