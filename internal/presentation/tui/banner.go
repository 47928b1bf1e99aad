package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Towers banner followed by the version.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{" _____                          ", "#818cf8"},
		{"|_   _|____      _____ _ __ ___ ", "#a78bfa"},
		{"  | |/ _ \\ \\ /\\ / / _ \\ '__/ __|", "#c084fc"},
		{"  | | (_) \\ V  V /  __/ |  \\__ \\", "#e879f9"},
		{"  |_|\\___/ \\_/\\_/ \\___|_|  |___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
