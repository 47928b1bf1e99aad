package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/towers/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Summary describes the end of a session for display.
type Summary struct {
	Player string
	Turns  int
	Done   bool
	Final  domain.Event // terminal event, set when Done
	Board  domain.Snapshot
}

// Markdown renders the summary as a markdown document.
func (s Summary) Markdown() string {
	var b strings.Builder
	if s.Done {
		fmt.Fprintf(&b, "# %s\n\n", s.Final)
	} else {
		b.WriteString("# Session paused\n\n")
	}
	fmt.Fprintf(&b, "**%s** played %d turns.\n\n", s.Player, s.Turns)
	b.WriteString("| Peg | Disks (bottom to top) |\n")
	b.WriteString("|---|---|\n")
	for i, sizes := range s.Board {
		parts := make([]string, len(sizes))
		for j, size := range sizes {
			parts[j] = fmt.Sprint(size)
		}
		disks := strings.Join(parts, " ")
		if disks == "" {
			disks = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", domain.PegNameFromIndex(i), disks)
	}
	return b.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// Without color it uses the plain "notty" style.
func NewRenderer(color bool) (func(string) (string, error), error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if color {
		// Automatically detect light/dark background
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
