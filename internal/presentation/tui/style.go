package tui

import (
	"fmt"

	"github.com/aretw0/towers/pkg/domain"
	"github.com/muesli/termenv"
)

// Styler renders session events as single text lines.
// With the termenv.Ascii profile the output carries no escape sequences.
type Styler struct {
	profile termenv.Profile
}

// NewStyler creates a styler for the given color profile.
func NewStyler(p termenv.Profile) *Styler {
	return &Styler{profile: p}
}

// FormatEvent renders "<index>: <event>".
func (s *Styler) FormatEvent(index int, event domain.Event) string {
	text := s.profile.String(event.String())
	switch event.Type {
	case domain.EventPlayerWins:
		text = text.Foreground(s.profile.Color("#22c55e")).Bold()
	case domain.EventPlayerGaveUp:
		text = text.Foreground(s.profile.Color("#eab308"))
	case domain.EventPlayerCheated:
		text = text.Foreground(s.profile.Color("#ef4444")).Bold()
	}
	prefix := s.profile.String(fmt.Sprintf("%d:", index)).Faint()
	return prefix.String() + " " + text.String()
}
