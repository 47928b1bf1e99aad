package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/towers/internal/presentation/tui"
	"github.com/aretw0/towers/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyler_FormatEvent(t *testing.T) {
	plain := tui.NewStyler(termenv.Ascii)
	assert.Equal(t, "4: PlayerMovedDisk { from: Middle, to: Source }",
		plain.FormatEvent(4, domain.PlayerMovedDisk(domain.Middle, domain.Source)))
	assert.Equal(t, "9: PlayerWins", plain.FormatEvent(9, domain.PlayerWins()))

	colored := tui.NewStyler(termenv.ANSI256)
	line := colored.FormatEvent(9, domain.PlayerCheated("no disk"))
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, `PlayerCheated("no disk")`)
}

func TestSummary_Markdown(t *testing.T) {
	md := tui.Summary{
		Player: "Joe",
		Turns:  4,
		Done:   true,
		Final:  domain.PlayerWins(),
		Board:  domain.Snapshot{{}, {}, {2, 1}},
	}.Markdown()

	assert.Contains(t, md, "# PlayerWins")
	assert.Contains(t, md, "**Joe** played 4 turns.")
	assert.Contains(t, md, "| Source | - |")
	assert.Contains(t, md, "| Destination | 2 1 |")

	paused := tui.Summary{Player: "Joe", Board: domain.Snapshot{{1}, {}, {}}}.Markdown()
	assert.Contains(t, paused, "# Session paused")
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(false)
	require.NoError(t, err)

	out, err := render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii, "1.2.3")

	assert.Contains(t, buf.String(), "version 1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[")
}
