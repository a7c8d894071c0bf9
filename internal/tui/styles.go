package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/palette"
)

// Fixed colors. Everything tied to the session mood lives in theme.
var (
	colorMuted   = lipgloss.Color("#666666")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#F39C12")
	colorError   = lipgloss.Color("#E74C3C")
	colorFg      = lipgloss.Color("#C0CAF5")
	colorSubtle  = lipgloss.Color("#414868")
)

var (
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

// theme is the set of styles grown from the session palette.
type theme struct {
	tones  [palette.ToneCount]lipgloss.Color
	accent lipgloss.Color
	ink    lipgloss.Color
}

func newTheme(p palette.Palette) theme {
	var th theme
	for i, t := range p.Tones {
		th.tones[i] = lipgloss.Color(t)
	}
	th.accent = lipgloss.Color(p.Accent)
	th.ink = lipgloss.Color(p.Ink)
	return th
}

// primary is the mid-dark tone, readable on dark terminals.
func (t theme) primary() lipgloss.Color { return t.tones[2] }

func (t theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.tones[0])
}

func (t theme) highlight() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.tones[1])
}

func (t theme) accentText() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.accent)
}

func (t theme) activeTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.primary()).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.primary()).
		Padding(0, 2)
}

func (t theme) activePanel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.primary()).
		Padding(1, 2)
}

func (t theme) clock() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.tones[0]).
		Align(lipgloss.Center)
}

func (t theme) selectedItem() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent).Bold(true)
}

// swatches renders every palette color as a block, tones first.
func (t theme) swatches(width int) string {
	colors := append(t.tones[:], t.accent, t.ink)
	var blocks []string
	for _, c := range colors {
		blocks = append(blocks, lipgloss.NewStyle().Background(c).Render(strings.Repeat(" ", width)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
