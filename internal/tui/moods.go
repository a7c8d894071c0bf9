package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/session"
)

type moodsModel struct {
	width  int
	height int

	moods  []palette.Mood
	cursor int

	formActive bool
	form       *huh.Form
	formSeed   *string
}

func newMoodsModel(moods []palette.Mood, seed string) moodsModel {
	if len(moods) == 0 {
		moods = palette.Moods
	}
	s := ""
	m := moodsModel{moods: moods, formSeed: &s}
	if i := palette.FindMood(moods, seed); i >= 0 {
		m.cursor = i
	}
	return m
}

func (m *moodsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m moodsModel) update(msg tea.Msg, snap session.Snapshot) (moodsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msgKey, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if m.cursor < len(m.moods)-1 {
			m.cursor++
		}
	case key.Matches(msgKey, keys.Enter):
		seed := m.moods[m.cursor].Seed
		return m, func() tea.Msg { return seedChosenMsg{seed: seed} }
	case key.Matches(msgKey, keys.Custom):
		return m.showSeedForm(snap.Params.Seed)
	}
	return m, nil
}

func validateSeed(s string) error {
	if !palette.Valid(s) {
		return errors.New("use a CSS color like #8aa3ff, teal or oklch(0.7 0.1 260)")
	}
	return nil
}

func (m moodsModel) showSeedForm(current string) (moodsModel, tea.Cmd) {
	*m.formSeed = current

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seed color").
				Description("Any CSS color; the palette grows from it").
				Validate(validateSeed).
				Value(m.formSeed),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m moodsModel) updateForm(msg tea.Msg) (moodsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		seed := strings.TrimSpace(*m.formSeed)
		if i := palette.FindMood(m.moods, seed); i >= 0 {
			m.cursor = i
		}
		return m, func() tea.Msg { return seedChosenMsg{seed: seed} }
	}
	return m, cmd
}

func (m moodsModel) view(snap session.Snapshot, th theme) string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return th.activePanel().Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, th.title().Render("Mood"), "", m.form.View()),
		)
	}

	current := palette.FindMood(m.moods, snap.Params.Seed)

	rows := []string{th.title().Render("Mood"), ""}
	for i, mood := range m.moods {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Generate(mood.Seed).Tones[2])).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = th.selectedItem()
		}
		mark := " "
		if i == current {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%s %s %-10s", cursor, mark, dot, mood.Label)
		rows = append(rows, style.Render(line)+"  "+mutedStyle.Render(mood.Hint))
	}
	if current < 0 {
		rows = append(rows, "", th.highlight().Render("  custom seed "+snap.Params.Seed))
	}

	rows = append(rows, "", th.title().Render("Palette"), "  "+th.swatches(6), "  "+paletteCodes(snap.Palette))
	rows = append(rows, "", mutedStyle.Render("  enter: apply  n: custom seed"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// paletteCodes lists the hex codes in swatch order without the leading #,
// so each one sits under its 6-wide swatch.
func paletteCodes(p palette.Palette) string {
	var codes []string
	for _, t := range p.Tones {
		codes = append(codes, mutedStyle.Render(strings.TrimPrefix(t, "#")))
	}
	codes = append(codes, mutedStyle.Render(strings.TrimPrefix(p.Accent, "#")))
	codes = append(codes, mutedStyle.Render(strings.TrimPrefix(p.Ink, "#")))
	return strings.Join(codes, "")
}
