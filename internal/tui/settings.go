package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/plan"
	"github.com/sadopc/aura/internal/session"
	"github.com/sadopc/aura/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	remembered []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	duration *int
	sprints  *int
	energy   *int
	ambience *int
}

func newSettingsModel(s *store.Store) settingsModel {
	d, sp, e, a := 0, 0, 0, 0
	return settingsModel{
		store:    s,
		duration: &d,
		sprints:  &sp,
		energy:   &e,
		ambience: &a,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	if s.store == nil {
		return nil
	}
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg, snap session.Snapshot) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.remembered = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm(snap.Params)
		case key.Matches(msg, keys.Forget):
			return s, s.forget()
		}
	}
	return s, nil
}

func (s settingsModel) forget() tea.Cmd {
	if s.store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := s.store.ForgetPreferences(); err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return settingsDataMsg{}
	}
}

// rangeOptions lists lo..hi in steps, always including current.
func rangeOptions(lo, hi, step, current int, format string) []huh.Option[int] {
	var values []int
	for v := lo; v <= hi; v += step {
		values = append(values, v)
	}
	if current >= lo && current <= hi && !slices.Contains(values, current) {
		values = append(values, current)
		slices.Sort(values)
	}

	opts := make([]huh.Option[int], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(fmt.Sprintf(format, v), v)
	}
	return opts
}

func (s settingsModel) showForm(p session.Params) (settingsModel, tea.Cmd) {
	*s.duration = p.Duration
	*s.sprints = p.Sprints
	*s.energy = p.Energy
	*s.ambience = p.Ambience

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("Session length").
				Options(rangeOptions(plan.MinDuration, plan.MaxDuration, 5, p.Duration, "%d min")...).
				Value(s.duration),
			huh.NewSelect[int]().Title("Sprints").
				Options(rangeOptions(plan.MinSprints, plan.MaxSprints, 1, p.Sprints, "%d")...).
				Value(s.sprints),
		).Title("Plan").Description("Changing the plan ends a running session"),
		huh.NewGroup(
			huh.NewSelect[int]().Title("Energy").
				Options(rangeOptions(plan.MinLevel, plan.MaxLevel, 1, p.Energy, "%d")...).
				Value(s.energy),
			huh.NewSelect[int]().Title("Ambience").
				Options(rangeOptions(plan.MinLevel, plan.MaxLevel, 1, p.Ambience, "%d")...).
				Value(s.ambience),
		).Title("Mood"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		edited := paramsEditedMsg{
			duration: *s.duration,
			sprints:  *s.sprints,
			energy:   *s.energy,
			ambience: *s.ambience,
		}
		return s, func() tea.Msg { return edited }
	}

	return s, cmd
}

func (s settingsModel) view(snap session.Snapshot, th theme) string {
	w := s.width - 4
	title := th.title().Render("Settings")

	if s.formActive && s.form != nil {
		return th.activePanel().Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	p := snap.Params
	current := []struct{ label, value string }{
		{"Session length", fmt.Sprintf("%d min", p.Duration)},
		{"Sprints", fmt.Sprintf("%d", p.Sprints)},
		{"Seed color", p.Seed},
		{"Energy", levelDots(p.Energy, plan.MaxLevel)},
		{"Ambience", levelDots(p.Ambience, plan.MaxLevel)},
	}

	rows := []string{title, ""}
	for _, c := range current {
		label := lipgloss.NewStyle().Width(24).Render(c.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, th.highlight().Render(c.value)))
	}

	switch {
	case s.store == nil:
	case s.store.Ephemeral():
		rows = append(rows, "", mutedStyle.Render("  Preferences are kept in memory for this run only"))
	default:
		rows = append(rows, "", mutedStyle.Render("  Remembered in "+s.store.Path()))
	}
	if s.store != nil {
		rows = append(rows, mutedStyle.Render("  Only session inputs are remembered, never a session or its progress"))
	}
	for _, r := range s.remembered {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-24s %s", r.Key, r.Value)))
	}

	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings, f to forget remembered ones"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
