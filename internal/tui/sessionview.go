package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/plan"
	"github.com/sadopc/aura/internal/session"
)

type sessionModel struct {
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	intention  *string
	outcome    *string
	constraint *string
}

func newSessionModel() sessionModel {
	i, o, c := "", "", ""
	return sessionModel{
		intention:  &i,
		outcome:    &o,
		constraint: &c,
	}
}

func (m *sessionModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m sessionModel) update(msg tea.Msg, snap session.Snapshot) (sessionModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Card) {
		return m.showCardForm(snap.Card)
	}
	return m, nil
}

func (m sessionModel) showCardForm(card session.FocusCard) (sessionModel, tea.Cmd) {
	*m.intention = card.Intention
	*m.outcome = card.Outcome
	*m.constraint = card.Constraint

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Intention").Placeholder("What will you work on?").Value(m.intention),
			huh.NewInput().Title("Outcome").Placeholder("What does done look like?").Value(m.outcome),
			huh.NewText().Title("Constraint").Placeholder("What will you not do?").Lines(2).Value(m.constraint),
		).Title("Focus card"),
	).WithShowHelp(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m sessionModel) updateForm(msg tea.Msg) (sessionModel, tea.Cmd) {
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
		card := session.FocusCard{
			Intention:  strings.TrimSpace(*m.intention),
			Outcome:    strings.TrimSpace(*m.outcome),
			Constraint: strings.TrimSpace(*m.constraint),
		}
		return m, func() tea.Msg { return cardEditedMsg{card: card} }
	}
	return m, cmd
}

func (m sessionModel) view(snap session.Snapshot, th theme) string {
	if m.width < 20 {
		return "Terminal too small"
	}
	w := m.width - 4

	if m.formActive && m.form != nil {
		return th.activePanel().Width(w).Render(m.form.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatusPanel(snap, th, w),
		renderPlanPanel(snap, th, w),
		renderCardPanel(snap.Card, th, w),
	)
}

func (m sessionModel) renderStatusPanel(snap session.Snapshot, th theme, w int) string {
	st := snap.State

	secs := st.Remaining
	if st.Phase == session.PhaseReady {
		secs = snap.Plan.SprintMinutes * 60
	}
	clock := th.clock().Width(w - 6).Render(formatClock(secs))

	var indicator string
	switch {
	case st.Phase == session.PhaseReady && snap.Commit.Countdown > 0:
		indicator = th.accentText().Render(fmt.Sprintf("◎  COMMITTING %d", snap.Commit.Countdown))
	case st.Phase == session.PhaseReady:
		indicator = mutedStyle.Render("■  READY  press s to commit")
	case st.Phase == session.PhaseDone:
		indicator = successStyle.Render("✓  COMPLETE")
	case st.Running:
		indicator = successStyle.Render("●  RUNNING")
	default:
		indicator = warningStyle.Render("⏸  PAUSED")
	}

	bar := progress.New(
		progress.WithGradient(string(th.tones[1]), string(th.tones[4])),
		progress.WithoutPercentage(),
	)
	bar.Width = max(10, w-10)

	content := lipgloss.JoinVertical(lipgloss.Center,
		th.accentText().Render(phaseLabel(st)),
		clock,
		indicator,
		"",
		bar.ViewAs(phaseProgress(snap)),
		renderSprintDots(snap, th),
	)
	if st.Phase.Active() {
		return th.activePanel().Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func renderPlanPanel(snap session.Snapshot, th theme, w int) string {
	p := snap.Plan
	rows := []string{
		th.title().Render("Plan") + "  " + th.highlight().Render(formatMinutes(p.Duration)),
		fmt.Sprintf("  %d × %s focus, %d × %s breaks",
			p.SprintCount, formatMinutes(p.SprintMinutes), p.BreakCount, formatMinutes(p.BreakMinutes)),
		fmt.Sprintf("  Focus %s  Breaks %s  Buffer %s  Total %s",
			formatMinutes(p.FocusMinutes()), formatMinutes(p.BreakTotalMinutes()),
			formatMinutes(p.BufferMinutes), formatMinutes(p.TotalMinutes())),
	}
	if over := p.OverrunMinutes(); over > 0 {
		rows = append(rows, warningStyle.Render(fmt.Sprintf(
			"  Sprints floor at %s, so this runs %s over", formatMinutes(plan.MinSprintMinutes), formatMinutes(over))))
	}
	rows = append(rows, fmt.Sprintf("  Energy %s  Ambience %s  Leaves %d",
		th.highlight().Render(levelDots(snap.Params.Energy, plan.MaxLevel)),
		th.highlight().Render(levelDots(snap.Params.Ambience, plan.MaxLevel)),
		snap.Leave.Count,
	))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderCardPanel(card session.FocusCard, th theme, w int) string {
	title := th.title().Render("Focus card")
	if card == (session.FocusCard{}) {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Press c to write what this session is for"),
		))
	}

	rows := []string{title}
	for _, f := range []struct{ label, value string }{
		{"Intention", card.Intention},
		{"Outcome", card.Outcome},
		{"Constraint", card.Constraint},
	} {
		if f.value == "" {
			continue
		}
		label := mutedStyle.Width(12).Render(f.label)
		rows = append(rows, "  "+label+normalItemStyle.Render(f.value))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
