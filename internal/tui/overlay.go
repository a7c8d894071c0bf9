package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/session"
)

// renderFocus is the immersive screen shown while a session is locked in.
// It replaces the tabbed chrome entirely.
func renderFocus(snap session.Snapshot, th theme, width, height int) string {
	w := max(30, min(width-4, 72))

	var body string
	if snap.Commit.Countdown > 0 {
		body = renderCommitCountdown(snap, th, w)
	} else {
		body = renderFocusPhase(snap, th, w)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		th.activePanel().Width(w).Render(body))
}

func renderCommitCountdown(snap session.Snapshot, th theme, w int) string {
	rows := []string{
		th.title().Render("Settle in"),
		"",
		th.clock().Width(w - 6).Render(fmt.Sprintf("%d", snap.Commit.Countdown)),
		mutedStyle.Render(fmt.Sprintf("%d × %s sprints begin when this reaches zero",
			snap.Plan.SprintCount, formatMinutes(snap.Plan.SprintMinutes))),
	}
	if snap.Card.Intention != "" {
		rows = append(rows, "", th.highlight().Render(snap.Card.Intention))
	}
	rows = append(rows, "", mutedStyle.Render("x: cancel  space: start now"))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderFocusPhase(snap session.Snapshot, th theme, w int) string {
	st := snap.State

	var clockText, indicator string
	switch {
	case st.Phase == session.PhaseDone:
		clockText = "Done!"
		indicator = successStyle.Render("SESSION COMPLETE")
	case !st.Running:
		clockText = formatClock(st.Remaining)
		indicator = warningStyle.Render("⏸  PAUSED")
	default:
		clockText = formatClock(st.Remaining)
		indicator = th.highlight().Render(phaseLabel(st))
	}

	bar := progress.New(
		progress.WithGradient(string(th.tones[1]), string(th.tones[4])),
		progress.WithoutPercentage(),
	)
	bar.Width = w - 8

	rows := []string{
		th.accentText().Render(phaseLabel(st)),
		"",
		th.clock().Width(w - 6).Render(clockText),
		indicator,
		"",
		bar.ViewAs(phaseProgress(snap)),
		renderSprintDots(snap, th),
	}
	if snap.Card.Intention != "" {
		rows = append(rows, "", th.highlight().Render(snap.Card.Intention))
	}
	if snap.Leave.Count > 0 {
		rows = append(rows, "", warningStyle.Render(fmt.Sprintf("Left the session %d×", snap.Leave.Count)))
	}

	var controls string
	switch st.Phase {
	case session.PhaseDone:
		controls = "x: close"
	default:
		controls = "space: pause/resume  x: end session"
	}
	rows = append(rows, "", mutedStyle.Render(controls))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// renderSprintDots shows one dot per sprint: done, current, upcoming.
func renderSprintDots(snap session.Snapshot, th theme) string {
	st := snap.State
	done := 0
	switch st.Phase {
	case session.PhaseFocus:
		done = st.Sprint - 1
	case session.PhaseBreak:
		done = st.Sprint
	case session.PhaseDone:
		done = snap.Plan.SprintCount
	}

	var parts []string
	for i := 0; i < snap.Plan.SprintCount; i++ {
		switch {
		case i < done:
			parts = append(parts, lipgloss.NewStyle().Foreground(th.tones[1]).Render("●"))
		case i == done && st.Phase == session.PhaseFocus:
			parts = append(parts, th.accentText().Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d", done, snap.Plan.SprintCount))
	return strings.Join(parts, " ") + counter
}
