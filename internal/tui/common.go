package tui

import (
	"fmt"

	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/session"
)

// viewState represents the currently active view.
type viewState int

const (
	viewSession viewState = iota
	viewMoods
	viewTimeline
	viewSettings
)

var viewNames = []string{"Session", "Mood", "Timeline", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// sessionTickMsg delivers a tick the store asked for one second earlier.
type sessionTickMsg struct {
	tick session.Tick
}

type exportDoneMsg struct {
	path   string
	format export.Format
}

type seedChosenMsg struct {
	seed string
}

type paramsEditedMsg struct {
	duration int
	sprints  int
	energy   int
	ambience int
}

type cardEditedMsg struct {
	card session.FocusCard
}

// --- Helpers ---

// formatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	if m%60 == 0 {
		return fmt.Sprintf("%dh", m/60)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func phaseLabel(st session.State) string {
	switch st.Phase {
	case session.PhaseFocus:
		return fmt.Sprintf("Sprint %d focus", st.Sprint)
	case session.PhaseBreak:
		return "Rhythm break"
	case session.PhaseDone:
		return "Complete"
	}
	return "Ready"
}

// phaseSeconds is the full length of the current phase.
func phaseSeconds(snap session.Snapshot) int {
	switch snap.State.Phase {
	case session.PhaseFocus:
		return snap.Plan.SprintMinutes * 60
	case session.PhaseBreak:
		return snap.Plan.BreakMinutes * 60
	}
	return 0
}

// phaseProgress is the elapsed fraction of the current phase.
func phaseProgress(snap session.Snapshot) float64 {
	total := phaseSeconds(snap)
	switch {
	case snap.State.Phase == session.PhaseDone:
		return 1
	case total == 0:
		return 0
	}
	return 1 - float64(snap.State.Remaining)/float64(total)
}

// levelDots renders a 1..5 level as filled and empty dots.
func levelDots(level, n int) string {
	s := ""
	for i := 1; i <= n; i++ {
		if i <= level {
			s += "●"
		} else {
			s += "○"
		}
	}
	return s
}
