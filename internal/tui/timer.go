package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/aura/internal/session"
)

// scheduleTicks turns the ticks a store call asked for into one-second
// timers. Each tick is delivered back as a sessionTickMsg; the store drops
// any that went stale in the meantime.
func scheduleTicks(ticks []session.Tick) tea.Cmd {
	if len(ticks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(ticks))
	for _, t := range ticks {
		cmds = append(cmds, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return sessionTickMsg{tick: t}
		}))
	}
	return tea.Batch(cmds...)
}
