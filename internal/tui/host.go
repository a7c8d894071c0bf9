package tui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/session"
)

// host implements the session's boundary collaborators for a terminal.
// The store holds it by pointer, so it stays shared across App copies.
//
//   - cues queue a terminal bell, one to three rings by kind
//   - fullscreen toggles the alternate screen when the program started inline
//   - visibility follows terminal focus reports
//   - the unload guard turns quit into a y/n question
type host struct {
	bell   io.Writer
	inline bool

	pending []tea.Cmd
	events  []session.Event

	listeners map[int]func(bool)
	nextID    int
	guard     func() bool
}

func newHost(bell io.Writer, inline bool) *host {
	return &host{
		bell:      bell,
		inline:    inline,
		listeners: make(map[int]func(bool)),
	}
}

func (h *host) sessionHost(log *logging.Logger) session.Host {
	return session.Host{
		Cues:       h,
		Screen:     h,
		Visibility: h,
		Guard:      h,
		Log:        log,
	}
}

func bellCount(c session.Cue) int {
	switch c {
	case session.CueBreakStarted:
		return 2
	case session.CueLeaveWarning:
		return 3
	}
	return 1
}

// Play queues the bell with the other pending commands. Update never writes
// to the terminal itself; the program runs the command once the frame is out.
func (h *host) Play(c session.Cue) {
	if h.bell == nil {
		return
	}
	h.pending = append(h.pending, ring(h.bell, bellCount(c)))
}

func ring(w io.Writer, n int) tea.Cmd {
	return func() tea.Msg {
		io.WriteString(w, strings.Repeat("\a", n))
		return nil
	}
}

func (h *host) Enter() error {
	if h.inline {
		h.pending = append(h.pending, tea.EnterAltScreen)
	}
	return nil
}

func (h *host) Exit() error {
	if h.inline {
		h.pending = append(h.pending, tea.ExitAltScreen)
	}
	return nil
}

func (h *host) Subscribe(fn func(bool)) func() {
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *host) setVisible(visible bool) {
	for _, fn := range h.listeners {
		fn(visible)
	}
}

func (h *host) Register(guarding func() bool) { h.guard = guarding }

func (h *host) Clear() { h.guard = nil }

func (h *host) guarding() bool {
	return h.guard != nil && h.guard()
}

// record is subscribed to the store's events.
func (h *host) record(ev session.Event) {
	if ev.Kind == session.EventTick || ev.Kind == session.EventCommit {
		return
	}
	h.events = append(h.events, ev)
}

// drain hands over everything collected since the last call.
func (h *host) drain() ([]tea.Cmd, []session.Event) {
	cmds, events := h.pending, h.events
	h.pending, h.events = nil, nil
	return cmds, events
}
