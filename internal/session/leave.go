package session

import "github.com/sadopc/aura/internal/logging"

// LeaveStats counts attention losses during one locked-in session.
type LeaveStats struct {
	Count int
}

// LeaveMonitor counts leave events while a session is locked in and keeps
// the host's exit guard registered for the same span.
type LeaveMonitor struct {
	active      bool
	stats       LeaveStats
	phase       func() Phase
	cues        CueEmitter
	visibility  VisibilityObserver
	guard       UnloadGuard
	unsubscribe func()
	events      *emitter
	log         *logging.Logger
}

// NewLeaveMonitor returns an inert monitor. phase reads the scheduler's
// current phase.
func NewLeaveMonitor(phase func() Phase, cues CueEmitter, visibility VisibilityObserver, guard UnloadGuard) *LeaveMonitor {
	return newLeaveMonitor(phase, cues, visibility, guard, &emitter{}, nil)
}

func newLeaveMonitor(phase func() Phase, cues CueEmitter, visibility VisibilityObserver, guard UnloadGuard, events *emitter, log *logging.Logger) *LeaveMonitor {
	if cues == nil {
		cues = nopHost{}
	}
	if visibility == nil {
		visibility = nopHost{}
	}
	if guard == nil {
		guard = nopHost{}
	}
	return &LeaveMonitor{
		phase:      phase,
		cues:       cues,
		visibility: visibility,
		guard:      guard,
		events:     events,
		log:        log,
	}
}

// Stats returns the current counters.
func (m *LeaveMonitor) Stats() LeaveStats { return m.stats }

// Active reports whether lock-in is in effect.
func (m *LeaveMonitor) Active() bool { return m.active }

// LockIn starts a fresh count and begins observing.
func (m *LeaveMonitor) LockIn() {
	if m.active {
		return
	}
	m.active = true
	m.stats = LeaveStats{}
	m.unsubscribe = m.visibility.Subscribe(m.onVisibility)
	m.guard.Register(m.Guarding)
}

// Release stops observing and discards the count.
func (m *LeaveMonitor) Release() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.active {
		m.guard.Clear()
	}
	m.active = false
	m.stats = LeaveStats{}
}

// Guarding reports whether leaving should be intercepted right now.
func (m *LeaveMonitor) Guarding() bool {
	return m.active && m.phase() != PhaseReady
}

// AttentionLost records one leave event if the session is locked in and past
// ready. It reports whether the event counted.
func (m *LeaveMonitor) AttentionLost() bool {
	if !m.Guarding() {
		return false
	}
	m.stats.Count++
	m.cues.Play(CueLeaveWarning)
	m.log.Warnf("attention lost (%d so far)", m.stats.Count)
	m.events.emit(Event{Kind: EventLeave, Leave: m.stats})
	return true
}

func (m *LeaveMonitor) onVisibility(visible bool) {
	if !visible {
		m.AttentionLost()
	}
}
