package session

import "github.com/sadopc/aura/internal/plan"

// Scheduler drives the focus/break countdown for one plan. It owns its
// State and its tick source; nothing else mutates either.
type Scheduler struct {
	plan   plan.Plan
	state  State
	ticks  tickSource
	cues   CueEmitter
	events *emitter
}

// NewScheduler returns a scheduler in PhaseReady.
func NewScheduler(p plan.Plan, cues CueEmitter) *Scheduler {
	return newScheduler(p, cues, &emitter{})
}

func newScheduler(p plan.Plan, cues CueEmitter, events *emitter) *Scheduler {
	if cues == nil {
		cues = nopHost{}
	}
	return &Scheduler{
		plan:   p,
		state:  readyState(),
		ticks:  tickSource{source: SessionTicks},
		cues:   cues,
		events: events,
	}
}

// State returns a copy of the current state.
func (s *Scheduler) State() State { return s.state }

// Plan returns the plan the scheduler counts against.
func (s *Scheduler) Plan() plan.Plan { return s.plan }

// Start begins sprint 1 from any state.
func (s *Scheduler) Start() {
	s.state = State{
		Phase:     PhaseFocus,
		Sprint:    1,
		Remaining: s.plan.SprintMinutes * 60,
		Running:   true,
	}
	s.ticks.arm()
	s.cues.Play(CueFocusStarted)
	s.events.emit(Event{Kind: EventPhase, State: s.state})
}

// Pause stops the countdown without touching phase or remaining time.
func (s *Scheduler) Pause() {
	if !s.state.Running {
		return
	}
	s.state.Running = false
	s.ticks.stop()
}

// Resume continues a paused phase. From ready or done it starts afresh.
func (s *Scheduler) Resume() {
	if !s.state.Phase.Active() {
		s.Start()
		return
	}
	if s.state.Running {
		return
	}
	s.state.Running = true
	s.ticks.arm()
}

// Reset returns to PhaseReady. Calling it repeatedly is harmless.
func (s *Scheduler) Reset() {
	s.ticks.stop()
	s.state = readyState()
}

// SetPlan replaces the plan. A plan with a different sprint length, break
// length or sprint count invalidates any session in progress; the scheduler
// resets and reports true.
func (s *Scheduler) SetPlan(p plan.Plan) bool {
	changed := !s.plan.SameShape(p)
	s.plan = p
	if changed {
		s.Reset()
	}
	return changed
}

// handleTick applies one second if t belongs to the live tick generation.
func (s *Scheduler) handleTick(t Tick) bool {
	if !s.ticks.accepts(t) {
		return false
	}
	if !s.state.Running || s.state.Remaining <= 0 {
		s.ticks.stop()
		return false
	}

	s.state.Remaining--
	if s.state.Remaining == 0 {
		s.advance()
	}
	if s.state.Running {
		s.ticks.rearm()
	}
	s.events.emit(Event{Kind: EventTick, State: s.state})
	return true
}

// advance performs the zero-crossing transition.
func (s *Scheduler) advance() {
	switch s.state.Phase {
	case PhaseFocus:
		if s.state.Sprint < s.plan.SprintCount {
			s.state.Phase = PhaseBreak
			s.state.Remaining = s.plan.BreakMinutes * 60
			s.cues.Play(CueBreakStarted)
			s.events.emit(Event{Kind: EventPhase, State: s.state})
			return
		}
		s.state.Phase = PhaseDone
		s.state.Running = false
		s.ticks.stop()
		s.events.emit(Event{Kind: EventComplete, State: s.state})

	case PhaseBreak:
		s.state.Phase = PhaseFocus
		s.state.Sprint++
		s.state.Remaining = s.plan.SprintMinutes * 60
		s.cues.Play(CueFocusStarted)
		s.events.emit(Event{Kind: EventPhase, State: s.state})
	}
}
