package session

import (
	"github.com/google/uuid"

	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/plan"
)

// Params are the user-adjustable session inputs.
type Params struct {
	Duration int
	Sprints  int
	Seed     string
	Energy   int // cosmetic
	Ambience int // cosmetic
}

// DefaultParams returns the out-of-the-box inputs.
func DefaultParams() Params {
	return Params{
		Duration: plan.DefaultDuration,
		Sprints:  plan.DefaultSprints,
		Seed:     palette.DefaultSeed,
		Energy:   3,
		Ambience: 4,
	}
}

// Normalize clamps every numeric input into its configured range.
func (p Params) Normalize() Params {
	p.Duration = plan.ClampDuration(p.Duration)
	p.Sprints = plan.ClampSprints(p.Sprints)
	p.Energy = plan.ClampLevel(p.Energy)
	p.Ambience = plan.ClampLevel(p.Ambience)
	return p
}

// FocusCard is free text the user writes before a session. It lives only as
// long as the Store.
type FocusCard struct {
	Intention  string
	Outcome    string
	Constraint string
}

// Host bundles the boundary collaborators. Nil members are replaced by
// no-ops.
type Host struct {
	Cues       CueEmitter
	Screen     Fullscreen
	Visibility VisibilityObserver
	Guard      UnloadGuard
	Log        *logging.Logger
	NewID      func() string
}

// Snapshot is a read-only view of everything the renderer displays.
type Snapshot struct {
	Params    Params
	Plan      plan.Plan
	Palette   palette.Palette
	State     State
	Commit    CommitState
	Leave     LeaveStats
	Card      FocusCard
	LockedIn  bool
	SessionID string
}

// Store is the single owner of session state. The application root creates
// one and hands the pointer to whoever needs it; every mutation goes through
// Dispatch or HandleTick.
type Store struct {
	params    Params
	plan      plan.Plan
	palette   palette.Palette
	card      FocusCard
	lockedIn  bool
	sessionID string

	scheduler *Scheduler
	commit    *CommitFlow
	leave     *LeaveMonitor

	screen Fullscreen
	events *emitter
	log    *logging.Logger
	newID  func() string
}

// NewStore builds a store in PhaseReady for the given (clamped) params.
func NewStore(params Params, host Host) *Store {
	params = params.Normalize()
	if host.Cues == nil {
		host.Cues = nopHost{}
	}
	if host.Screen == nil {
		host.Screen = nopHost{}
	}
	if host.NewID == nil {
		host.NewID = uuid.NewString
	}

	s := &Store{
		params:  params,
		plan:    plan.Build(params.Duration, params.Sprints),
		palette: palette.Generate(params.Seed),
		screen:  host.Screen,
		events:  &emitter{},
		log:     host.Log,
		newID:   host.NewID,
	}
	s.scheduler = newScheduler(s.plan, host.Cues, s.events)
	s.commit = newCommitFlow(s.scheduler, host.Screen, s.events, host.Log)
	s.leave = newLeaveMonitor(s.phase, host.Cues, host.Visibility, host.Guard, s.events, host.Log)
	s.events.subscribe(s.logEvent)
	return s
}

// Subscribe registers fn for every state-change event and returns a
// function that removes it.
func (s *Store) Subscribe(fn func(Event)) func() {
	return s.events.subscribe(fn)
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Params:    s.params,
		Plan:      s.plan,
		Palette:   s.palette,
		State:     s.scheduler.State(),
		Commit:    s.commit.State(),
		Leave:     s.leave.Stats(),
		Card:      s.card,
		LockedIn:  s.lockedIn,
		SessionID: s.sessionID,
	}
}

// ExitGuarded reports whether closing the session surface should be
// confirmed first.
func (s *Store) ExitGuarded() bool { return s.leave.Guarding() }

// AttentionLost feeds a visibility loss reported outside the observer
// subscription.
func (s *Store) AttentionLost() bool { return s.leave.AttentionLost() }

// Dispatch applies one command and returns the ticks the driver must
// deliver back in one second.
func (s *Store) Dispatch(cmd Command) []Tick {
	s.log.Debugf("command %s", cmd.commandName())

	switch c := cmd.(type) {
	case Start:
		s.startDirect()
	case Resume:
		if s.scheduler.State().Phase.Active() {
			s.scheduler.Resume()
		} else {
			s.startDirect()
		}
	case Pause:
		s.scheduler.Pause()
	case Reset:
		s.reset()
	case Commit:
		if s.scheduler.State().Phase != PhaseReady || s.commit.InProgress() {
			s.log.Debugf("commit ignored in phase %s", s.scheduler.State().Phase)
			break
		}
		s.lockIn()
		s.commit.Commit()
	case CancelCommit:
		if s.commit.Cancel() {
			s.reset()
		}
	case SetSeed:
		s.params.Seed = c.Color
		s.palette = palette.Generate(c.Color)
		s.events.emit(Event{Kind: EventParams})
	case SetDuration:
		s.setShape(plan.ClampDuration(c.Minutes), s.params.Sprints)
	case SetSprintCount:
		s.setShape(s.params.Duration, plan.ClampSprints(c.Count))
	case SetEnergy:
		s.params.Energy = plan.ClampLevel(c.Level)
		s.events.emit(Event{Kind: EventParams})
	case SetAmbience:
		s.params.Ambience = plan.ClampLevel(c.Level)
		s.events.emit(Event{Kind: EventParams})
	case SetFocusCard:
		s.card = c.Card
	}
	return s.pendingTicks()
}

// HandleTick applies a delivered tick. Stale ticks are ignored.
func (s *Store) HandleTick(t Tick) []Tick {
	switch t.Source {
	case SessionTicks:
		s.scheduler.handleTick(t)
	case CommitTicks:
		s.commit.handleTick(t)
	}
	return s.pendingTicks()
}

func (s *Store) phase() Phase { return s.scheduler.State().Phase }

// startDirect starts the scheduler outside the commit countdown, disarming
// the countdown so the scheduler is started exactly once.
func (s *Store) startDirect() {
	s.commit.disarm()
	s.lockIn()
	s.scheduler.Start()
}

// setShape replans. Changing duration or sprint count abandons any session
// or countdown in progress.
func (s *Store) setShape(duration, sprints int) {
	if duration == s.params.Duration && sprints == s.params.Sprints {
		return
	}
	busy := s.lockedIn || s.commit.InProgress() || s.scheduler.State().Phase != PhaseReady

	s.params.Duration = duration
	s.params.Sprints = sprints
	s.plan = plan.Build(duration, sprints)
	s.scheduler.SetPlan(s.plan)
	if busy {
		s.log.Infof("plan changed mid-session, resetting")
		s.reset()
	}
	s.events.emit(Event{Kind: EventParams})
}

func (s *Store) lockIn() {
	if s.lockedIn {
		return
	}
	s.lockedIn = true
	s.sessionID = s.newID()
	s.leave.LockIn()
	s.log.Infof("session %s locked in: %d x %d min, %d min breaks",
		s.sessionID, s.plan.SprintCount, s.plan.SprintMinutes, s.plan.BreakMinutes)
}

func (s *Store) reset() {
	s.commit.disarm()
	s.scheduler.Reset()
	if s.lockedIn {
		s.leave.Release()
		if err := s.screen.Exit(); err != nil {
			s.log.Debugf("fullscreen exit failed: %v", err)
		}
		s.log.Infof("session %s ended", s.sessionID)
	}
	s.lockedIn = false
	s.sessionID = ""
	s.events.emit(Event{Kind: EventReset, State: s.scheduler.State()})
}

func (s *Store) pendingTicks() []Tick {
	var ticks []Tick
	if t, ok := s.commit.ticks.take(); ok {
		ticks = append(ticks, t)
	}
	if t, ok := s.scheduler.ticks.take(); ok {
		ticks = append(ticks, t)
	}
	return ticks
}

func (s *Store) logEvent(ev Event) {
	switch ev.Kind {
	case EventPhase:
		s.log.Infof("session %s: sprint %d %s (%ds)", s.sessionID, ev.State.Sprint, ev.State.Phase, ev.State.Remaining)
	case EventComplete:
		s.log.Infof("session %s complete", s.sessionID)
	}
}
