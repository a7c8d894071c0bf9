// Package session holds the temporal core of a focus session: the phase
// scheduler, the pre-session commit countdown, leave-event monitoring, and
// the Store that owns them and applies typed commands.
//
// Nothing in this package sleeps or starts goroutines. Time arrives as Tick
// values that the driver delivers once per second after a Store call asked
// for them.
package session

// Phase is the scheduler's position in the session.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseFocus
	PhaseBreak
	PhaseDone
)

var phaseNames = map[Phase]string{
	PhaseReady: "ready",
	PhaseFocus: "focus",
	PhaseBreak: "break",
	PhaseDone:  "done",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Active reports whether the phase is a counting phase.
func (p Phase) Active() bool {
	return p == PhaseFocus || p == PhaseBreak
}

// State is the scheduler's observable state. Running implies an active
// phase; PhaseDone implies Running == false and Remaining == 0.
type State struct {
	Phase     Phase
	Sprint    int // 1-based sprint index
	Remaining int // seconds
	Running   bool
}

func readyState() State {
	return State{Phase: PhaseReady, Sprint: 1}
}

// Cue is an audio cue kind.
type Cue int

const (
	CueFocusStarted Cue = iota
	CueBreakStarted
	CueLeaveWarning
)

func (c Cue) String() string {
	switch c {
	case CueFocusStarted:
		return "focus-started"
	case CueBreakStarted:
		return "break-started"
	case CueLeaveWarning:
		return "leave-warning"
	}
	return "unknown"
}

// CueEmitter plays audio cues. Play must not block; failures are the
// emitter's own business.
type CueEmitter interface {
	Play(Cue)
}

// Fullscreen requests and leaves an immersive display mode. Errors are
// logged and otherwise ignored.
type Fullscreen interface {
	Enter() error
	Exit() error
}

// VisibilityObserver reports when the session surface gains or loses
// foreground attention.
type VisibilityObserver interface {
	Subscribe(fn func(visible bool)) (unsubscribe func())
}

// UnloadGuard asks the host to confirm before the session surface is
// destroyed while the registered predicate is true.
type UnloadGuard interface {
	Register(guarding func() bool)
	Clear()
}

type nopHost struct{}

func (nopHost) Play(Cue)                    {}
func (nopHost) Enter() error                { return nil }
func (nopHost) Exit() error                 { return nil }
func (nopHost) Subscribe(func(bool)) func() { return func() {} }
func (nopHost) Register(func() bool)        {}
func (nopHost) Clear()                      {}
