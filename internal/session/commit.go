package session

import "github.com/sadopc/aura/internal/logging"

// CommitSeconds is the length of the pre-session countdown.
const CommitSeconds = 10

// CommitState is the observable state of the commit countdown.
type CommitState struct {
	Countdown int
	Armed     bool
}

// Starter is what the commit countdown starts when it reaches zero.
type Starter interface {
	Start()
}

// CommitFlow runs a short cooling-off countdown and then starts the
// scheduler. Its zero crossing is the only place it calls Start.
type CommitFlow struct {
	state   CommitState
	ticks   tickSource
	starter Starter
	screen  Fullscreen
	events  *emitter
	log     *logging.Logger
}

// NewCommitFlow returns an idle countdown that will start starter.
func NewCommitFlow(starter Starter, screen Fullscreen) *CommitFlow {
	return newCommitFlow(starter, screen, &emitter{}, nil)
}

func newCommitFlow(starter Starter, screen Fullscreen, events *emitter, log *logging.Logger) *CommitFlow {
	if screen == nil {
		screen = nopHost{}
	}
	return &CommitFlow{
		starter: starter,
		screen:  screen,
		ticks:   tickSource{source: CommitTicks},
		events:  events,
		log:     log,
	}
}

// State returns a copy of the countdown state.
func (c *CommitFlow) State() CommitState { return c.state }

// InProgress reports whether the countdown is still running.
func (c *CommitFlow) InProgress() bool { return c.state.Countdown > 0 }

// Commit (re)starts the countdown and asks for immersive display.
func (c *CommitFlow) Commit() {
	c.state = CommitState{Countdown: CommitSeconds, Armed: true}
	c.ticks.arm()
	if err := c.screen.Enter(); err != nil {
		c.log.Debugf("fullscreen request failed: %v", err)
	}
	c.events.emit(Event{Kind: EventCommit, Commit: c.state})
}

// Cancel stops a running countdown without starting anything. It reports
// whether there was a countdown to cancel.
func (c *CommitFlow) Cancel() bool {
	if !c.InProgress() {
		return false
	}
	c.disarm()
	return true
}

func (c *CommitFlow) disarm() {
	c.state = CommitState{}
	c.ticks.stop()
}

func (c *CommitFlow) handleTick(t Tick) bool {
	if !c.ticks.accepts(t) {
		return false
	}
	if c.state.Countdown > 0 {
		c.state.Countdown--
	}
	if c.state.Countdown > 0 {
		c.ticks.rearm()
		c.events.emit(Event{Kind: EventCommit, Commit: c.state})
		return true
	}

	c.ticks.stop()
	c.events.emit(Event{Kind: EventCommit, Commit: c.state})
	if c.state.Armed {
		c.starter.Start()
		c.state.Armed = false
	}
	return true
}
