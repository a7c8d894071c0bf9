package session

// EventKind identifies a state-change notification.
type EventKind string

const (
	EventTick     EventKind = "tick"
	EventPhase    EventKind = "phase"
	EventComplete EventKind = "complete"
	EventCommit   EventKind = "commit"
	EventLeave    EventKind = "leave"
	EventReset    EventKind = "reset"
	EventParams   EventKind = "params"
)

// Event is delivered synchronously to subscribers after the change it
// describes has been applied. Subscribers must not dispatch commands from
// inside the callback.
type Event struct {
	Kind   EventKind
	State  State
	Commit CommitState
	Leave  LeaveStats
}

type subscriber struct {
	id int
	fn func(Event)
}

type emitter struct {
	next int
	subs []subscriber
}

func (e *emitter) subscribe(fn func(Event)) func() {
	e.next++
	id := e.next
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *emitter) emit(ev Event) {
	if e == nil {
		return
	}
	for _, s := range append([]subscriber(nil), e.subs...) {
		s.fn(ev)
	}
}
