package session

// TickSource names one of the two independent one-second tick sources.
type TickSource int

const (
	SessionTicks TickSource = iota
	CommitTicks
)

func (s TickSource) String() string {
	if s == CommitTicks {
		return "commit"
	}
	return "session"
}

// Tick is one scheduled firing. The driver delivers it back to
// Store.HandleTick one second after it was handed out.
type Tick struct {
	Source TickSource
	Gen    uint64
}

// tickSource tracks the single live generation of a tick source. Arming
// bumps the generation, so every firing already in flight becomes stale and
// is dropped when it arrives.
type tickSource struct {
	source  TickSource
	gen     uint64
	live    bool
	pending bool
}

func (t *tickSource) arm() {
	t.gen++
	t.live = true
	t.pending = true
}

func (t *tickSource) stop() {
	t.live = false
	t.pending = false
}

// rearm schedules the successor of an accepted firing in the same generation.
func (t *tickSource) rearm() {
	if t.live {
		t.pending = true
	}
}

func (t *tickSource) accepts(k Tick) bool {
	return t.live && k.Source == t.source && k.Gen == t.gen
}

func (t *tickSource) take() (Tick, bool) {
	if !t.pending {
		return Tick{}, false
	}
	t.pending = false
	return Tick{Source: t.source, Gen: t.gen}, true
}
