// Package plan turns a total session length and a sprint count into a
// focus/break timeline.
package plan

const (
	// BreakMinutes is the fixed length of every break.
	BreakMinutes = 5
	// MinSprintMinutes is the shortest sprint ever planned.
	MinSprintMinutes = 10

	MinDuration     = 45
	MaxDuration     = 120
	DefaultDuration = 70

	MinSprints     = 2
	MaxSprints     = 5
	DefaultSprints = 3

	MinLevel = 1
	MaxLevel = 5
)

// Plan is an immutable session layout. A new Plan replaces the old one
// whenever its inputs change.
type Plan struct {
	Duration      int `json:"duration_minutes" yaml:"duration_minutes"`
	SprintCount   int `json:"sprint_count" yaml:"sprint_count"`
	SprintMinutes int `json:"sprint_minutes" yaml:"sprint_minutes"`
	BreakMinutes  int `json:"break_minutes" yaml:"break_minutes"`
	BreakCount    int `json:"break_count" yaml:"break_count"`
	UsedMinutes   int `json:"used_minutes" yaml:"used_minutes"`
	BufferMinutes int `json:"buffer_minutes" yaml:"buffer_minutes"`
}

// Build computes the plan for duration minutes split into sprints. It never
// fails: sprints are floored at MinSprintMinutes, leftover time becomes
// buffer, and a sprint count below one is treated as one.
func Build(duration, sprints int) Plan {
	if sprints < 1 {
		sprints = 1
	}
	breaks := max(0, sprints-1)
	sprintMinutes := max(MinSprintMinutes, floorDiv(duration-breaks*BreakMinutes, sprints))
	used := sprintMinutes*sprints + breaks*BreakMinutes

	return Plan{
		Duration:      duration,
		SprintCount:   sprints,
		SprintMinutes: sprintMinutes,
		BreakMinutes:  BreakMinutes,
		BreakCount:    breaks,
		UsedMinutes:   used,
		BufferMinutes: max(0, duration-used),
	}
}

// FocusMinutes is the time spent in sprints.
func (p Plan) FocusMinutes() int { return p.SprintMinutes * p.SprintCount }

// BreakTotalMinutes is the time spent in breaks.
func (p Plan) BreakTotalMinutes() int { return p.BreakMinutes * p.BreakCount }

// TotalMinutes is focus + breaks + buffer. It equals Duration unless the
// sprint floor forced an overrun.
func (p Plan) TotalMinutes() int {
	return p.FocusMinutes() + p.BreakTotalMinutes() + p.BufferMinutes
}

// OverrunMinutes is how far the floored sprints exceed Duration.
func (p Plan) OverrunMinutes() int { return max(0, p.UsedMinutes-p.Duration) }

// SameShape reports whether two plans drive the scheduler identically.
func (p Plan) SameShape(o Plan) bool {
	return p.SprintMinutes == o.SprintMinutes &&
		p.BreakMinutes == o.BreakMinutes &&
		p.SprintCount == o.SprintCount
}

// ClampDuration bounds minutes to [MinDuration, MaxDuration].
func ClampDuration(minutes int) int { return clamp(minutes, MinDuration, MaxDuration) }

// ClampSprints bounds n to [MinSprints, MaxSprints].
func ClampSprints(n int) int { return clamp(n, MinSprints, MaxSprints) }

// ClampLevel bounds an energy or ambience level to [MinLevel, MaxLevel].
func ClampLevel(n int) int { return clamp(n, MinLevel, MaxLevel) }

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

// floorDiv rounds toward negative infinity so negative remainders still floor.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
