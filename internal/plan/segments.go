package plan

import "fmt"

// SegmentKind classifies a block of the timeline.
type SegmentKind string

const (
	SegmentFocus  SegmentKind = "focus"
	SegmentBreak  SegmentKind = "break"
	SegmentBuffer SegmentKind = "buffer"
)

// Segment is one contiguous block of the session timeline.
type Segment struct {
	Kind        SegmentKind `json:"kind" yaml:"kind"`
	Sprint      int         `json:"sprint,omitempty" yaml:"sprint,omitempty"`
	StartMinute int         `json:"start_minute" yaml:"start_minute"`
	Minutes     int         `json:"minutes" yaml:"minutes"`
}

// Label is a short human name for the segment.
func (s Segment) Label() string {
	switch s.Kind {
	case SegmentFocus:
		return fmt.Sprintf("Sprint %d", s.Sprint)
	case SegmentBreak:
		return fmt.Sprintf("Break %d", s.Sprint)
	default:
		return "Buffer"
	}
}

// Segments lays the plan out in order: sprint, break, sprint, ... and a
// trailing buffer block when there is spare time. Breaks carry the number of
// the sprint they follow.
func (p Plan) Segments() []Segment {
	var out []Segment
	at := 0
	for i := 1; i <= p.SprintCount; i++ {
		out = append(out, Segment{Kind: SegmentFocus, Sprint: i, StartMinute: at, Minutes: p.SprintMinutes})
		at += p.SprintMinutes
		if i < p.SprintCount {
			out = append(out, Segment{Kind: SegmentBreak, Sprint: i, StartMinute: at, Minutes: p.BreakMinutes})
			at += p.BreakMinutes
		}
	}
	if p.BufferMinutes > 0 {
		out = append(out, Segment{Kind: SegmentBuffer, StartMinute: at, Minutes: p.BufferMinutes})
	}
	return out
}
