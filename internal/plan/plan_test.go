package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		name              string
		duration, sprints int
		want              Plan
		overrun           int
	}{
		{
			name: "70 minutes in 3 sprints", duration: 70, sprints: 3,
			want: Plan{Duration: 70, SprintCount: 3, SprintMinutes: 20, BreakMinutes: 5, BreakCount: 2, UsedMinutes: 70, BufferMinutes: 0},
		},
		{
			name: "75 minutes in 4 sprints", duration: 75, sprints: 4,
			want: Plan{Duration: 75, SprintCount: 4, SprintMinutes: 15, BreakMinutes: 5, BreakCount: 3, UsedMinutes: 75, BufferMinutes: 0},
		},
		{
			name: "45 minutes in 5 sprints hits the sprint floor", duration: 45, sprints: 5,
			want:    Plan{Duration: 45, SprintCount: 5, SprintMinutes: 10, BreakMinutes: 5, BreakCount: 4, UsedMinutes: 70, BufferMinutes: 0},
			overrun: 25,
		},
		{
			name: "90 minutes in 2 sprints leaves a buffer", duration: 90, sprints: 2,
			want: Plan{Duration: 90, SprintCount: 2, SprintMinutes: 42, BreakMinutes: 5, BreakCount: 1, UsedMinutes: 89, BufferMinutes: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.duration, tt.sprints)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overrun, got.OverrunMinutes())
		})
	}
}

func TestBuild_PropertiesOverConfiguredRange(t *testing.T) {
	for d := MinDuration; d <= MaxDuration; d++ {
		for n := MinSprints; n <= MaxSprints; n++ {
			p := Build(d, n)
			require.GreaterOrEqual(t, p.SprintMinutes, MinSprintMinutes, "d=%d n=%d", d, n)
			require.Equal(t, max(0, n-1), p.BreakCount)
			require.Equal(t, BreakMinutes, p.BreakMinutes)
			require.GreaterOrEqual(t, p.BufferMinutes, 0)
			require.Equal(t, p.SprintMinutes*n+p.BreakMinutes*p.BreakCount, p.UsedMinutes)

			if p.OverrunMinutes() == 0 {
				require.Equal(t, d, p.SprintMinutes*n+p.BreakMinutes*p.BreakCount+p.BufferMinutes, "d=%d n=%d", d, n)
				require.Equal(t, d, p.TotalMinutes())
			} else {
				// Only the sprint floor may push usage past the duration.
				require.Equal(t, MinSprintMinutes, p.SprintMinutes)
				require.Equal(t, 0, p.BufferMinutes)
			}
		}
	}
}

func TestBuild_Extremes(t *testing.T) {
	p := Build(0, 0)
	assert.Equal(t, 1, p.SprintCount)
	assert.Equal(t, MinSprintMinutes, p.SprintMinutes)
	assert.Equal(t, 0, p.BreakCount)
	assert.Equal(t, 0, p.BufferMinutes)

	p = Build(10, 3)
	assert.Equal(t, MinSprintMinutes, p.SprintMinutes, "negative remainder still floors to the minimum")
	assert.Equal(t, 40, p.UsedMinutes)
}

func TestTotals(t *testing.T) {
	p := Build(90, 2)
	assert.Equal(t, 84, p.FocusMinutes())
	assert.Equal(t, 5, p.BreakTotalMinutes())
	assert.Equal(t, 90, p.TotalMinutes())
}

func TestSameShape(t *testing.T) {
	assert.True(t, Build(70, 3).SameShape(Build(71, 3)), "same sprint length and count")
	assert.False(t, Build(70, 3).SameShape(Build(73, 3)))
	assert.False(t, Build(70, 3).SameShape(Build(70, 4)))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, MinDuration, ClampDuration(10))
	assert.Equal(t, MaxDuration, ClampDuration(500))
	assert.Equal(t, 60, ClampDuration(60))
	assert.Equal(t, MinSprints, ClampSprints(0))
	assert.Equal(t, MaxSprints, ClampSprints(9))
	assert.Equal(t, MinLevel, ClampLevel(-1))
	assert.Equal(t, MaxLevel, ClampLevel(6))
	assert.Equal(t, 3, ClampLevel(3))
}

func TestSegments(t *testing.T) {
	segs := Build(70, 3).Segments()
	require.Len(t, segs, 5)
	kinds := []SegmentKind{SegmentFocus, SegmentBreak, SegmentFocus, SegmentBreak, SegmentFocus}
	starts := []int{0, 20, 25, 45, 50}
	for i, s := range segs {
		assert.Equal(t, kinds[i], s.Kind)
		assert.Equal(t, starts[i], s.StartMinute)
	}
	assert.Equal(t, "Sprint 2", segs[2].Label())
	assert.Equal(t, "Break 1", segs[1].Label())

	segs = Build(90, 2).Segments()
	require.Len(t, segs, 4)
	last := segs[len(segs)-1]
	assert.Equal(t, SegmentBuffer, last.Kind)
	assert.Equal(t, 1, last.Minutes)
	assert.Equal(t, 89, last.StartMinute)
	assert.Equal(t, "Buffer", last.Label())
}
