package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/plan"
	"github.com/sadopc/aura/internal/session"
)

type timelineModel struct {
	width  int
	height int

	chart barchart.Model
}

func newTimelineModel() timelineModel {
	return timelineModel{chart: barchart.New(60, 12)}
}

func (r *timelineModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

// build redraws the chart for p. Call it whenever the plan, palette or
// size changes.
func (r *timelineModel) build(p plan.Plan, th theme) {
	chartWidth := max(20, r.width-8)
	chartHeight := 10
	if r.height > 30 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, s := range p.Segments() {
		bars = append(bars, barchart.BarData{
			Label: segmentShortLabel(s),
			Values: []barchart.BarValue{{
				Name:  s.Label(),
				Value: float64(s.Minutes),
				Style: lipgloss.NewStyle().Foreground(segmentColor(s.Kind, th)),
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func segmentShortLabel(s plan.Segment) string {
	switch s.Kind {
	case plan.SegmentFocus:
		return fmt.Sprintf("S%d", s.Sprint)
	case plan.SegmentBreak:
		return fmt.Sprintf("B%d", s.Sprint)
	}
	return "+"
}

func segmentColor(k plan.SegmentKind, th theme) lipgloss.Color {
	switch k {
	case plan.SegmentFocus:
		return th.primary()
	case plan.SegmentBreak:
		return th.tones[0]
	}
	return colorSubtle
}

func (r timelineModel) view(snap session.Snapshot, th theme) string {
	w := r.width - 4
	p := snap.Plan

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		th.title().Render("Timeline"), "  ",
		mutedStyle.Render(fmt.Sprintf("%s planned, %s used", formatMinutes(p.Duration), formatMinutes(p.UsedMinutes))),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", renderLegend(th), "", r.renderSegmentTable(snap, th, w), "",
			mutedStyle.Render("  e: export plan"),
		),
	)
}

func (r timelineModel) renderSegmentTable(snap session.Snapshot, th theme, w int) string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-10s %-8s %8s", "Segment", "Starts", "Length")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 28))))

	current := currentSegment(snap)
	for i, s := range snap.Plan.Segments() {
		dot := lipgloss.NewStyle().Foreground(segmentColor(s.Kind, th)).Render("●")
		line := fmt.Sprintf("  %s %-8s %-8s %8s", dot, s.Label(), formatOffset(s.StartMinute), formatMinutes(s.Minutes))
		if i == current {
			line = th.selectedItem().Render(line + "  ◀")
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// currentSegment is the index of the running segment, or -1.
func currentSegment(snap session.Snapshot) int {
	st := snap.State
	if !st.Phase.Active() {
		return -1
	}
	// focus n is segment 2(n-1); the break after it is 2(n-1)+1
	i := 2 * (st.Sprint - 1)
	if st.Phase == session.PhaseBreak {
		i++
	}
	return i
}

func formatOffset(minutes int) string {
	return fmt.Sprintf("+%d:%02d", minutes/60, minutes%60)
}

func renderLegend(th theme) string {
	items := []string{
		lipgloss.NewStyle().Foreground(segmentColor(plan.SegmentFocus, th)).Render("●") + " focus",
		lipgloss.NewStyle().Foreground(segmentColor(plan.SegmentBreak, th)).Render("●") + " break",
		lipgloss.NewStyle().Foreground(segmentColor(plan.SegmentBuffer, th)).Render("●") + " buffer",
	}
	return "  " + strings.Join(items, "  ")
}
