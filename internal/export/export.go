// Package export writes a session plan, its timeline and its palette to
// CSV, JSON or YAML.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/plan"
)

// Format is an export file format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats in picker order.
var Formats = []Format{CSV, JSON, YAML}

// ParseFormat accepts a format name, case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Document is the structured export of one plan.
type Document struct {
	ExportedAt string          `json:"exported_at" yaml:"exported_at"`
	Seed       string          `json:"seed" yaml:"seed"`
	Plan       plan.Plan       `json:"plan" yaml:"plan"`
	Totals     Totals          `json:"totals" yaml:"totals"`
	Segments   []Segment       `json:"segments" yaml:"segments"`
	Palette    palette.Palette `json:"palette" yaml:"palette"`
}

type Totals struct {
	FocusMinutes   int `json:"focus_minutes" yaml:"focus_minutes"`
	BreakMinutes   int `json:"break_minutes" yaml:"break_minutes"`
	SessionMinutes int `json:"session_minutes" yaml:"session_minutes"`
	OverrunMinutes int `json:"overrun_minutes,omitempty" yaml:"overrun_minutes,omitempty"`
}

type Segment struct {
	Label       string `json:"label" yaml:"label"`
	Kind        string `json:"kind" yaml:"kind"`
	StartMinute int    `json:"start_minute" yaml:"start_minute"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	Start       string `json:"start" yaml:"start"`
}

// NewDocument assembles the export of p with the palette grown from seed.
func NewDocument(p plan.Plan, seed string, now time.Time) Document {
	doc := Document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Seed:       seed,
		Plan:       p,
		Totals: Totals{
			FocusMinutes:   p.FocusMinutes(),
			BreakMinutes:   p.BreakTotalMinutes(),
			SessionMinutes: p.TotalMinutes(),
			OverrunMinutes: p.OverrunMinutes(),
		},
		Palette: palette.Generate(seed),
	}
	for _, s := range p.Segments() {
		doc.Segments = append(doc.Segments, Segment{
			Label:       s.Label(),
			Kind:        string(s.Kind),
			StartMinute: s.StartMinute,
			Minutes:     s.Minutes,
			Start:       formatOffset(s.StartMinute),
		})
	}
	return doc
}

// Write encodes doc to w.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case CSV:
		return WriteCSV(w, doc)
	case JSON:
		return WriteJSON(w, doc)
	case YAML:
		return WriteYAML(w, doc)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// ToFile writes doc to path, creating or truncating it.
func ToFile(path string, f Format, doc Document) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s file: %w", f, err)
	}
	if err := Write(out, f, doc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// FileName is the default export file name for a format.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("aura-plan-%s.%s", now.Format("20060102-150405"), f)
}

// formatOffset renders minutes from session start as H:MM.
func formatOffset(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
