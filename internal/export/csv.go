package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes one row per timeline segment.
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"#", "Segment", "Kind", "Start", "Start (min)", "Minutes"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, s := range doc.Segments {
		row := []string{
			fmt.Sprintf("%d", i+1),
			s.Label,
			s.Kind,
			s.Start,
			fmt.Sprintf("%d", s.StartMinute),
			fmt.Sprintf("%d", s.Minutes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
