package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/plan"
)

const formatText = "text"

var heading = color.New(color.FgCyan, color.Bold)

func newPlanCmd(f *Flags) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the session plan and its timeline",
		Example: "  aura plan --duration 90 --sprints 4\n" +
			"  aura plan --format yaml -o plan.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFlags(cmd, f); err != nil {
				return err
			}
			params, err := nonInteractiveParams(cmd, f)
			if err != nil {
				return err
			}

			doc := export.NewDocument(plan.Build(params.Duration, params.Sprints), params.Seed, time.Now())
			if format == formatText {
				return writeText(cmd, output, func(w io.Writer) error { return writePlanText(w, doc) })
			}

			ef, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				return export.Write(cmd.OutOrStdout(), ef, doc)
			}
			if err := export.ToFile(output, ef, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, csv or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

// writeText sends text output to stdout or, when path is set, to a new file.
func writeText(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	return nil
}

func writePlanText(w io.Writer, doc export.Document) error {
	p := doc.Plan
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %d min\n", heading.Sprint("Plan"), p.Duration)
	fmt.Fprintf(&b, "  %d × %d min sprints, %d × %d min breaks\n\n",
		p.SprintCount, p.SprintMinutes, p.BreakCount, p.BreakMinutes)

	fmt.Fprintf(&b, "%s\n", heading.Sprint("Timeline"))
	fmt.Fprintf(&b, "  %-10s %-7s %s\n", "Segment", "Start", "Minutes")
	for _, s := range doc.Segments {
		fmt.Fprintf(&b, "  %-10s %-7s %d\n", s.Label, s.Start, s.Minutes)
	}

	t := doc.Totals
	fmt.Fprintf(&b, "\n%s\n", heading.Sprint("Totals"))
	fmt.Fprintf(&b, "  focus %d min, breaks %d min, session %d min\n",
		t.FocusMinutes, t.BreakMinutes, t.SessionMinutes)
	if t.OverrunMinutes > 0 {
		fmt.Fprintf(&b, "  %s\n", color.YellowString("runs %d min over the requested %d", t.OverrunMinutes, p.Duration))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
