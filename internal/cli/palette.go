package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/palette"
)

type paletteOutput struct {
	Seed    string          `json:"seed" yaml:"seed"`
	Mood    string          `json:"mood,omitempty" yaml:"mood,omitempty"`
	Palette palette.Palette `json:"palette" yaml:"palette"`
}

func newPaletteCmd(f *Flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "palette [SEED]",
		Short: "Print the palette grown from a seed color",
		Example: "  aura palette '#F49C6B'\n" +
			"  aura palette --format json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFlags(cmd, f); err != nil {
				return err
			}
			if format != formatText && format != "json" && format != "yaml" {
				return fmt.Errorf("palette supports text, json or yaml, got %q", format)
			}

			log := logging.New(cmd.ErrOrStderr(), f.Verbose)

			var seed string
			if len(args) == 1 {
				seed = args[0]
			} else {
				params, err := nonInteractiveParams(cmd, f)
				if err != nil {
					return err
				}
				seed = params.Seed
			}
			if !palette.Valid(seed) {
				log.Warnf("%q is not a color, using %s", seed, palette.DefaultSeed)
				seed = palette.DefaultSeed
			}

			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			out := paletteOutput{Seed: seed, Palette: palette.Generate(seed)}
			if i := palette.FindMood(cfg.Moods, seed); i >= 0 {
				out.Mood = cfg.Moods[i].Label
			}
			log.Debugf("palette for %s: %v", seed, out.Palette.Tones)

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal palette: %w", err)
				}
				_, err = fmt.Fprintf(w, "%s\n", data)
				return err
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out); err != nil {
					return fmt.Errorf("encode palette: %w", err)
				}
				return enc.Close()
			}
			return writePaletteText(w, out)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or yaml")
	return cmd
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

func writePaletteText(w io.Writer, out paletteOutput) error {
	var b strings.Builder

	title := heading.Sprint("Palette") + "  " + out.Seed
	if out.Mood != "" {
		title += " (" + out.Mood + ")"
	}
	b.WriteString(title + "\n")

	for i, tone := range out.Palette.Tones {
		fmt.Fprintf(&b, "  %s  tone %d  %s\n", swatch(tone), i+1, tone)
	}
	fmt.Fprintf(&b, "  %s  accent  %s\n", swatch(out.Palette.Accent), out.Palette.Accent)
	fmt.Fprintf(&b, "  %s  ink     %s\n", swatch(out.Palette.Ink), out.Palette.Ink)

	_, err := io.WriteString(w, b.String())
	return err
}
