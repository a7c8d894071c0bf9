// Package cli builds the aura command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/plan"
)

// Flags holds the values of the persistent command-line flags.
type Flags struct {
	ConfigFile string
	DBPath     string
	Ephemeral  bool
	Duration   int
	Sprints    int
	Seed       string
	LogFile    string
	Verbose    bool
	Inline     bool
}

// BindFlags registers the persistent flags on cmd. Session inputs only take
// effect when set explicitly, so their defaults never mask the config file
// or remembered preferences.
func BindFlags(cmd *cobra.Command, f *Flags) {
	flags := cmd.PersistentFlags()

	// Sources
	flags.StringVar(&f.ConfigFile, "config", "", "Path to config file (default: <user config dir>/aura/config.yaml)")
	flags.StringVar(&f.DBPath, "db", "", "Path to preferences database (default: <user config dir>/aura/aura.db)")
	flags.BoolVar(&f.Ephemeral, "ephemeral", false, "Keep preferences in memory only")

	// Session inputs
	flags.IntVar(&f.Duration, "duration", plan.DefaultDuration,
		fmt.Sprintf("Session length in minutes (%d-%d)", plan.MinDuration, plan.MaxDuration))
	flags.IntVar(&f.Sprints, "sprints", plan.DefaultSprints,
		fmt.Sprintf("Number of focus sprints (%d-%d)", plan.MinSprints, plan.MaxSprints))
	flags.StringVar(&f.Seed, "seed", palette.DefaultSeed, "Seed color for the palette (any CSS color: #rrggbb, red, rgb(), hsl(), oklch())")

	// Output
	flags.StringVar(&f.LogFile, "log-file", "", "Append logs to this file")
	flags.BoolVarP(&f.Verbose, "verbose", "v", false, "Log debug records")
	flags.BoolVar(&f.Inline, "inline", false, "Start without the alternate screen")
}

// ValidateFlags rejects out-of-range values after parsing.
func ValidateFlags(cmd *cobra.Command, f *Flags) error {
	changed := cmd.Flags().Changed

	if changed("duration") && (f.Duration < plan.MinDuration || f.Duration > plan.MaxDuration) {
		return fmt.Errorf("--duration must be between %d and %d, got %d", plan.MinDuration, plan.MaxDuration, f.Duration)
	}
	if changed("sprints") && (f.Sprints < plan.MinSprints || f.Sprints > plan.MaxSprints) {
		return fmt.Errorf("--sprints must be between %d and %d, got %d", plan.MinSprints, plan.MaxSprints, f.Sprints)
	}
	if changed("seed") && !palette.Valid(f.Seed) {
		return fmt.Errorf("--seed must be a CSS color like %s or rebeccapurple, got %q", palette.DefaultSeed, f.Seed)
	}

	if f.Ephemeral && changed("db") {
		return fmt.Errorf("--ephemeral and --db are mutually exclusive")
	}

	// --config must exist if provided
	if f.ConfigFile != "" {
		if _, err := os.Stat(f.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}
	return nil
}
