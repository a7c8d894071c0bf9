package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/aura/internal/config"
	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/session"
	"github.com/sadopc/aura/internal/store"
	"github.com/sadopc/aura/internal/tui"
)

// NewRootCmd returns the aura command. Without a subcommand it runs the TUI.
func NewRootCmd(version string) *cobra.Command {
	f := &Flags{}

	root := &cobra.Command{
		Use:   "aura",
		Short: "Terminal focus-session companion",
		Long: "aura plans a focus session as sprints and rhythm breaks, paints it in a palette\n" +
			"grown from one seed color, and keeps you locked in until it is done.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFlags(cmd, f); err != nil {
				return err
			}
			return runTUI(cmd, f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	BindFlags(root, f)
	root.AddCommand(newPlanCmd(f), newPaletteCmd(f))
	return root
}

func runTUI(cmd *cobra.Command, f *Flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		logPath = f.LogFile
	}
	log := logging.Discard()
	if logPath != "" {
		log, err = logging.OpenFile(logPath, f.Verbose)
		if err != nil {
			return err
		}
	}
	defer log.Close()

	prefs, err := openPrefs(f)
	if err != nil {
		return err
	}
	defer prefs.Close()

	params, err := resolveParams(cmd, f, cfg, prefs)
	if err != nil {
		return err
	}

	var bell io.Writer
	if cfg.Bell {
		bell = os.Stderr
	}

	log.Infof("starting: %d min, %d sprints, seed %s", params.Duration, params.Sprints, params.Seed)
	err = tui.Run(params, tui.Options{
		Prefs:  prefs,
		Log:    log,
		Moods:  cfg.Moods,
		Bell:   bell,
		Inline: f.Inline,
	})
	if err != nil {
		log.Errorf("tui: %v", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func loadConfig(f *Flags) (config.Config, error) {
	path := f.ConfigFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// no config dir, nothing to read
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

func openPrefs(f *Flags) (*store.Store, error) {
	if f.Ephemeral {
		return store.NewMemory()
	}
	path := f.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	return s, nil
}

// resolveParams layers the session inputs: config file, then remembered
// preferences, then flags the user actually set.
func resolveParams(cmd *cobra.Command, f *Flags, cfg config.Config, prefs *store.Store) (session.Params, error) {
	p := cfg.Params

	if prefs != nil {
		remembered, err := prefs.LoadPreferences(store.Preferences{
			Duration: p.Duration,
			Sprints:  p.Sprints,
			Seed:     p.Seed,
			Energy:   p.Energy,
			Ambience: p.Ambience,
		})
		if err != nil {
			return session.Params{}, fmt.Errorf("load preferences: %w", err)
		}
		p = session.Params{
			Duration: remembered.Duration,
			Sprints:  remembered.Sprints,
			Seed:     remembered.Seed,
			Energy:   remembered.Energy,
			Ambience: remembered.Ambience,
		}
	}

	changed := cmd.Flags().Changed
	if changed("duration") {
		p.Duration = f.Duration
	}
	if changed("sprints") {
		p.Sprints = f.Sprints
	}
	if changed("seed") {
		p.Seed = f.Seed
	}
	return p.Normalize(), nil
}

// nonInteractiveParams resolves session inputs for the one-shot commands.
func nonInteractiveParams(cmd *cobra.Command, f *Flags) (session.Params, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return session.Params{}, err
	}
	prefs, err := openPrefs(f)
	if err != nil {
		return session.Params{}, err
	}
	defer prefs.Close()
	return resolveParams(cmd, f, cfg, prefs)
}
