// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/plan"
	"github.com/sadopc/aura/internal/session"
)

const (
	appName  = "aura"
	fileName = "config.yaml"
)

// Config is the effective file configuration.
type Config struct {
	Params  session.Params
	Bell    bool
	LogFile string
	Moods   []palette.Mood
}

type yamlConfig struct {
	DurationMinutes int            `yaml:"duration_minutes"`
	SprintCount     int            `yaml:"sprint_count"`
	SeedColor       string         `yaml:"seed_color"`
	Energy          int            `yaml:"energy"`
	Ambience        int            `yaml:"ambience"`
	Bell            *bool          `yaml:"bell"`
	LogFile         string         `yaml:"log_file"`
	Moods           []palette.Mood `yaml:"moods"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Params: session.DefaultParams(),
		Bell:   true,
		Moods:  append([]palette.Mood(nil), palette.Moods...),
	}
}

// DefaultPath is config.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, fileName), nil
}

// Load reads path. A missing file yields Default without error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var file yamlConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	apply(&cfg, file)
	return cfg, nil
}

// Out-of-range values keep the defaults.
func apply(cfg *Config, file yamlConfig) {
	if inRange(file.DurationMinutes, plan.MinDuration, plan.MaxDuration) {
		cfg.Params.Duration = file.DurationMinutes
	}
	if inRange(file.SprintCount, plan.MinSprints, plan.MaxSprints) {
		cfg.Params.Sprints = file.SprintCount
	}
	if palette.Valid(file.SeedColor) {
		cfg.Params.Seed = file.SeedColor
	}
	if inRange(file.Energy, plan.MinLevel, plan.MaxLevel) {
		cfg.Params.Energy = file.Energy
	}
	if inRange(file.Ambience, plan.MinLevel, plan.MaxLevel) {
		cfg.Params.Ambience = file.Ambience
	}
	if file.Bell != nil {
		cfg.Bell = *file.Bell
	}
	cfg.LogFile = file.LogFile

	var moods []palette.Mood
	for _, m := range file.Moods {
		if m.ID == "" || !palette.Valid(m.Seed) {
			continue
		}
		if m.Label == "" {
			m.Label = m.ID
		}
		moods = append(moods, m)
	}
	if len(moods) > 0 {
		cfg.Moods = moods
	}
}

func inRange(v, lo, hi int) bool { return v >= lo && v <= hi }
