package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/aura/internal/palette"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Bell)
	assert.Equal(t, 70, cfg.Params.Duration)
	assert.Len(t, cfg.Moods, len(palette.Moods))
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
duration_minutes: 90
sprint_count: 2
seed_color: "#F49C6B"
energy: 5
ambience: 1
bell: false
log_file: /tmp/aura.log
moods:
  - id: dusk
    label: Dusk
    hint: late work
    seed: "#443366"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Params.Duration)
	assert.Equal(t, 2, cfg.Params.Sprints)
	assert.Equal(t, "#F49C6B", cfg.Params.Seed)
	assert.Equal(t, 5, cfg.Params.Energy)
	assert.Equal(t, 1, cfg.Params.Ambience)
	assert.False(t, cfg.Bell)
	assert.Equal(t, "/tmp/aura.log", cfg.LogFile)
	require.Len(t, cfg.Moods, 1)
	assert.Equal(t, "dusk", cfg.Moods[0].ID)
}

func TestLoadIgnoresOutOfRange(t *testing.T) {
	path := writeConfig(t, `
duration_minutes: 200
sprint_count: 9
seed_color: purplish
energy: 0
ambience: 6
moods:
  - id: broken
    seed: "#zz"
  - seed: "#123456"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Params, cfg.Params)
	assert.True(t, cfg.Bell, "absent bell keeps default")
	assert.Equal(t, palette.Moods, cfg.Moods)
}

func TestLoadAcceptsCSSSeeds(t *testing.T) {
	path := writeConfig(t, `
seed_color: "oklch(0.6 0.2 30)"
moods:
  - id: sea
    seed: teal
  - id: ember
    seed: "hsl(20 90% 55%)"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "oklch(0.6 0.2 30)", cfg.Params.Seed)
	require.Len(t, cfg.Moods, 2)
	assert.Equal(t, "teal", cfg.Moods[0].Seed)
	assert.Equal(t, "hsl(20 90% 55%)", cfg.Moods[1].Seed)
}

func TestLoadMoodLabelDefaultsToID(t *testing.T) {
	path := writeConfig(t, "moods:\n  - id: calm\n    seed: \"#abc\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Moods, 1)
	assert.Equal(t, "calm", cfg.Moods[0].Label)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "duration_minutes: [1, 2\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
}

func TestDefaultMoodsAreACopy(t *testing.T) {
	cfg := Default()
	cfg.Moods[0].Label = "changed"
	assert.NotEqual(t, "changed", palette.Moods[0].Label)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "aura", "config.yaml"), path)
}
