package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/aura/internal/config"
	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/plan"
	"github.com/sadopc/aura/internal/store"
)

func newFlagCmd(t *testing.T, args ...string) (*cobra.Command, *Flags) {
	t.Helper()
	f := &Flags{}
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

// execute runs the root command with an isolated config dir.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestBindFlags_DefaultValues(t *testing.T) {
	_, f := newFlagCmd(t)

	assert.Equal(t, plan.DefaultDuration, f.Duration)
	assert.Equal(t, plan.DefaultSprints, f.Sprints)
	assert.Equal(t, palette.DefaultSeed, f.Seed)
	assert.Empty(t, f.ConfigFile)
	assert.Empty(t, f.DBPath)
	assert.Empty(t, f.LogFile)
	assert.False(t, f.Ephemeral)
	assert.False(t, f.Verbose)
	assert.False(t, f.Inline)
}

func TestBindFlags_VerboseShorthand(t *testing.T) {
	_, f := newFlagCmd(t, "-v")
	assert.True(t, f.Verbose)
}

func TestValidateFlags_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"defaults", nil, ""},
		{"duration ok", []string{"--duration", "90"}, ""},
		{"duration too short", []string{"--duration", "30"}, "--duration must be between 45 and 120"},
		{"duration too long", []string{"--duration", "121"}, "--duration"},
		{"sprints ok", []string{"--sprints", "5"}, ""},
		{"sprints too few", []string{"--sprints", "1"}, "--sprints must be between 2 and 5"},
		{"sprints too many", []string{"--sprints", "6"}, "--sprints"},
		{"short seed", []string{"--seed", "#abc"}, ""},
		{"named seed", []string{"--seed", "blue"}, ""},
		{"functional seed", []string{"--seed", "oklch(0.6 0.2 30)"}, ""},
		{"garbage seed", []string{"--seed", "notacolor"}, "--seed must be a CSS color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := newFlagCmd(t, tt.args...)
			err := ValidateFlags(cmd, f)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFlags_EphemeralWithDB(t *testing.T) {
	cmd, f := newFlagCmd(t, "--ephemeral", "--db", "x.db")
	err := ValidateFlags(cmd, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateFlags_MissingConfig(t *testing.T) {
	cmd, f := newFlagCmd(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	err := ValidateFlags(cmd, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")
}

func TestResolveParams_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration_minutes: 90\nsprint_count: 4\nseed_color: \"#5166B3\"\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	prefs, err := store.NewMemory()
	require.NoError(t, err)
	defer prefs.Close()
	require.NoError(t, prefs.SetSetting("sprint_count", "5"))

	cmd, f := newFlagCmd(t, "--seed", "#F49C6B")
	p, err := resolveParams(cmd, f, cfg, prefs)
	require.NoError(t, err)

	assert.Equal(t, 90, p.Duration, "config file")
	assert.Equal(t, 5, p.Sprints, "remembered preference")
	assert.Equal(t, "#F49C6B", p.Seed, "flag")
	assert.Equal(t, 3, p.Energy, "default")
}

func TestResolveParams_UnsetFlagKeepsPreference(t *testing.T) {
	prefs, err := store.NewMemory()
	require.NoError(t, err)
	defer prefs.Close()
	require.NoError(t, prefs.SetSetting("session_duration", "100"))

	cmd, f := newFlagCmd(t)
	p, err := resolveParams(cmd, f, config.Default(), prefs)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Duration)
}

func TestResolveParams_NoPreferences(t *testing.T) {
	cmd, f := newFlagCmd(t, "--duration", "45", "--sprints", "5")
	p, err := resolveParams(cmd, f, config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, 45, p.Duration)
	assert.Equal(t, 5, p.Sprints)
}

func TestPlanCmd_Text(t *testing.T) {
	out, _, err := execute(t, "plan", "--ephemeral", "--duration", "90", "--sprints", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Sprint 1")
	assert.Contains(t, out, "Break 1")
	assert.Contains(t, out, "Sprint 2")
	assert.Contains(t, out, "Buffer")
	assert.Contains(t, out, "1:29")
	assert.Contains(t, out, "session 90 min")
	assert.NotContains(t, out, "over the requested")
}

func TestPlanCmd_Overrun(t *testing.T) {
	out, _, err := execute(t, "plan", "--ephemeral", "--duration", "45", "--sprints", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "runs 25 min over the requested 45")
}

func TestPlanCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "plan", "--ephemeral", "--format", "json")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, plan.DefaultDuration, doc.Plan.Duration)
	assert.Equal(t, plan.DefaultSprints, doc.Plan.SprintCount)
	assert.Equal(t, palette.DefaultSeed, doc.Seed)
	assert.NotEmpty(t, doc.Segments)
}

func TestPlanCmd_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	_, errOut, err := execute(t, "plan", "--ephemeral", "--sprints", "2", "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc export.Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Plan.SprintCount)
}

func TestPlanCmd_TextOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	out, _, err := execute(t, "plan", "--ephemeral", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sprint 3")
}

func TestPlanCmd_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "plan", "--ephemeral", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestPlanCmd_InvalidDuration(t *testing.T) {
	_, _, err := execute(t, "plan", "--ephemeral", "--duration", "200")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--duration")
}

func TestPlanCmd_RemembersPreferences(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "aura.db")
	prefs, err := store.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, prefs.SetSetting("sprint_count", "4"))
	require.NoError(t, prefs.Close())

	out, _, err := execute(t, "plan", "--db", dbPath, "--format", "json")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 4, doc.Plan.SprintCount)
}

func TestPaletteCmd_Text(t *testing.T) {
	out, _, err := execute(t, "palette", "--ephemeral", "#F49C6B")
	require.NoError(t, err)

	p := palette.Generate("#F49C6B")
	assert.Contains(t, out, "Warmth")
	for _, tone := range p.Tones {
		assert.Contains(t, out, tone)
	}
	assert.Contains(t, out, p.Accent)
	assert.Contains(t, out, p.Ink)
}

func TestPaletteCmd_InvalidSeedWarns(t *testing.T) {
	out, errOut, err := execute(t, "palette", "--ephemeral", "notacolor")
	require.NoError(t, err)
	assert.Contains(t, errOut, "not a color")
	assert.Contains(t, out, palette.DefaultSeed)
}

func TestPaletteCmd_NamedSeed(t *testing.T) {
	out, errOut, err := execute(t, "palette", "--ephemeral", "--format", "json", "rgb(255 0 0)")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "not a color")

	var got paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "rgb(255 0 0)", got.Seed)
	assert.Equal(t, palette.Generate("#ff0000"), got.Palette)
	assert.NotEqual(t, palette.Generate(palette.DefaultSeed), got.Palette)
}

func TestPaletteCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "palette", "--ephemeral", "--format", "json", "#7FC8A9")
	require.NoError(t, err)

	var got paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "#7FC8A9", got.Seed)
	assert.Equal(t, "Fresh", got.Mood)
	assert.Equal(t, palette.Generate("#7FC8A9"), got.Palette)
}

func TestPaletteCmd_DefaultsToResolvedSeed(t *testing.T) {
	out, _, err := execute(t, "palette", "--ephemeral", "--seed", "#5166B3", "--format", "yaml")
	require.NoError(t, err)

	var got paletteOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "#5166B3", got.Seed)
	assert.Equal(t, "Depth", got.Mood)
}

func TestPaletteCmd_RejectsCSV(t *testing.T) {
	_, _, err := execute(t, "palette", "--ephemeral", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette supports text, json or yaml")
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
