package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func allColors(p Palette) []string {
	out := append([]string{}, p.Tones[:]...)
	return append(out, p.Accent, p.Ink)
}

func TestGenerate_Deterministic(t *testing.T) {
	seeds := []string{DefaultSeed, "#5166B3", "#F49C6B", "#7FC8A9", "#ff0000", "#000", "#ffffff"}
	for _, seed := range seeds {
		first := Generate(seed)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Generate(seed), "seed %s", seed)
		}
	}
}

func TestGenerate_AlwaysFullyPopulated(t *testing.T) {
	seeds := []string{DefaultSeed, "#00ff00", "#0000ff", "#ff00ff", "#123", "#fefefe", "#010101", "not a color", ""}
	for _, seed := range seeds {
		p := Generate(seed)
		for _, c := range allColors(p) {
			assert.Regexp(t, hexPattern, c, "seed %q produced %q", seed, c)
		}
	}
}

func TestGenerate_UnparseableSeedFallsBackToDefault(t *testing.T) {
	want := Generate(DefaultSeed)
	for _, seed := range []string{"", "   ", "blue-ish", "notacolor", "#12", "#gggggg", "rgb(1,2)"} {
		assert.Equal(t, want, Generate(seed), "seed %q", seed)
	}
}

func TestGenerate_CSSColorSeeds(t *testing.T) {
	fallback := Generate(DefaultSeed)
	tests := []struct {
		name string
		seed string
		same string
	}{
		{"named", "red", "#ff0000"},
		{"named upper", "RebeccaPurple", "#663399"},
		{"rgb space", "rgb(255 0 0)", "#ff0000"},
		{"rgb comma", "rgb(255, 0, 0)", "#ff0000"},
		{"hsl", "hsl(0, 100%, 50%)", "#ff0000"},
		{"oklch", "oklch(0.6 0.2 30)", ""},
		{"hex with alpha", "#ff000080", "#ff0000"},
		{"short hex with alpha", "#f008", "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.seed)
			require.True(t, ok, "Parse(%q)", tt.seed)
			got := Generate(tt.seed)
			assert.NotEqual(t, fallback, got)
			if tt.same != "" {
				assert.Equal(t, Generate(tt.same), got)
			}
		})
	}
}

func TestParse_OklchKeepsHue(t *testing.T) {
	c, ok := Parse("oklch(0.6 0.05 200)")
	require.True(t, ok)
	l, chroma, h := c.OkLch()
	assert.InDelta(t, 0.6, l, 0.01)
	assert.InDelta(t, 0.05, chroma, 0.01)
	assert.InDelta(t, 200, h, 1)
}

func TestGenerate_SeedNormalization(t *testing.T) {
	assert.Equal(t, Generate("#8aa3ff"), Generate("  #8AA3FF "))
}

func TestGenerate_TonesRunLightToDark(t *testing.T) {
	p := Generate("#F49C6B")
	prev := 2.0
	for i, tone := range p.Tones {
		c, ok := Parse(tone)
		require.True(t, ok)
		l, _, _ := c.OkLch()
		assert.InDelta(t, toneLightness[i], l, 0.02, "tone %d", i)
		assert.Less(t, l, prev, "tone %d should be darker than tone %d", i, i-1)
		prev = l
	}
}

func TestGenerate_AccentAndInkLightness(t *testing.T) {
	p := Generate(DefaultSeed)

	accent, ok := Parse(p.Accent)
	require.True(t, ok)
	l, _, _ := accent.OkLch()
	assert.InDelta(t, accentLight, l, 0.02)

	ink, ok := Parse(p.Ink)
	require.True(t, ok)
	l, _, _ = ink.OkLch()
	assert.InDelta(t, inkLight, l, 0.02)
}

func TestGenerate_AccentHueShift(t *testing.T) {
	base, ok := Parse(DefaultSeed)
	require.True(t, ok)
	_, _, baseHue := base.OkLch()

	accent, ok := Parse(Generate(DefaultSeed).Accent)
	require.True(t, ok)
	_, _, h := accent.OkLch()

	diff := h - baseHue
	if diff < 0 {
		diff += 360
	}
	assert.InDelta(t, accentShift, diff, 3)
}

func TestGenerate_AchromaticSeedStaysGray(t *testing.T) {
	p := Generate("#808080")
	for _, c := range allColors(p) {
		col, ok := Parse(c)
		require.True(t, ok)
		_, chroma, _ := col.OkLch()
		assert.Less(t, chroma, 0.01, "color %s should be near gray", c)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"#8AA3FF", true},
		{"#8aa3ff", true},
		{"#abc", true},
		{" #abc ", true},
		{"#abcd", true},
		{"#8AA3FFCC", true},
		{"blue", true},
		{"hsl(220 100% 77%)", true},
		{"#xyzxyz", false},
		{"blue-ish", false},
		{"", false},
	}
	for _, tt := range tests {
		_, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, "Parse(%q)", tt.in)
		assert.Equal(t, tt.ok, Valid(tt.in))
	}
}

func TestClampChroma_OutOfGamutIsPulledIn(t *testing.T) {
	c := clampChroma(0.6, 0.4, 140)
	assert.True(t, displayable(c))
	l, chroma, _ := c.OkLch()
	assert.InDelta(t, 0.6, l, 0.01)
	assert.Less(t, chroma, 0.4)
}

func TestMoods(t *testing.T) {
	require.Len(t, Moods, 4)
	assert.Equal(t, DefaultSeed, Moods[0].Seed)
	for _, m := range Moods {
		assert.True(t, Valid(m.Seed), "mood %s seed %s", m.ID, m.Seed)
	}
	assert.Equal(t, 2, FindMood(Moods, "#f49c6b"))
	assert.Equal(t, -1, FindMood(Moods, "#000000"))
}
