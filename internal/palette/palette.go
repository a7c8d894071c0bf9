// Package palette derives a session color palette from a single seed color.
//
// Colors are computed in OKLCH so that every tone keeps the seed's hue while
// lightness steps evenly from light to dark. Generation never fails: a seed
// that cannot be parsed is replaced by DefaultSeed.
package palette

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// DefaultSeed is used whenever a seed string cannot be parsed.
const DefaultSeed = "#8AA3FF"

// ToneCount is the number of tones in every palette.
const ToneCount = 5

const (
	fallbackHue    = 270.0
	achromaticEps  = 1e-6
	maxChroma      = 0.4
	gamutEps       = 1e-9
	accentShift    = 22.0
	accentLight    = 0.62
	accentChroma   = 1.4
	inkLight       = 0.22
	inkChroma      = 0.5
	toneChromaBase = 0.9
	toneChromaStep = 0.12
)

// toneLightness runs light to dark; index 0 is the lightest tone.
var toneLightness = [ToneCount]float64{0.92, 0.82, 0.72, 0.60, 0.48}

// Palette is a fully populated set of display colors, all "#rrggbb".
type Palette struct {
	Tones  [ToneCount]string `json:"tones" yaml:"tones"`
	Accent string            `json:"accent" yaml:"accent"`
	Ink    string            `json:"ink" yaml:"ink"`
}

// Generate builds the palette for seed. Identical seeds give identical
// palettes; an unparseable seed gives the palette of DefaultSeed.
func Generate(seed string) Palette {
	base, ok := Parse(seed)
	if !ok {
		base, _ = Parse(DefaultSeed)
	}

	_, chroma, hue := base.OkLch()
	if chroma < achromaticEps {
		hue = fallbackHue
	}

	var p Palette
	for i, l := range toneLightness {
		c := chroma * (toneChromaBase + float64(i)*toneChromaStep)
		p.Tones[i] = clampChroma(l, c, hue).Hex()
	}
	p.Accent = clampChroma(accentLight, chroma*accentChroma, math.Mod(hue+accentShift, 360)).Hex()
	p.Ink = clampChroma(inkLight, chroma*inkChroma, hue).Hex()
	return p
}

// Parse reads any CSS color string: hex with 3, 4, 6 or 8 digits, named
// colors, and the rgb(), hsl(), hwb(), lab(), lch(), oklab() and oklch()
// functions. Alpha is dropped. Case and surrounding space are ignored.
func Parse(seed string) (colorful.Color, bool) {
	s := strings.TrimSpace(seed)
	if s == "" {
		return colorful.Color{}, false
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped(), true
}

// Valid reports whether seed parses as a color.
func Valid(seed string) bool {
	_, ok := Parse(seed)
	return ok
}

// clampChroma returns the OKLCH color (l, c, h), reducing chroma by bisection
// until it lands inside the sRGB gamut. Lightness and hue are preserved.
func clampChroma(l, c, h float64) colorful.Color {
	col := colorful.OkLch(l, c, h)
	if displayable(col) {
		return col
	}

	gray := colorful.OkLch(l, 0, h)
	if !displayable(gray) {
		return gray.Clamped()
	}

	lo, hi := 0.0, c
	good := gray
	resolution := maxChroma / math.Pow(2, 13)
	for hi-lo > resolution {
		mid := lo + (hi-lo)/2
		candidate := colorful.OkLch(l, mid, h)
		if displayable(candidate) {
			good = candidate
			lo = mid
		} else {
			hi = mid
		}
	}
	return good.Clamped()
}

func displayable(c colorful.Color) bool {
	return c.R >= -gamutEps && c.R <= 1+gamutEps &&
		c.G >= -gamutEps && c.G <= 1+gamutEps &&
		c.B >= -gamutEps && c.B <= 1+gamutEps
}
