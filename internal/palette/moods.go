package palette

import "strings"

// Mood is a named seed color preset.
type Mood struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Hint  string `yaml:"hint" json:"hint"`
	Seed  string `yaml:"seed" json:"seed"`
}

// Moods are the built-in presets. The first one uses DefaultSeed.
var Moods = []Mood{
	{ID: "clarity", Label: "Clarity", Hint: "clear and calm flow", Seed: DefaultSeed},
	{ID: "depth", Label: "Depth", Hint: "slow, heavy concentration", Seed: "#5166B3"},
	{ID: "warm", Label: "Warmth", Hint: "soft energy", Seed: "#F49C6B"},
	{ID: "fresh", Label: "Fresh", Hint: "light, cool rhythm", Seed: "#7FC8A9"},
}

// FindMood returns the index of the mood whose seed matches seed, or -1.
func FindMood(moods []Mood, seed string) int {
	for i, m := range moods {
		if strings.EqualFold(strings.TrimSpace(m.Seed), strings.TrimSpace(seed)) {
			return i
		}
	}
	return -1
}
