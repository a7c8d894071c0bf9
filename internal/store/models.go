package store

// Setting is one row of the settings table.
type Setting struct {
	Key   string
	Value string
}

// Preferences are the remembered session inputs. Session state itself is
// never stored.
type Preferences struct {
	Duration int
	Sprints  int
	Seed     string
	Energy   int
	Ambience int
}

const (
	keyDuration = "session_duration"
	keySprints  = "sprint_count"
	keySeed     = "seed_color"
	keyEnergy   = "energy"
	keyAmbience = "ambience"
)
