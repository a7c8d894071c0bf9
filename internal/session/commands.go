package session

// Command is a typed request applied by Store.Dispatch. The set is closed.
type Command interface {
	commandName() string
}

type (
	Start        struct{}
	Pause        struct{}
	Resume       struct{}
	Reset        struct{}
	Commit       struct{}
	CancelCommit struct{}

	SetSeed        struct{ Color string }
	SetDuration    struct{ Minutes int }
	SetSprintCount struct{ Count int }
	SetEnergy      struct{ Level int }
	SetAmbience    struct{ Level int }
	SetFocusCard   struct{ Card FocusCard }
)

func (Start) commandName() string          { return "start" }
func (Pause) commandName() string          { return "pause" }
func (Resume) commandName() string         { return "resume" }
func (Reset) commandName() string          { return "reset" }
func (Commit) commandName() string         { return "commit" }
func (CancelCommit) commandName() string   { return "cancel-commit" }
func (SetSeed) commandName() string        { return "set-seed" }
func (SetDuration) commandName() string    { return "set-duration" }
func (SetSprintCount) commandName() string { return "set-sprint-count" }
func (SetEnergy) commandName() string      { return "set-energy" }
func (SetAmbience) commandName() string    { return "set-ambience" }
func (SetFocusCard) commandName() string   { return "set-focus-card" }
