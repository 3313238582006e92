package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move gardener up
	ActionDown           // S, Down arrow - move gardener down
	ActionLeft           // A, Left arrow - move gardener left
	ActionRight          // D, Right arrow - move gardener right
	ActionSpray          // Space - spray water / operate the tap
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - new game after game over
	ActionSave           // Ctrl+S - quicksave
	ActionLoad           // Ctrl+L - quickload
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSpray:
		return "Spray"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the set of actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Input is the normalized per-tick input snapshot consumed by the simulation.
// Frontends (keyboard, SSH, scripted runs) all reduce to this shape.
type Input struct {
	MoveX, MoveY     float64 // Each in [-1, 1]
	SprayHeld        bool
	SprayJustPressed bool
	PauseToggled     bool
	QuitRequested    bool
}

// Facing returns the angle hint derived from the directional input.
// ok is false when there is no directional input this tick.
func (in Input) Facing() (angle float64, ok bool) {
	dir := Vec{X: in.MoveX, Y: in.MoveY}
	if dir.Len() == 0 {
		return 0, false
	}
	return dir.Angle(), true
}

// Move returns the directional input clamped to the unit circle, so a
// diagonal is no faster than a straight line.
func (in Input) Move() Vec {
	v := Vec{X: ClampF(in.MoveX, -1, 1), Y: ClampF(in.MoveY, -1, 1)}
	if l := v.Len(); l > 1 {
		return v.Scale(1 / l)
	}
	return v
}
