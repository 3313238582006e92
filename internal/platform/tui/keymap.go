package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// holdFrames is how long a key press counts as held. Terminals report key
// repeats but never key releases, so a press is stretched across frames
// until the next repeat arrives.
const holdFrames = 8

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case " ", "space":
		return core.ActionSpray
	case "p", "esc":
		return core.ActionPause
	case "r", "enter":
		return core.ActionRestart
	case "ctrl+s":
		return core.ActionSave
	case "ctrl+l":
		return core.ActionLoad
	}
	return core.ActionNone
}

// InputState accumulates key presses between frames and turns them into the
// per-frame core.Input the session consumes.
type InputState struct {
	held    map[core.Action]int // Frames left before a press is released
	pressed core.InputFrame     // Presses since the last frame
	fresh   bool                // Spray went down since the last frame
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[core.Action]int),
		pressed: core.NewInputFrame(),
	}
}

// Press records an action from a key message.
func (s *InputState) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown:
		// Opposite directions cancel so the latest press wins
		delete(s.held, core.ActionUp)
		delete(s.held, core.ActionDown)
		s.held[a] = holdFrames
	case core.ActionLeft, core.ActionRight:
		delete(s.held, core.ActionLeft)
		delete(s.held, core.ActionRight)
		s.held[a] = holdFrames
	case core.ActionSpray:
		if s.held[a] == 0 {
			s.fresh = true
		}
		s.held[a] = holdFrames
	}
	s.pressed.Set(a)
}

// Frame returns the input for one frame and ages held keys.
func (s *InputState) Frame() core.Input {
	var in core.Input
	if s.held[core.ActionLeft] > 0 {
		in.MoveX = -1
	}
	if s.held[core.ActionRight] > 0 {
		in.MoveX = 1
	}
	if s.held[core.ActionUp] > 0 {
		in.MoveY = -1
	}
	if s.held[core.ActionDown] > 0 {
		in.MoveY = 1
	}
	in.SprayHeld = s.held[core.ActionSpray] > 0
	// Key repeats while spray is still held do not count as a new press
	in.SprayJustPressed = s.fresh
	in.PauseToggled = s.pressed.Has(core.ActionPause)

	for a, n := range s.held {
		if n <= 1 {
			delete(s.held, a)
		} else {
			s.held[a] = n - 1
		}
	}
	s.pressed.Clear()
	s.fresh = false
	return in
}

// Reset releases every key.
func (s *InputState) Reset() {
	for a := range s.held {
		delete(s.held, a)
	}
	s.pressed.Clear()
	s.fresh = false
}
