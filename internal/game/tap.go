package game

import "github.com/vovakirdan/garden-defense/internal/core"

// Tap is the garden water tap. Spraying only works while it is on.
//
// Exactly two gameplay writers exist: a squirrel arriving to shut it and the
// gardener opening it again. Round start and load restore it directly.
type Tap struct {
	Pos       core.Vec
	on        bool
	displayOn bool // Mirrors on for the renderer
}

// NewTap creates an open tap at pos.
func NewTap(pos core.Vec) *Tap {
	return &Tap{Pos: pos, on: true, displayOn: true}
}

// IsOn reports the authoritative state.
func (t *Tap) IsOn() bool {
	return t.on
}

// DisplayOn reports the mirrored state shown to the player.
func (t *Tap) DisplayOn() bool {
	return t.displayOn
}

// TurnOffBySquirrel closes the tap. Only a squirrel on its way to the tap
// may do this, and only while the tap is open.
func (t *Tap) TurnOffBySquirrel(a *Animal) bool {
	if !t.on || a.Kind != KindSquirrel || a.State != StateGoingToTap {
		return false
	}
	t.set(false)
	return true
}

// TurnOnByGardener opens the tap when the gardener is within reach.
func (t *Tap) TurnOnByGardener(g *Gardener, reach float64) bool {
	if t.on || g.Pos.Dist(t.Pos) > reach {
		return false
	}
	t.set(true)
	return true
}

// Reset opens the tap for a new round.
func (t *Tap) Reset() {
	t.set(true)
}

// Restore sets the state from a saved game.
func (t *Tap) Restore(on bool) {
	t.set(on)
}

func (t *Tap) set(on bool) {
	t.on = on
	t.displayOn = on
}
