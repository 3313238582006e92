package game

import (
	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
)

// AnimalKind distinguishes the two thieves.
type AnimalKind int

const (
	KindSquirrel AnimalKind = iota
	KindRaccoon
)

// String returns the kind name.
func (k AnimalKind) String() string {
	switch k {
	case KindSquirrel:
		return "squirrel"
	case KindRaccoon:
		return "raccoon"
	default:
		return "animal"
	}
}

// AnimalState is the behavioral state of an animal.
type AnimalState int

const (
	StateSeeking    AnimalState = iota // Heading for the nearest vegetable in play
	StateCarrying                      // Dragging cargo away from the center
	StateFleeing                       // Leaving the field empty-handed
	StateGoingToTap                    // Squirrel only: heading to shut the water off
	StateStopped                       // Frozen at round end
)

// String returns the state name.
func (s AnimalState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateCarrying:
		return "carrying"
	case StateFleeing:
		return "fleeing"
	case StateGoingToTap:
		return "going_to_tap"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AnimalParams is the per-kind parameter table entry.
type AnimalParams struct {
	Capacity         int
	GrabRadius       float64
	HitRadius        float64
	TapCooldownTicks int
}

func paramsFrom(a config.AnimalConfig) AnimalParams {
	return AnimalParams{
		Capacity:         a.Capacity,
		GrabRadius:       a.GrabRadius,
		HitRadius:        a.HitRadius,
		TapCooldownTicks: a.TapCooldownTicks,
	}
}

// Animal is a squirrel or raccoon. Kind-specific behavior is driven by the
// parameter table, not by separate types.
type Animal struct {
	ID    int
	Kind  AnimalKind
	Pos   core.Vec
	Vel   core.Vec // Units per second, last applied
	State AnimalState

	Cargo  []int // IDs of carried vegetables, in grab order
	Target int   // Vegetable being sought, 0 when none

	// Speeds already scaled for the round the animal spawned in
	SeekSpeed  float64
	CarrySpeed float64
	FleeSpeed  float64

	TapCooldown int // Ticks until the squirrel may head for the tap again

	Removed bool // Marked for removal at the end of the tick
}

// HasCargo reports whether the animal holds at least one vegetable.
func (a *Animal) HasCargo() bool {
	return len(a.Cargo) > 0
}

// Stop freezes the animal for the rest of the round.
func (a *Animal) Stop() {
	a.State = StateStopped
	a.Vel = core.Vec{}
	a.Target = 0
}

// scared switches the animal to fleeing and forgets its target.
func (a *Animal) scared() {
	a.State = StateFleeing
	a.Target = 0
}
