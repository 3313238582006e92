package game

import (
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// VegetableStatus is the lifecycle state of a vegetable.
type VegetableStatus int

const (
	StatusInPlay  VegetableStatus = iota // In the field, counted as remaining
	StatusCarried                        // Being dragged away by an animal
	StatusLost                           // Released off-field at round end, never returns
	StatusEscaped                        // Carried off the field, destroyed
)

// String returns the status name.
func (s VegetableStatus) String() string {
	switch s {
	case StatusInPlay:
		return "in_play"
	case StatusCarried:
		return "carried"
	case StatusLost:
		return "lost"
	case StatusEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Variety is the cosmetic kind of a vegetable.
type Variety int

const (
	VarietyCarrot Variety = iota
	VarietyTomato
	VarietyLettuce
	VarietyPumpkin
	VarietyEggplant
	VarietyCount // Sentinel for counting varieties
)

// String returns the variety name.
func (v Variety) String() string {
	switch v {
	case VarietyCarrot:
		return "carrot"
	case VarietyTomato:
		return "tomato"
	case VarietyLettuce:
		return "lettuce"
	case VarietyPumpkin:
		return "pumpkin"
	case VarietyEggplant:
		return "eggplant"
	default:
		return "vegetable"
	}
}

// Glyph returns the display character for a variety.
func (v Variety) Glyph() rune {
	switch v {
	case VarietyCarrot:
		return 'v'
	case VarietyTomato:
		return 'o'
	case VarietyLettuce:
		return '%'
	case VarietyPumpkin:
		return '0'
	case VarietyEggplant:
		return '&'
	default:
		return '*'
	}
}

// Vegetable is a single crop in the garden.
type Vegetable struct {
	ID        int
	Pos       core.Vec
	Variety   Variety
	Status    VegetableStatus
	CarrierID int // Animal holding it while Status == StatusCarried, otherwise 0
}

// InPlay reports whether the vegetable counts toward the remaining total.
func (v *Vegetable) InPlay() bool {
	return v.Status == StatusInPlay
}

// Droplet is a water projectile fired from the hose.
type Droplet struct {
	ID   int
	Pos  core.Vec
	Vel  core.Vec // Units per second
	Age  time.Duration
	Life time.Duration
	Dead bool
}

// Move advances the droplet and ages it.
func (d *Droplet) Move(dt time.Duration) {
	d.Pos = d.Pos.Add(d.Vel.Scale(dt.Seconds()))
	d.Age += dt
	if d.Age >= d.Life {
		d.Dead = true
	}
}

// Gardener is the player character.
type Gardener struct {
	Pos           core.Vec
	Facing        float64       // Radians, 0 = east
	sprayCooldown time.Duration // Time until the next burst may fire
}
