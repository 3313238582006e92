package game

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// Vegetables drives vegetable lifecycle transitions and keeps the
// authoritative count of vegetables in play.
//
// The count is mutated at each grab, drop and escape and only recounted at
// resync points (round start, forced drop, round scoring).
type Vegetables struct {
	reg  *Registry
	left int
	log  *log.Logger
}

// NewVegetables creates a lifecycle manager over the registry.
func NewVegetables(reg *Registry, logger *log.Logger) *Vegetables {
	return &Vegetables{reg: reg, log: logger}
}

// Left returns the authoritative in-play count.
func (m *Vegetables) Left() int {
	return m.left
}

// SpawnInitial plants count vegetables evenly on a circle around center,
// the first one straight above it.
func (m *Vegetables) SpawnInitial(center core.Vec, count int, radius float64) {
	for i := 0; i < count; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(count)
		pos := center.Add(core.FromAngle(angle).Scale(radius))
		m.reg.AddVegetable(pos, Variety(i%int(VarietyCount)))
		m.left++
	}
}

// Nearest returns the closest in-play vegetable, or nil. Ties keep the
// earlier vegetable.
func (m *Vegetables) Nearest(from core.Vec) *Vegetable {
	var best *Vegetable
	bestDist := math.Inf(1)
	for _, v := range m.reg.Vegetables() {
		if !v.InPlay() {
			continue
		}
		if d := v.Pos.Dist(from); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// Grab hands an in-play vegetable to an animal.
func (m *Vegetables) Grab(v *Vegetable, a *Animal) bool {
	if v == nil || !v.InPlay() {
		return false
	}
	v.Status = StatusCarried
	v.CarrierID = a.ID
	v.Pos = a.Pos
	a.Cargo = append(a.Cargo, v.ID)
	m.left--
	return true
}

// Drop returns a carried vegetable to play at pos.
func (m *Vegetables) Drop(v *Vegetable, pos core.Vec) bool {
	if v == nil || v.Status != StatusCarried {
		return false
	}
	v.Status = StatusInPlay
	v.CarrierID = 0
	v.Pos = pos
	m.left++
	return true
}

// Escape destroys a carried vegetable. It is removed at the next compaction.
func (m *Vegetables) Escape(v *Vegetable) bool {
	if v == nil || v.Status != StatusCarried {
		return false
	}
	v.Status = StatusEscaped
	v.CarrierID = 0
	return true
}

// Lose marks a carried vegetable as lost off-field.
func (m *Vegetables) Lose(v *Vegetable) bool {
	if v == nil || v.Status != StatusCarried {
		return false
	}
	v.Status = StatusLost
	v.CarrierID = 0
	return true
}

// ReleaseCargo drops everything the animal holds where it was being carried,
// pulled back inside field.
func (m *Vegetables) ReleaseCargo(a *Animal, field core.Bounds) int {
	released := 0
	for _, id := range a.Cargo {
		v := m.reg.Vegetable(id)
		if v != nil && m.Drop(v, field.Clamp(v.Pos)) {
			released++
		}
	}
	a.Cargo = nil
	return released
}

// CountInPlay counts in-play vegetables in the registry.
func (m *Vegetables) CountInPlay() int {
	return m.countStatus(StatusInPlay)
}

// CountCarried counts vegetables currently held by animals.
func (m *Vegetables) CountCarried() int {
	return m.countStatus(StatusCarried)
}

func (m *Vegetables) countStatus(status VegetableStatus) int {
	n := 0
	for _, v := range m.reg.Vegetables() {
		if v.Status == status {
			n++
		}
	}
	return n
}

// Recount resyncs the authoritative count with the registry and returns
// the drift that was corrected.
func (m *Vegetables) Recount() int {
	actual := m.CountInPlay()
	drift := actual - m.left
	if drift != 0 {
		m.log.Warn("vegetable count drifted, resyncing", "tracked", m.left, "actual", actual)
	}
	m.left = actual
	return drift
}

// PurgeInactive removes every vegetable that is not in play.
func (m *Vegetables) PurgeInactive() int {
	return m.reg.RemoveVegetablesIf(func(v *Vegetable) bool {
		return !v.InPlay()
	})
}

// Reset zeroes the count. Entities are cleared through the registry.
func (m *Vegetables) Reset() {
	m.left = 0
}
