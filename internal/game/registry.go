package game

import (
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// Registry owns every live entity of a session. Iteration order is insertion
// order, which keeps nearest-target tie-breaks and replays stable.
type Registry struct {
	nextID     int
	vegetables []*Vegetable
	squirrels  []*Animal
	raccoons   []*Animal
	droplets   []*Droplet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

func (r *Registry) allocID() int {
	id := r.nextID
	r.nextID++
	return id
}

// AddVegetable creates an in-play vegetable.
func (r *Registry) AddVegetable(pos core.Vec, variety Variety) *Vegetable {
	v := &Vegetable{
		ID:      r.allocID(),
		Pos:     pos,
		Variety: variety,
		Status:  StatusInPlay,
	}
	r.vegetables = append(r.vegetables, v)
	return v
}

// AddAnimal creates a seeking animal of the given kind.
func (r *Registry) AddAnimal(kind AnimalKind, pos core.Vec) *Animal {
	a := &Animal{
		ID:    r.allocID(),
		Kind:  kind,
		Pos:   pos,
		State: StateSeeking,
	}
	if kind == KindRaccoon {
		r.raccoons = append(r.raccoons, a)
	} else {
		r.squirrels = append(r.squirrels, a)
	}
	return a
}

// AddDroplet creates a droplet.
func (r *Registry) AddDroplet(pos, vel core.Vec, life time.Duration) *Droplet {
	d := &Droplet{
		ID:   r.allocID(),
		Pos:  pos,
		Vel:  vel,
		Life: life,
	}
	r.droplets = append(r.droplets, d)
	return d
}

// Vegetable returns the vegetable with the given ID, or nil.
func (r *Registry) Vegetable(id int) *Vegetable {
	for _, v := range r.vegetables {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Vegetables returns all vegetables regardless of status.
func (r *Registry) Vegetables() []*Vegetable {
	return r.vegetables
}

// Squirrels returns live squirrels.
func (r *Registry) Squirrels() []*Animal {
	return r.squirrels
}

// Raccoons returns live raccoons.
func (r *Registry) Raccoons() []*Animal {
	return r.raccoons
}

// Animals returns squirrels followed by raccoons in a new slice.
func (r *Registry) Animals() []*Animal {
	all := make([]*Animal, 0, len(r.squirrels)+len(r.raccoons))
	all = append(all, r.squirrels...)
	return append(all, r.raccoons...)
}

// Droplets returns live droplets.
func (r *Registry) Droplets() []*Droplet {
	return r.droplets
}

// Compact drops removed animals, dead droplets and escaped vegetables.
func (r *Registry) Compact() {
	r.squirrels = compactAnimals(r.squirrels)
	r.raccoons = compactAnimals(r.raccoons)

	droplets := r.droplets[:0]
	for _, d := range r.droplets {
		if !d.Dead {
			droplets = append(droplets, d)
		}
	}
	clear(r.droplets[len(droplets):])
	r.droplets = droplets

	vegetables := r.vegetables[:0]
	for _, v := range r.vegetables {
		if v.Status != StatusEscaped {
			vegetables = append(vegetables, v)
		}
	}
	clear(r.vegetables[len(vegetables):])
	r.vegetables = vegetables
}

func compactAnimals(animals []*Animal) []*Animal {
	kept := animals[:0]
	for _, a := range animals {
		if !a.Removed {
			kept = append(kept, a)
		}
	}
	clear(animals[len(kept):])
	return kept
}

// RemoveVegetablesIf drops every vegetable for which drop returns true.
func (r *Registry) RemoveVegetablesIf(drop func(*Vegetable) bool) int {
	kept := r.vegetables[:0]
	removed := 0
	for _, v := range r.vegetables {
		if drop(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	clear(r.vegetables[len(kept):])
	r.vegetables = kept
	return removed
}

// ClearAnimals removes every animal.
func (r *Registry) ClearAnimals() {
	r.squirrels = nil
	r.raccoons = nil
}

// ClearDroplets removes every droplet.
func (r *Registry) ClearDroplets() {
	r.droplets = nil
}

// Clear removes everything and restarts ID allocation.
func (r *Registry) Clear() {
	r.vegetables = nil
	r.ClearAnimals()
	r.ClearDroplets()
	r.nextID = 1
}
