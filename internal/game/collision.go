package game

import (
	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
)

// RoundFlags are the orchestrator's re-entrancy guards and collision gates.
// Each guard is cleared only after its sequence has completed.
type RoundFlags struct {
	Active            bool // Timer running, spawns and collisions allowed
	Starting          bool // Round start sequence in progress
	Ending            bool // Round end sequence in progress
	VegetablesDropped bool // Forced drop already ran this round
	CollisionsLive    bool // Cleared during the grace period and forced drop
}

// Resolver detects pairwise interactions and applies their effects. Every
// handler re-checks the exact state it requires, so calling one twice in a
// tick is harmless.
type Resolver struct {
	reg    *Registry
	veg    *Vegetables
	tap    *Tap
	flags  *RoundFlags
	field  core.Bounds
	params map[AnimalKind]AnimalParams
	tapCfg config.TapConfig
	cue    func(Cue)
	say    func(string)
}

func (r *Resolver) live() bool {
	return r.flags.Active && r.flags.CollisionsLive
}

// DropletHit checks for a droplet touching the animal. A hit releases the
// cargo where it is, nudged back onto the field, and scares the animal away.
func (r *Resolver) DropletHit(a *Animal) bool {
	if !r.live() {
		return false
	}
	switch a.State {
	case StateSeeking, StateGoingToTap, StateCarrying:
	default:
		return false
	}

	radius := r.params[a.Kind].HitRadius
	for _, d := range r.reg.Droplets() {
		if d.Dead || d.Pos.Dist(a.Pos) > radius {
			continue
		}
		d.Dead = true
		r.veg.ReleaseCargo(a, r.field)
		a.scared()
		r.cue(CueHit)
		return true
	}
	return false
}

// Grab lets a seeking animal pick up an in-play vegetable within reach. The
// current target wins over other vegetables in range.
func (r *Resolver) Grab(a *Animal) bool {
	if !r.live() || r.flags.VegetablesDropped || a.State != StateSeeking {
		return false
	}
	p := r.params[a.Kind]
	if len(a.Cargo) >= p.Capacity {
		return false
	}

	var pick *Vegetable
	for _, v := range r.reg.Vegetables() {
		if !v.InPlay() || v.Pos.Dist(a.Pos) > p.GrabRadius {
			continue
		}
		if v.ID == a.Target {
			pick = v
			break
		}
		if pick == nil {
			pick = v
		}
	}
	if pick == nil || !r.veg.Grab(pick, a) {
		return false
	}

	r.cue(CueGrab)
	a.Target = 0
	if len(a.Cargo) >= p.Capacity || r.veg.Left() == 0 {
		a.State = StateCarrying
	}
	return true
}

// SquirrelAtTap shuts the water off when a squirrel reaches an open tap.
// A squirrel that finds it already closed goes back to seeking.
func (r *Resolver) SquirrelAtTap(a *Animal) bool {
	if !r.live() || a.State != StateGoingToTap {
		return false
	}
	if a.Pos.Dist(r.tap.Pos) > r.tapCfg.ArrivalRadius {
		return false
	}
	if !r.tap.TurnOffBySquirrel(a) {
		a.State = StateSeeking
		return false
	}
	a.scared()
	a.TapCooldown = r.params[a.Kind].TapCooldownTicks
	r.cue(CueTapToggle)
	r.say("A squirrel turned off the water!")
	return true
}

// GardenerAtTap opens the tap when the gardener presses the action near it.
func (r *Resolver) GardenerAtTap(g *Gardener, pressed bool) bool {
	if !pressed || !r.flags.Active {
		return false
	}
	if !r.tap.TurnOnByGardener(g, r.tapCfg.PlayerReach) {
		return false
	}
	r.cue(CueTapToggle)
	r.say("Water's back on!")
	return true
}
