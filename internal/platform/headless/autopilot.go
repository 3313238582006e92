package headless

import (
	"math"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

// Autopilot plays the gardener: it reopens the tap when it is closed and
// otherwise chases the closest active animal, spraying once in range.
type Autopilot struct {
	tap     core.Vec
	reach   float64
	spray   float64 // Distance at which spraying starts
	pressed bool
}

// NewAutopilot creates an autopilot for cfg.
func NewAutopilot(cfg config.GameConfig) *Autopilot {
	life := cfg.Gardener.DropletLife().Seconds()
	return &Autopilot{
		tap:   core.V(cfg.Tap.X, cfg.Tap.Y),
		reach: cfg.Tap.PlayerReach,
		spray: cfg.Gardener.DropletSpeed * life * 0.8,
	}
}

// Next returns the input for the next frame.
func (p *Autopilot) Next(s *game.Session) core.Input {
	g := s.Gardener().Pos

	if !s.WaterOn() {
		d := p.tap.Sub(g)
		if d.Len() > p.reach*0.5 {
			return steer(d, 1)
		}
		// Press on alternate frames so every press is a fresh one
		p.pressed = !p.pressed
		return core.Input{SprayJustPressed: p.pressed}
	}
	p.pressed = false

	target, ok := nearestThreat(s.Registry(), g)
	if !ok {
		return core.Input{}
	}
	d := target.Sub(g)
	if d.Len() > p.spray {
		return steer(d, 1)
	}
	// Creep so the hose keeps facing the target
	in := steer(d, 0.05)
	in.SprayHeld = true
	return in
}

func steer(d core.Vec, throttle float64) core.Input {
	n := d.Norm().Scale(throttle)
	return core.Input{MoveX: n.X, MoveY: n.Y}
}

// nearestThreat returns the position of the closest animal that can still
// be hit.
func nearestThreat(reg *game.Registry, from core.Vec) (core.Vec, bool) {
	best, found := math.Inf(1), false
	var pos core.Vec
	for _, a := range reg.Animals() {
		switch a.State {
		case game.StateSeeking, game.StateCarrying, game.StateGoingToTap:
		default:
			continue
		}
		if d := a.Pos.Dist(from); d < best {
			best, pos, found = d, a.Pos, true
		}
	}
	return pos, found
}
