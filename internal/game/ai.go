package game

import (
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// updateAnimal runs one tick of an animal's state machine. Projectile hits
// are resolved before movement so a hit carrier drops its cargo where it was.
func (s *Session) updateAnimal(a *Animal, dt time.Duration) {
	if a.Removed || a.State == StateStopped {
		return
	}
	if a.TapCooldown > 0 {
		a.TapCooldown--
	}

	s.resolver.DropletHit(a)

	switch a.State {
	case StateSeeking:
		s.seek(a, dt)
	case StateGoingToTap:
		s.goToTap(a, dt)
	case StateCarrying:
		s.carry(a, dt)
	case StateFleeing:
		s.flee(a, dt)
	}
}

func (s *Session) seek(a *Animal, dt time.Duration) {
	target := s.veg.Nearest(a.Pos)
	if target == nil {
		a.Target = 0
		if a.HasCargo() {
			a.State = StateCarrying
			s.carry(a, dt)
			return
		}
		// Nothing left to steal
		a.scared()
		s.flee(a, dt)
		return
	}
	a.Target = target.ID

	if s.wantsTap(a) {
		a.State = StateGoingToTap
		a.Target = 0
		s.goToTap(a, dt)
		return
	}

	s.moveToward(a, target.Pos, a.SeekSpeed, dt)
	s.dragCargo(a)
	s.resolver.Grab(a)

	// A raccoon still shopping for a second vegetable can wander off the field
	if a.State == StateSeeking && a.HasCargo() && !s.escapeBounds().Contains(a.Pos) {
		s.escape(a)
	}
}

// wantsTap rolls the per-tick chance for a squirrel to go for the tap.
func (s *Session) wantsTap(a *Animal) bool {
	if a.Kind != KindSquirrel || a.HasCargo() || a.TapCooldown > 0 || !s.tap.IsOn() || !s.orch.flags.Active {
		return false
	}
	chance := s.diff.TapSeekChance(s.round)
	if chance <= 0 {
		return false
	}
	return s.rng.Float64() < chance
}

func (s *Session) goToTap(a *Animal, dt time.Duration) {
	if !s.tap.IsOn() {
		a.State = StateSeeking
		return
	}
	s.moveToward(a, s.tap.Pos, a.SeekSpeed, dt)
	s.resolver.SquirrelAtTap(a)
}

func (s *Session) carry(a *Animal, dt time.Duration) {
	s.moveAway(a, a.CarrySpeed, dt)
	s.dragCargo(a)
	if !s.escapeBounds().Contains(a.Pos) {
		s.escape(a)
	}
}

func (s *Session) flee(a *Animal, dt time.Duration) {
	s.moveAway(a, a.FleeSpeed, dt)
	if !s.field.Inset(-s.cfg.Field.FleeMargin).Contains(a.Pos) {
		a.Removed = true
	}
}

// escape destroys the animal together with its cargo.
func (s *Session) escape(a *Animal) {
	for _, id := range a.Cargo {
		s.veg.Escape(s.reg.Vegetable(id))
	}
	s.log.Debug("animal escaped", "kind", a.Kind, "id", a.ID, "cargo", len(a.Cargo))
	a.Cargo = nil
	a.Removed = true
	s.cue(CueEscape)
}

func (s *Session) escapeBounds() core.Bounds {
	return s.field.Inset(-s.cfg.Field.EscapeMargin)
}

// moveToward steps toward dst without overshooting it.
func (s *Session) moveToward(a *Animal, dst core.Vec, speed float64, dt time.Duration) {
	delta := dst.Sub(a.Pos)
	dist := delta.Len()
	if dist == 0 {
		a.Vel = core.Vec{}
		return
	}
	dir := delta.Scale(1 / dist)
	a.Vel = dir.Scale(speed)
	step := speed * dt.Seconds()
	if step >= dist {
		a.Pos = dst
		return
	}
	a.Pos = a.Pos.Add(dir.Scale(step))
}

// moveAway pushes the animal radially out from the field center.
func (s *Session) moveAway(a *Animal, speed float64, dt time.Duration) {
	dir := a.Pos.Sub(s.field.Center()).Norm()
	if dir.Len() == 0 {
		dir = core.V(1, 0)
	}
	a.Vel = dir.Scale(speed)
	a.Pos = a.Pos.Add(a.Vel.Scale(dt.Seconds()))
}

// dragCargo keeps carried vegetables on the animal.
func (s *Session) dragCargo(a *Animal) {
	for _, id := range a.Cargo {
		if v := s.reg.Vegetable(id); v != nil {
			v.Pos = a.Pos
		}
	}
}
