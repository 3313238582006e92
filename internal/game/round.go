package game

import (
	"fmt"
	"time"
)

// Phase is the round orchestrator's state.
type Phase int

const (
	PhaseIdle     Phase = iota // No game running
	PhaseStarting              // Intro and grace period, collisions suppressed
	PhaseActive                // Timer running, spawns and collisions live
	PhaseEnding                // Forced drop, scoring, waiting for the next round
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStarting:
		return "starting"
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Orchestrator holds round phase bookkeeping. The transitions themselves are
// Session methods because they touch every collection the session owns.
type Orchestrator struct {
	phase       Phase
	flags       RoundFlags
	endedByTime bool
	scored      bool // Current round's points are already in the score
	lastDelta   int  // Points awarded by the last scored round
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Flags returns a copy of the round guards.
func (o *Orchestrator) Flags() RoundFlags {
	return o.flags
}

func (o *Orchestrator) reset() {
	*o = Orchestrator{}
}

// startRound begins round n. Survivors of the previous round stay in play;
// a fresh garden is planted only when fresh is set.
func (s *Session) startRound(n int, fresh bool) {
	if s.orch.flags.Starting {
		s.log.Debug("round start already in progress, ignoring", "round", n)
		return
	}
	s.orch.flags = RoundFlags{Starting: true}
	s.orch.phase = PhaseStarting
	s.orch.endedByTime = false
	s.orch.scored = false
	s.round = n

	s.reg.ClearAnimals()
	s.reg.ClearDroplets()
	if fresh {
		s.reg.RemoveVegetablesIf(func(*Vegetable) bool { return true })
		s.veg.Reset()
		s.veg.SpawnInitial(s.field.Center(), s.cfg.Vegetables.InitialCount, s.cfg.Vegetables.RingRadius)
	} else {
		s.veg.PurgeInactive()
	}
	s.veg.Recount()

	s.tap.Reset()
	s.timer.Reset(s.cfg.Round.Seconds)
	s.spawnClock = [2]time.Duration{}

	s.say(fmt.Sprintf("Round %d", n))
	if n == 1 {
		s.say("Defend your vegetables!")
	}
	s.cue(CueRoundStart)
	s.log.Debug("round starting", "round", n, "vegetables", s.veg.Left())

	s.sched.Schedule(EventActivateRound, n, s.cfg.Round.Grace())
}

// activateRound ends the grace period.
func (s *Session) activateRound() {
	if s.orch.phase != PhaseStarting {
		s.log.Debug("activate ignored", "phase", s.orch.phase)
		return
	}
	s.orch.phase = PhaseActive
	s.orch.flags = RoundFlags{Active: true, CollisionsLive: true}
	s.say("Go!")
}

// checkRoundEnd inspects aggregate state once per tick.
func (s *Session) checkRoundEnd() {
	if s.orch.phase != PhaseActive {
		return
	}
	switch {
	case s.timer.Expired():
		s.endRound(true)
	case s.veg.Left() == 0 && s.veg.CountCarried() == 0:
		s.endRound(false)
	}
}

// endRound stops the round. Only the first call per round has any effect.
func (s *Session) endRound(byTime bool) {
	if s.orch.flags.Ending || s.orch.phase != PhaseActive {
		s.log.Debug("round end already in progress, ignoring", "round", s.round)
		return
	}
	s.orch.flags.Ending = true
	s.orch.flags.Active = false
	s.orch.phase = PhaseEnding
	s.orch.endedByTime = byTime

	carrying := false
	for _, a := range s.reg.Animals() {
		a.Stop()
		if a.HasCargo() {
			carrying = true
		}
	}
	s.reg.ClearDroplets()
	s.cue(CueRoundEnd)

	if !carrying {
		s.finishRound()
		return
	}
	s.forceDrop()
	s.sched.Schedule(EventFinishRound, s.round, s.cfg.Round.Settle())
}

// forceDrop makes every animal let go of its cargo. Vegetables released
// inside the field return to play at the animal's position; anything outside
// is lost. Runs at most once per round.
func (s *Session) forceDrop() int {
	if s.orch.flags.VegetablesDropped {
		s.log.Debug("forced drop already ran", "round", s.round)
		return 0
	}
	s.orch.flags.VegetablesDropped = true
	s.orch.flags.CollisionsLive = false

	dropped := 0
	for _, a := range s.reg.Animals() {
		if !a.HasCargo() {
			continue
		}
		inside := s.field.Contains(a.Pos)
		for _, id := range a.Cargo {
			v := s.reg.Vegetable(id)
			if inside {
				if s.veg.Drop(v, s.field.Clamp(a.Pos)) {
					dropped++
				}
			} else {
				s.veg.Lose(v)
			}
		}
		a.Cargo = nil
	}
	s.veg.Recount()
	return dropped
}

// finishRound scores the round and either queues the next one or ends the game.
func (s *Session) finishRound() {
	if s.orch.phase != PhaseEnding {
		s.log.Debug("finish ignored", "phase", s.orch.phase)
		return
	}
	s.veg.Recount()
	delta := s.veg.CountInPlay()
	remaining := delta + s.veg.CountCarried()
	s.score += delta
	s.orch.lastDelta = delta
	s.orch.scored = true

	s.say(fmt.Sprintf("Round %d complete! +%d", s.round, delta))
	s.log.Info("round complete", "round", s.round, "points", delta, "score", s.score, "by_time", s.orch.endedByTime)

	if delta == 0 && remaining == 0 && !s.orch.endedByTime {
		s.orch.flags.Ending = false
		s.gameOver()
		return
	}

	s.autosave()
	s.sched.Schedule(EventStartRound, s.round+1, s.cfg.Round.NextRoundDelay())
	s.orch.flags.Ending = false
}

// gameOver finishes the session, retires the autosave and submits the score.
func (s *Session) gameOver() {
	s.orch.phase = PhaseGameOver
	s.orch.flags = RoundFlags{}

	summary := Summary{Score: s.score, Round: s.round, PlayerName: s.playerName}
	if s.store != nil {
		if err := s.store.SaveGameState(SaveState{Cleared: true, SavedAt: time.Now()}, AutosaveSlot); err != nil {
			s.log.Warn("failed to clear autosave", "err", err)
		}
		if s.score > 0 {
			top, err := s.store.IsTopScore(s.score)
			if err != nil {
				s.log.Warn("failed to check high scores", "err", err)
			}
			if top {
				if err := s.store.SaveHighScore(s.score, s.round, s.playerName); err != nil {
					s.log.Warn("failed to save high score", "err", err)
					s.say("Could not save high score")
				} else {
					summary.TopScore = true
				}
			}
		}
	}

	s.cue(CueGameOver)
	s.say("Game Over")
	s.log.Info("game over", "score", s.score, "round", s.round)
	s.presenter.GameOver(summary)
}

// handleEvent applies a due scheduler event if it still belongs to this game
// and round.
func (s *Session) handleEvent(ev Event) {
	if !s.sched.Live(ev) {
		s.log.Debug("stale event dropped", "event", ev.Kind, "round", ev.Round)
		return
	}
	switch ev.Kind {
	case EventActivateRound:
		if ev.Round == s.round {
			s.activateRound()
		}
	case EventFinishRound:
		if ev.Round == s.round {
			s.finishRound()
		}
	case EventStartRound:
		if ev.Round == s.round+1 && s.orch.phase == PhaseEnding {
			s.startRound(ev.Round, false)
		}
	}
}
