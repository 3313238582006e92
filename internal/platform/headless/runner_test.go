package headless

import (
	"testing"
	"time"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

func newSession(cfg config.GameConfig, seed int64) (*game.Session, *Recorder) {
	rec := NewRecorder(nil)
	return game.New(cfg, game.WithPresenter(rec), game.WithSeed(seed)), rec
}

func quickRounds() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Squirrel.FirstRound = 99
	cfg.Raccoon.FirstRound = 99
	cfg.Round.Seconds = 2
	cfg.Round.GraceMs = 100
	cfg.Round.NextRoundDelayMs = 100
	return cfg
}

func TestRunStopsAtDuration(t *testing.T) {
	s, rec := newSession(quickRounds(), 1)
	res := Run(s, rec, Options{FPS: 50, Duration: time.Second})

	if res.Frames != 50 {
		t.Errorf("Frames = %d, expected 50", res.Frames)
	}
	if res.State.Round != 1 || res.State.GameOver {
		t.Errorf("State = %+v, expected round 1 in progress", res.State)
	}
}

func TestRunRecordsRoundHandover(t *testing.T) {
	s, rec := newSession(quickRounds(), 1)
	res := Run(s, rec, Options{FPS: 60, Duration: 3 * time.Second})

	if res.State.Round != 2 {
		t.Fatalf("Round = %d, expected 2", res.State.Round)
	}
	if len(res.Rounds) != 1 || res.Rounds[0] != (RoundResult{Round: 1, Score: 5}) {
		t.Errorf("Rounds = %+v, expected round 1 scoring 5", res.Rounds)
	}
}

func TestUnattendedGardenIsLost(t *testing.T) {
	s, rec := newSession(config.DefaultGameConfig(), 7)
	res := Run(s, rec, Options{FPS: 60, Duration: 30 * time.Minute})

	if !res.State.GameOver {
		t.Fatalf("State = %+v, expected game over", res.State)
	}
	if res.Summary == nil {
		t.Fatal("Summary should be set after game over")
	}
	if res.Elapsed >= 30*time.Minute {
		t.Error("run should stop at game over")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Round.Seconds = 10

	a, recA := newSession(cfg, 42)
	b, recB := newSession(cfg, 42)
	first := Run(a, recA, Options{FPS: 60, Duration: 40 * time.Second, Autopilot: true})
	second := Run(b, recB, Options{FPS: 60, Duration: 40 * time.Second, Autopilot: true})

	if first.Hash != second.Hash {
		t.Errorf("hash mismatch: %d vs %d", first.Hash, second.Hash)
	}
	if first.State != second.State {
		t.Errorf("state mismatch: %+v vs %+v", first.State, second.State)
	}
}

func TestAutopilotIdleWithoutThreats(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewAutopilot(cfg)

	s, _ := newSession(cfg, 1)
	s.NewGame()
	// Water is on at the start, with nothing to chase
	if in := p.Next(s); in != (core.Input{}) {
		t.Errorf("Next() = %+v, expected idle input", in)
	}
}

func TestSteerNormalizes(t *testing.T) {
	in := steer(core.V(30, 40), 1)
	if in.MoveX != 0.6 || in.MoveY != 0.8 {
		t.Errorf("steer() = (%v, %v), expected (0.6, 0.8)", in.MoveX, in.MoveY)
	}
}
