package game

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
)

func TestSaveWithoutStore(t *testing.T) {
	s := New(quietConfig())
	s.NewGame()

	if err := s.SaveGame(QuicksaveSlot); !errors.Is(err, ErrNoPersistence) {
		t.Errorf("SaveGame() error = %v, expected ErrNoPersistence", err)
	}
	if err := s.LoadGame(QuicksaveSlot); !errors.Is(err, ErrNoPersistence) {
		t.Errorf("LoadGame() error = %v, expected ErrNoPersistence", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	f := activeFixture(t)
	vegs := f.s.reg.Vegetables()
	sq := f.s.spawnAnimal(KindSquirrel, f.s.outward(vegs[0].Pos, 10))
	f.s.Step(frame, core.Input{})
	if !sq.HasCargo() {
		t.Fatal("setup failed: squirrel should carry a vegetable")
	}
	f.s.score = 17
	f.s.timer.Set(42)
	f.s.gardener.Pos = core.V(123, 456)

	if err := f.s.SaveGame(QuicksaveSlot); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if !f.rec.said("Game saved") {
		t.Error("expected save confirmation")
	}

	loaded := New(quietConfig(), WithPersistence(f.store))
	if err := loaded.LoadGame(QuicksaveSlot); err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	st := loaded.State()
	if st.Score != 17 || st.Round != 1 || st.TimeLeft != 42 {
		t.Errorf("State() = %+v, expected score 17, round 1, 42s", st)
	}
	// The carried vegetable is not restored
	if st.VegetablesLeft != 4 || len(loaded.reg.Vegetables()) != 4 {
		t.Errorf("VegetablesLeft = %d, expected the 4 in play", st.VegetablesLeft)
	}
	if loaded.Gardener().Pos != core.V(123, 456) {
		t.Errorf("gardener at %v, expected (123, 456)", loaded.Gardener().Pos)
	}
	if loaded.Phase() != PhaseStarting {
		t.Errorf("Phase() = %v, a loaded round restarts with its grace period", loaded.Phase())
	}
	checkCount(t, loaded)
}

func TestLoadMissingSave(t *testing.T) {
	f := newFixture(t)
	err := f.s.LoadGame("nothing")
	if !errors.Is(err, ErrNoSave) {
		t.Errorf("LoadGame() error = %v, expected ErrNoSave", err)
	}
	if f.s.Started() {
		t.Error("a missing save must leave the session untouched")
	}
	if !f.rec.said("No saved game found") {
		t.Error("expected a message about the missing save")
	}
}

func TestLoadInvalidSaveFallsBackToNewGame(t *testing.T) {
	tests := []struct {
		name  string
		state SaveState
	}{
		{"cleared", SaveState{Cleared: true, Round: 3}},
		{"round zero", SaveState{Round: 0}},
		{"negative score", SaveState{Round: 2, Score: -1}},
		{"negative time", SaveState{Round: 2, TimeLeft: -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.saves["bad"] = tc.state

			err := f.s.LoadGame("bad")
			if !errors.Is(err, ErrInvalidSave) {
				t.Fatalf("LoadGame() error = %v, expected ErrInvalidSave", err)
			}
			st := f.s.State()
			if st.Round != 1 || st.Score != 0 || st.VegetablesLeft != 5 {
				t.Errorf("State() = %+v, expected new-game defaults", st)
			}
		})
	}
}

func TestLoadStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.loadErr = errDiskFull

	err := f.s.LoadGame(QuicksaveSlot)
	if !errors.Is(err, errDiskFull) {
		t.Errorf("LoadGame() error = %v, expected wrapped store error", err)
	}
	if !f.rec.said("Load failed") {
		t.Error("expected Load failed message")
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	f := activeFixture(t)
	f.store.saveErr = errDiskFull

	err := f.s.SaveGame(QuicksaveSlot)
	if !errors.Is(err, errDiskFull) {
		t.Errorf("SaveGame() error = %v, expected wrapped store error", err)
	}
	if !f.rec.said("Save failed") {
		t.Error("expected Save failed message")
	}

	f.s.Step(time.Second, core.Input{})
	if f.s.Phase() != PhaseActive || f.s.State().TimeLeft != 59 {
		t.Error("session should keep running after a failed save")
	}
}

func TestAutosaveAtRoundEnd(t *testing.T) {
	f := activeFixture(t)
	f.s.endRound(true)

	save, ok := f.store.saves[AutosaveSlot]
	if !ok {
		t.Fatal("expected an autosave at round end")
	}
	if save.Round != 2 || save.Score != 5 || save.TimeLeft != 60 {
		t.Errorf("autosave = round %d score %d time %d, expected the next round", save.Round, save.Score, save.TimeLeft)
	}
	if len(save.Vegetables) != 5 {
		t.Errorf("autosave has %d vegetables, expected 5", len(save.Vegetables))
	}

	resumed := New(quietConfig(), WithPersistence(f.store))
	if err := resumed.LoadGame(AutosaveSlot); err != nil {
		t.Fatalf("LoadGame(autosave) failed: %v", err)
	}
	if st := resumed.State(); st.Round != 2 || st.Score != 5 || st.VegetablesLeft != 5 {
		t.Errorf("resumed State() = %+v, expected round 2 with 5 vegetables", st)
	}
}

func TestHighScoreSubmittedAtGameOver(t *testing.T) {
	f := activeFixture(t)
	f.s.score = 12
	f.s.reg.RemoveVegetablesIf(func(*Vegetable) bool { return true })
	f.s.veg.Recount()

	f.s.Step(frame, core.Input{})

	if f.s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", f.s.Phase())
	}
	if len(f.store.scores) != 1 || f.store.scores[0].Score != 12 || f.store.scores[0].PlayerName != "Player" {
		t.Errorf("scores = %+v, expected one entry of 12 for Player", f.store.scores)
	}
	if len(f.rec.summaries) != 1 || !f.rec.summaries[0].TopScore {
		t.Errorf("summaries = %+v, expected a top score", f.rec.summaries)
	}
}

func TestSaveStateValidate(t *testing.T) {
	var nilState *SaveState
	if err := nilState.Validate(); !errors.Is(err, ErrNoSave) {
		t.Errorf("nil Validate() = %v, expected ErrNoSave", err)
	}
	ok := &SaveState{Round: 1}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadClampsOutOfFieldVegetables(t *testing.T) {
	f := newFixture(t)
	f.store.saves["odd"] = SaveState{
		Round:      1,
		Vegetables: []SavedVegetable{{X: -50, Y: 9000, Variety: 99, InPlay: true}},
	}
	if err := f.s.LoadGame("odd"); err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	v := f.s.reg.Vegetables()[0]
	cfg := config.DefaultGameConfig()
	if v.Pos != core.V(0, cfg.Field.Height) {
		t.Errorf("vegetable at %v, expected clamped into the field", v.Pos)
	}
	if v.Variety != VarietyCarrot {
		t.Errorf("variety = %v, expected unknown varieties mapped to carrot", v.Variety)
	}
}

func TestSaveAfterScoringResumesNextRound(t *testing.T) {
	f := activeFixture(t)
	f.s.endRound(true)
	if f.s.Phase() != PhaseEnding || f.s.State().Score != 5 {
		t.Fatalf("setup failed: phase %v score %d", f.s.Phase(), f.s.State().Score)
	}

	if err := f.s.SaveGame(QuicksaveSlot); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	save := f.store.saves[QuicksaveSlot]
	if save.Round != 2 || save.Score != 5 || save.TimeLeft != 60 || save.RoundActive {
		t.Errorf("save = round %d score %d time %d active %v, expected the start of round 2",
			save.Round, save.Score, save.TimeLeft, save.RoundActive)
	}

	loaded := New(quietConfig(), WithPersistence(f.store))
	if err := loaded.LoadGame(QuicksaveSlot); err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	loaded.Step(loaded.cfg.Round.Grace(), core.Input{})
	for i := 0; i < 60; i++ {
		loaded.Step(time.Second, core.Input{})
	}
	// Round 1's points are counted once, round 2 adds its own five
	if st := loaded.State(); st.Round != 2 || st.Score != 10 {
		t.Errorf("State() = round %d score %d, expected round 2 score 10", st.Round, st.Score)
	}
}

func TestSaveRefusedWhileRoundIsScored(t *testing.T) {
	f := activeFixture(t)
	vegs := f.s.reg.Vegetables()
	sq := f.s.spawnAnimal(KindSquirrel, f.s.outward(vegs[0].Pos, 10))
	f.s.Step(frame, core.Input{})
	if !sq.HasCargo() {
		t.Fatal("setup failed: squirrel should carry a vegetable")
	}

	f.s.endRound(true)
	if f.s.orch.scored {
		t.Fatal("setup failed: a round with a carrier settles before scoring")
	}
	if err := f.s.SaveGame(QuicksaveSlot); !errors.Is(err, ErrCannotSave) {
		t.Errorf("SaveGame() error = %v, expected ErrCannotSave", err)
	}
	if _, ok := f.store.saves[QuicksaveSlot]; ok {
		t.Error("no save should be written before the round is scored")
	}

	f.s.Step(f.s.cfg.Round.Settle(), core.Input{})
	if !f.s.orch.scored {
		t.Fatalf("round should be scored after settling, phase %v", f.s.Phase())
	}
	if err := f.s.SaveGame(QuicksaveSlot); err != nil {
		t.Fatalf("SaveGame() after scoring failed: %v", err)
	}
	if save := f.store.saves[QuicksaveSlot]; save.Round != 2 {
		t.Errorf("save round = %d, expected 2", save.Round)
	}
}

func TestSaveRefusedWithoutResumableGame(t *testing.T) {
	t.Run("before new game", func(t *testing.T) {
		f := newFixture(t)
		if err := f.s.SaveGame(QuicksaveSlot); !errors.Is(err, ErrCannotSave) {
			t.Errorf("SaveGame() error = %v, expected ErrCannotSave", err)
		}
		if len(f.store.saves) != 0 {
			t.Errorf("saves = %v, expected none", f.store.saves)
		}
	})

	t.Run("after game over", func(t *testing.T) {
		f := activeFixture(t)
		f.s.reg.RemoveVegetablesIf(func(*Vegetable) bool { return true })
		f.s.veg.Recount()
		f.s.Step(frame, core.Input{})
		if f.s.Phase() != PhaseGameOver {
			t.Fatalf("Phase() = %v, expected game over", f.s.Phase())
		}

		if err := f.s.SaveGame(QuicksaveSlot); !errors.Is(err, ErrCannotSave) {
			t.Errorf("SaveGame() error = %v, expected ErrCannotSave", err)
		}
		if !f.rec.said("Nothing to save") {
			t.Error("expected a message about the refused save")
		}
		if _, ok := f.store.saves[QuicksaveSlot]; ok {
			t.Error("a finished game must not leave a quicksave")
		}
		err := f.s.LoadGame(QuicksaveSlot)
		if !errors.Is(err, ErrNoSave) {
			t.Errorf("LoadGame() error = %v, expected ErrNoSave", err)
		}
	})
}
