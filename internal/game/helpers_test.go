package game

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
)

const frame = 16 * time.Millisecond

// memStore is an in-memory Persistence.
type memStore struct {
	saves   map[string]SaveState
	scores  []HighScore
	saveErr error
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{saves: make(map[string]SaveState)}
}

func (m *memStore) SaveGameState(state SaveState, name string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves[name] = state
	return nil
}

func (m *memStore) LoadGameState(name string) (*SaveState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	st, ok := m.saves[name]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (m *memStore) ListSaves() ([]SaveSummary, error) {
	var out []SaveSummary
	for name, st := range m.saves {
		out = append(out, SaveSummary{Name: name, Score: st.Score, Round: st.Round, TimeLeft: st.TimeLeft, SavedAt: st.SavedAt})
	}
	return out, nil
}

func (m *memStore) DeleteSave(name string) error {
	delete(m.saves, name)
	return nil
}

func (m *memStore) SaveHighScore(score, round int, playerName string) error {
	m.scores = append(m.scores, HighScore{Score: score, Round: round, PlayerName: playerName, CreatedAt: time.Now()})
	return nil
}

func (m *memStore) TopHighScores(n int) ([]HighScore, error) {
	sorted := append([]HighScore(nil), m.scores...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (m *memStore) IsTopScore(score int) (bool, error) {
	top, _ := m.TopHighScores(10)
	return len(top) < 10 || score > top[len(top)-1].Score, nil
}

var errDiskFull = errors.New("disk full")

// recorder captures presenter and audio traffic.
type recorder struct {
	states    []core.GameState
	messages  []string
	summaries []Summary
	cues      []Cue
}

func (r *recorder) StateChanged(st core.GameState)        { r.states = append(r.states, st) }
func (r *recorder) Message(text string, _ time.Duration) { r.messages = append(r.messages, text) }
func (r *recorder) GameOver(s Summary)                    { r.summaries = append(r.summaries, s) }
func (r *recorder) Play(c Cue)                            { r.cues = append(r.cues, c) }

func (r *recorder) said(text string) bool {
	for _, m := range r.messages {
		if m == text {
			return true
		}
	}
	return false
}

func (r *recorder) played(c Cue) bool {
	for _, got := range r.cues {
		if got == c {
			return true
		}
	}
	return false
}

// quietConfig disables spawning so tests place every animal themselves.
func quietConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Squirrel.FirstRound = 99
	cfg.Raccoon.FirstRound = 99
	return cfg
}

type fixture struct {
	s     *Session
	store *memStore
	rec   *recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := newMemStore()
	rec := &recorder{}
	s := New(quietConfig(), WithSeed(42), WithPersistence(store), WithPresenter(rec), WithAudio(rec))
	return fixture{s: s, store: store, rec: rec}
}

// activeFixture returns a session in round 1 with the grace period over.
func activeFixture(t *testing.T) fixture {
	t.Helper()
	f := newFixture(t)
	f.s.NewGame()
	f.s.Step(f.s.cfg.Round.Grace(), core.Input{})
	if f.s.Phase() != PhaseActive {
		t.Fatalf("Phase() = %v after grace, expected active", f.s.Phase())
	}
	return f
}

// outward returns a point dist units further from the field center than p.
func (s *Session) outward(p core.Vec, dist float64) core.Vec {
	return p.Add(p.Sub(s.field.Center()).Norm().Scale(dist))
}

func checkCount(t *testing.T, s *Session) {
	t.Helper()
	if s.veg.Left() != s.veg.CountInPlay() {
		t.Fatalf("vegetablesLeft = %d, but %d vegetables are in play", s.veg.Left(), s.veg.CountInPlay())
	}
}
