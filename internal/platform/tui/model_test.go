package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

type fakeMuter struct{ muted bool }

func (f *fakeMuter) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func newTestModel(t *testing.T) (Model, *game.Session, *Board) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Squirrel.FirstRound = 99
	cfg.Raccoon.FirstRound = 99

	board := NewBoard()
	session := game.New(cfg, game.WithPresenter(board), game.WithSeed(1))
	m := NewModel(session, board, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return m, session, board
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func hasMessage(b *Board, text string) bool {
	for _, m := range b.Messages() {
		if m == text {
			return true
		}
	}
	return false
}

func TestModelStartsGameOnRestart(t *testing.T) {
	m, session, board := newTestModel(t)
	if session.Started() {
		t.Fatal("session should be idle before the first key")
	}

	m, _ = send(t, m, runeKey('r'))
	if !session.Started() {
		t.Fatal("r should start a game")
	}
	if board.State().Round != 1 {
		t.Errorf("board round = %d, expected 1", board.State().Round)
	}
	if !hasMessage(board, "Round 1") {
		t.Errorf("messages = %v, expected a round banner", board.Messages())
	}

	// A second r mid-game is ignored
	m, _ = send(t, m, TickMsg{})
	before := session.Gardener().Pos
	_, _ = send(t, m, runeKey('r'))
	if session.Gardener().Pos != before || board.State().Round != 1 {
		t.Error("r during a running game should not restart it")
	}
}

func TestModelMovesGardener(t *testing.T) {
	m, session, _ := newTestModel(t)
	m, _ = send(t, m, runeKey('r'))
	start := session.Gardener().Pos

	m, _ = send(t, m, runeKey('d'))
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if session.Gardener().Pos.X <= start.X {
		t.Errorf("gardener X = %v, expected to move right of %v", session.Gardener().Pos.X, start.X)
	}
}

func TestModelPause(t *testing.T) {
	m, _, board := newTestModel(t)
	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, runeKey('p'))
	_, _ = send(t, m, TickMsg{})

	if !board.State().Paused {
		t.Error("p should pause the game on the next frame")
	}
	if !hasMessage(board, "Paused") {
		t.Errorf("messages = %v, expected Paused", board.Messages())
	}
}

func TestModelSaveWithoutStore(t *testing.T) {
	m, _, board := newTestModel(t)
	m, _ = send(t, m, runeKey('r'))
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !hasMessage(board, "Saving is not available") {
		t.Errorf("messages = %v, expected a no-store notice", board.Messages())
	}
}

func TestModelMute(t *testing.T) {
	m, _, board := newTestModel(t)
	mu := &fakeMuter{}
	m = m.WithMuter(mu)

	_, _ = send(t, m, runeKey('m'))
	if !mu.muted || !hasMessage(board, "Sound off") {
		t.Errorf("muted = %v, messages = %v", mu.muted, board.Messages())
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "GARDEN DEFENSE") {
		t.Error("idle view should show the title")
	}

	m, _ = send(t, m, runeKey('r'))
	if !strings.Contains(m.View(), "Score:") {
		t.Error("running view should show the status line")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]game.HighScore{{Score: 40, Round: 5, PlayerName: "mira"}})
	if len(rows) != 1 || rows[0][0] != "#1" || rows[0][1] != "mira" || rows[0][2] != "40" {
		t.Errorf("ScoreRows() = %v", rows)
	}
}

func TestScoreboardWithoutSource(t *testing.T) {
	sb := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(sb.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}
