package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

// maxMessages caps how many announcements are shown at once.
const maxMessages = 3

type message struct {
	text string
	left time.Duration
}

// Board collects what the session reports through game.Presenter. Messages
// age with simulation time, so a paused game keeps its banner on screen.
type Board struct {
	mu       sync.Mutex
	state    core.GameState
	messages []message
	summary  *game.Summary
}

var _ game.Presenter = (*Board)(nil)

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// StateChanged implements game.Presenter.
func (b *Board) StateChanged(state core.GameState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state
	if !state.GameOver {
		b.summary = nil
	}
}

// Message implements game.Presenter.
func (b *Board) Message(text string, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d <= 0 {
		d = 2 * time.Second
	}
	b.messages = append(b.messages, message{text: text, left: d})
	if len(b.messages) > maxMessages {
		b.messages = b.messages[len(b.messages)-maxMessages:]
	}
}

// GameOver implements game.Presenter.
func (b *Board) GameOver(summary game.Summary) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.summary = &summary
}

// Advance ages messages by dt and drops expired ones.
func (b *Board) Advance(dt time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.messages[:0]
	for _, m := range b.messages {
		m.left -= dt
		if m.left > 0 {
			kept = append(kept, m)
		}
	}
	b.messages = kept
}

// Messages returns the visible messages, oldest first.
func (b *Board) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.messages))
	for i, m := range b.messages {
		out[i] = m.text
	}
	return out
}

// State returns the last published state.
func (b *Board) State() core.GameState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Summary returns the final result once the game is over.
func (b *Board) Summary() (game.Summary, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.summary == nil {
		return game.Summary{}, false
	}
	return *b.summary, true
}

// Clear drops every message and the summary.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
	b.summary = nil
}
