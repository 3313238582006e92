package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

func TestBoardMessagesExpire(t *testing.T) {
	b := NewBoard()
	b.Message("short", time.Second)
	b.Message("long", 3*time.Second)

	b.Advance(2 * time.Second)
	msgs := b.Messages()
	if len(msgs) != 1 || msgs[0] != "long" {
		t.Errorf("Messages() = %v, expected [long]", msgs)
	}

	b.Advance(time.Second)
	if len(b.Messages()) != 0 {
		t.Errorf("Messages() = %v, expected none", b.Messages())
	}
}

func TestBoardKeepsNewestMessages(t *testing.T) {
	b := NewBoard()
	for _, text := range []string{"a", "b", "c", "d"} {
		b.Message(text, time.Second)
	}
	msgs := b.Messages()
	if len(msgs) != maxMessages || msgs[0] != "b" || msgs[maxMessages-1] != "d" {
		t.Errorf("Messages() = %v, expected [b c d]", msgs)
	}
}

func TestBoardZeroDurationGetsDefault(t *testing.T) {
	b := NewBoard()
	b.Message("hello", 0)
	b.Advance(time.Second)
	if len(b.Messages()) != 1 {
		t.Error("a message without a duration should stay up for a while")
	}
}

func TestBoardSummaryClearedByNewGame(t *testing.T) {
	b := NewBoard()
	b.GameOver(game.Summary{Score: 7, Round: 3})
	b.StateChanged(core.GameState{GameOver: true, Score: 7})

	if sum, ok := b.Summary(); !ok || sum.Score != 7 {
		t.Errorf("Summary() = %+v, %v, expected score 7", sum, ok)
	}

	b.StateChanged(core.GameState{Round: 1})
	if _, ok := b.Summary(); ok {
		t.Error("summary should clear once a new game publishes")
	}
	if b.State().Round != 1 {
		t.Errorf("State().Round = %d, expected 1", b.State().Round)
	}
}
