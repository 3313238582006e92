package game

import (
	"errors"
	"time"

	"github.com/vovakirdan/garden-defense/internal/core"
)

var (
	// ErrInvalidSave is returned when a stored game cannot be resumed.
	// The session falls back to a fresh game.
	ErrInvalidSave = errors.New("game: invalid save state")
	// ErrNoPersistence is returned by save/load on a session without a store.
	ErrNoPersistence = errors.New("game: no persistence configured")
	// ErrNoSave is returned when the requested save slot is empty.
	ErrNoSave = errors.New("game: no saved game")
	// ErrCannotSave is returned when the session has no resumable state,
	// before the first round, after game over, or while a round is being
	// scored.
	ErrCannotSave = errors.New("game: nothing to save right now")
)

// AutosaveSlot is the save name written at the end of every round.
const AutosaveSlot = "autosave"

// QuicksaveSlot is the save name used by the in-game save/load keys.
const QuicksaveSlot = "quicksave"

// Persistence stores save states and high scores.
type Persistence interface {
	SaveGameState(state SaveState, name string) error
	// LoadGameState returns nil, nil when no save exists under name.
	LoadGameState(name string) (*SaveState, error)
	ListSaves() ([]SaveSummary, error)
	DeleteSave(name string) error

	SaveHighScore(score, round int, playerName string) error
	TopHighScores(n int) ([]HighScore, error)
	IsTopScore(score int) (bool, error)
}

// Presenter receives state changes and transient messages.
type Presenter interface {
	StateChanged(state core.GameState)
	Message(text string, d time.Duration)
	GameOver(summary Summary)
}

// Audio plays sound cues. Implementations must not block.
type Audio interface {
	Play(cue Cue)
}

// Cue identifies a sound effect.
type Cue int

const (
	CueSpray Cue = iota
	CueHit
	CueGrab
	CueEscape
	CueRoundStart
	CueRoundEnd
	CueTapToggle
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueSpray:
		return "spray"
	case CueHit:
		return "hit"
	case CueGrab:
		return "grab"
	case CueEscape:
		return "escape"
	case CueRoundStart:
		return "round_start"
	case CueRoundEnd:
		return "round_end"
	case CueTapToggle:
		return "tap_toggle"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Summary describes a finished game.
type Summary struct {
	Score      int
	Round      int
	PlayerName string
	TopScore   bool // Score made the leaderboard
}

// SaveState is the persisted layout of a game in progress.
type SaveState struct {
	Score          int              `yaml:"score"`
	Round          int              `yaml:"round"`
	TimeLeft       int              `yaml:"time_left"`
	VegetablesLeft int              `yaml:"vegetables_left"`
	GameStarted    bool             `yaml:"game_started"`
	RoundActive    bool             `yaml:"round_active"`
	Vegetables     []SavedVegetable `yaml:"vegetables"`
	GardenerX      float64          `yaml:"gardener_x"`
	GardenerY      float64          `yaml:"gardener_y"`
	GardenerAngle  float64          `yaml:"gardener_angle"`
	WaterEnabled   bool             `yaml:"water_enabled"`
	Cleared        bool             `yaml:"cleared"` // Slot was retired at game over
	SavedAt        time.Time        `yaml:"saved_at"`
}

// SavedVegetable is one vegetable in a save state.
type SavedVegetable struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Variety int     `yaml:"variety"`
	InPlay  bool    `yaml:"in_play"`
}

// Validate reports why a save state cannot be resumed.
func (s *SaveState) Validate() error {
	switch {
	case s == nil:
		return ErrNoSave
	case s.Cleared:
		return errors.Join(ErrInvalidSave, errors.New("slot was cleared"))
	case s.Round < 1:
		return errors.Join(ErrInvalidSave, errors.New("round below 1"))
	case s.Score < 0, s.TimeLeft < 0, s.VegetablesLeft < 0:
		return errors.Join(ErrInvalidSave, errors.New("negative field"))
	}
	return nil
}

// SaveSummary describes a stored save without its payload.
type SaveSummary struct {
	Name     string
	Score    int
	Round    int
	TimeLeft int
	SavedAt  time.Time
}

// HighScore is a leaderboard entry.
type HighScore struct {
	Score      int
	Round      int
	PlayerName string
	CreatedAt  time.Time
}

type noopPresenter struct{}

func (noopPresenter) StateChanged(core.GameState)  {}
func (noopPresenter) Message(string, time.Duration) {}
func (noopPresenter) GameOver(Summary)              {}

type noopAudio struct{}

func (noopAudio) Play(Cue) {}
