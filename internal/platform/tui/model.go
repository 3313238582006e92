package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

// Muter is the part of the audio player the keyboard controls.
type Muter interface {
	ToggleMute() bool
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *game.Session
	board    *Board
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    *InputState
	muter    Muter
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for session. board must be the presenter the
// session was created with.
func NewModel(session *game.Session, board *Board, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		session: session,
		board:   board,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(),
		input:   NewInputState(),
		logger:  log.New(io.Discard),
	}
}

// WithMuter lets the m key toggle sound.
func (m Model) WithMuter(mu Muter) Model {
	m.muter = mu
	return m
}

// WithLogger sets where save and load failures are reported.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Movement, spray and pause are
// buffered for the next frame; the rest act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "m" && m.muter != nil {
		if m.muter.ToggleMute() {
			m.board.Message("Sound off", 0)
		} else {
			m.board.Message("Sound on", 0)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if st := m.session.State(); !m.session.Started() || st.GameOver {
			m.board.Clear()
			m.input.Reset()
			m.session.NewGame()
		}
	case core.ActionSave:
		if err := m.session.SaveGame(game.QuicksaveSlot); err != nil {
			m.report("save", err)
		}
	case core.ActionLoad:
		m.input.Reset()
		if err := m.session.LoadGame(game.QuicksaveSlot); err != nil {
			m.report("load", err)
		}
	default:
		m.input.Press(action)
	}
	return m, nil
}

// report logs a save or load failure. The session has already put a message
// on the board unless there is no store at all.
func (m Model) report(op string, err error) {
	if errors.Is(err, game.ErrNoPersistence) {
		m.board.Message("Saving is not available", 0)
	}
	m.logger.Warn(op+" failed", "err", err)
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := frameInterval(m.config.TickRate)
	result := m.session.Step(dt, m.input.Frame())
	if !result.State.Paused {
		m.board.Advance(dt)
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the field with the board's messages on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	m.drawBoard()
	return RenderScreen(m.screen)
}

// drawBoard writes messages above the bottom fence and the game-over
// summary under the session's own banner.
func (m Model) drawBoard() {
	h := m.screen.Height()
	msgs := m.board.Messages()
	for i, text := range msgs {
		y := h - 1 - len(msgs) + i
		if y <= 1 {
			continue
		}
		m.screen.DrawTextCentered(y, " "+text+" ", core.ColorMessage)
	}

	if sum, ok := m.board.Summary(); ok {
		line := fmt.Sprintf("%s reached round %d", sum.PlayerName, sum.Round)
		if sum.TopScore {
			line += "  New high score!"
		}
		m.screen.DrawTextCentered(h/2+3, " "+line+" ", core.ColorOrange)
	}
}

// IsQuitting returns true once the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run runs model in the terminal until the player quits.
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
