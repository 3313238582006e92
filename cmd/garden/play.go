package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/garden-defense/internal/audio"
	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
	"github.com/vovakirdan/garden-defense/internal/platform/tui"
	"github.com/vovakirdan/garden-defense/internal/storage"
)

// profileApp is the data directory name for the player profile.
const profileApp = "garden-defense"

var (
	flagConfig     string
	flagDifficulty string
	flagLoad       string
	flagContinue   bool
	flagName       string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  WASD/Arrows  - Move and aim the hose
  Space        - Spray (or open the tap when standing next to it)
  P/Esc        - Pause
  R/Enter      - Start a new game (from the title or game over)
  Ctrl+S       - Quicksave
  Ctrl+L       - Load the quicksave
  M            - Toggle sound
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer rounds, gentle speed-up
  normal - Default pacing
  hard   - Short rounds, animals start fast
  fixed  - No round scaling

Examples:
  garden play
  garden play --difficulty hard
  garden play --load quicksave
  garden play --continue
  garden play --config ./my-garden.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Resume the named save")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume the last save recorded in your profile")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	// The alt screen owns stderr while playing
	gameLog, closeLog := openGameLog()
	defer closeLog()

	profile, err := storage.OpenProfile(profileApp)
	if err != nil {
		gameLog.Warn("profile unavailable, using defaults", "err", err)
	}
	prof := profile.Get()
	name := playerName(prof)

	var persistence game.Persistence
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database, saving disabled: %v\n", err)
	} else {
		persistence = store
		defer store.Close()
	}

	player := audio.NewCuePlayer(flagVolume)
	player.SetMuted(flagMute || prof.Muted)
	if err := player.Initialize(); err != nil {
		gameLog.Warn("sound disabled", "err", err)
	}
	defer player.Close()

	board := tui.NewBoard()
	session := game.New(cfg,
		game.WithPersistence(persistence),
		game.WithPresenter(board),
		game.WithAudio(player),
		game.WithLogger(gameLog),
		game.WithSeed(rcfg.Seed),
		game.WithPlayerName(name),
	)

	slot := flagLoad
	if slot == "" && flagContinue {
		slot = prof.LastSave
		if slot == "" {
			slot = game.AutosaveSlot
		}
	}
	if slot != "" {
		if err := session.LoadGame(slot); err != nil && !errors.Is(err, game.ErrInvalidSave) {
			fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", slot, err)
			os.Exit(1)
		}
	}

	model := tui.NewModel(session, board, rcfg).WithMuter(player).WithLogger(gameLog)
	runErr := tui.Run(model)

	prof.Name = name
	prof.Muted = player.IsMuted()
	if slot != "" {
		prof.LastSave = slot
	}
	if err := profile.Update(prof); err != nil {
		gameLog.Warn("could not save profile", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName picks the --name flag, then the profile, then $USER.
func playerName(prof storage.PlayerProfile) string {
	switch {
	case flagName != "":
		return flagName
	case prof.Name != "":
		return prof.Name
	case os.Getenv("USER") != "":
		return os.Getenv("USER")
	}
	return "Player"
}

// openGameLog returns a logger writing to ~/.garden/garden.log. If the file
// cannot be opened the logger discards everything.
func openGameLog() (*log.Logger, func()) {
	l := logger.With()
	home, err := os.UserHomeDir()
	if err != nil {
		return discard(l), func() {}
	}
	path := filepath.Join(home, ".garden", "garden.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard(l), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- fixed path under home
	if err != nil {
		return discard(l), func() {}
	}
	l.SetOutput(f)
	return l, func() { _ = f.Close() }
}

func discard(l *log.Logger) *log.Logger {
	l.SetOutput(io.Discard)
	return l
}
