// garden is a terminal arcade game: keep the squirrels and raccoons away
// from your vegetables with a garden hose.
//
// Usage:
//
//	garden play              - Play in the terminal
//	garden sim               - Run a headless simulation
//	garden scores            - Show the leaderboard
//	garden saves             - List or delete saved games
//	garden serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.garden/garden.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "garden",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "Garden Defense - protect your vegetables in the terminal",
	Long: `Garden Defense is a terminal arcade game. Squirrels and raccoons raid
your vegetable patch; chase them off with the hose before they carry
everything away. Squirrels will also sneak over and shut off the water.

Available commands:
  play     - Play in the terminal
  sim      - Headless simulation for testing and balancing
  scores   - View high scores
  saves    - List or delete saved games
  serve    - Start SSH server for remote play

Examples:
  garden play
  garden play --difficulty hard --name Mira
  garden sim --seconds 120 --spray
  garden scores --plain
  garden serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.garden/garden.db", "Path to saves and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadGameConfig loads the config file and applies a difficulty preset.
func loadGameConfig(path, difficulty string) (config.GameConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the database or exits with an error.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
