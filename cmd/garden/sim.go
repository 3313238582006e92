package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-defense/internal/game"
	"github.com/vovakirdan/garden-defense/internal/platform/headless"
)

var (
	flagSimSeconds    int
	flagSimSpray      bool
	flagSimConfig     string
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Play a game without a terminal and print how each round went.

Without --spray the gardener stands still and the animals take everything.
With --spray an autopilot chases animals and keeps the water running.
Runs with the same --seed and flags are identical; the final hash proves it.

Examples:
  garden sim --seed 42
  garden sim --seconds 600 --spray --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSeconds, "seconds", 300, "Simulated seconds to run")
	simCmd.Flags().BoolVar(&flagSimSpray, "spray", false, "Let the autopilot defend the garden")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagSimConfig, flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := seed()
	rec := headless.NewRecorder(logger.WithPrefix("sim"))
	session := game.New(cfg,
		game.WithPresenter(rec),
		game.WithLogger(logger),
		game.WithSeed(s),
	)

	res := headless.Run(session, rec, headless.Options{
		FPS:       flagFPS,
		Duration:  time.Duration(flagSimSeconds) * time.Second,
		Autopilot: flagSimSpray,
	})

	fmt.Println()
	fmt.Printf("Seed %d, %d frames, %s simulated\n", s, res.Frames, res.Elapsed.Round(time.Millisecond))
	fmt.Println()
	if len(res.Rounds) > 0 {
		fmt.Printf("  %-5s  %s\n", "Round", "Score")
		fmt.Printf("  %-5s  %s\n", "-----", "-----")
		for _, r := range res.Rounds {
			fmt.Printf("  %-5d  %d\n", r.Round, r.Score)
		}
		fmt.Println()
	}

	st := res.State
	if res.Summary != nil {
		fmt.Printf("Game over in round %d with %d points\n", res.Summary.Round, res.Summary.Score)
	} else {
		fmt.Printf("Stopped in round %d (%s) with %d points, %d vegetables left\n",
			st.Round, st.Phase, st.Score, st.VegetablesLeft)
	}
	fmt.Printf("Final hash: %016x\n", res.Hash)
}
