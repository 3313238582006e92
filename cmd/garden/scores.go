package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/garden-defense/internal/platform/tui"
	"github.com/vovakirdan/garden-defense/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the leaderboard. Opens an interactive table unless --plain is set
or stdout is not a terminal.

Examples:
  garden scores
  garden scores --plain -n 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print as plain text")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", storage.TopScoreSlots, "Number of scores to show in plain mode")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagScoresPlain && termErr == nil {
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopHighScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Garden Defense")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'garden play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Round", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %-5d  %s\n",
			i+1, entry.PlayerName, entry.Score, entry.Round, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
