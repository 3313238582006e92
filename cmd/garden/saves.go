package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `List saved games, newest first. The autosave slot is written at the end
of every round; quicksave is written by Ctrl+S while playing.

Examples:
  garden saves
  garden saves delete quicksave`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSaves(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	saves, err := store.ListSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		return
	}
	if len(saves) == 0 {
		fmt.Println("No saved games.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-4s  %s\n", "Name", "Score", "Round", "Time", "Saved")
	fmt.Printf("  %-16s  %-6s  %-5s  %-4s  %s\n", "----", "-----", "-----", "----", "-----")
	for _, s := range saves {
		fmt.Printf("  %-16s  %-6d  %-5d  %-4d  %s\n",
			s.Name, s.Score, s.Round, s.TimeLeft, s.SavedAt.Format("2006-01-02 15:04"))
	}
}

func runSavesDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteSave(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
		return
	}
	logger.Info("save deleted", "name", args[0])
}
