package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purrfect-leap/internal/leap"
	"github.com/vovakirdan/purrfect-leap/internal/platform/tui"
	"github.com/vovakirdan/purrfect-leap/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the best score",
	Long: `Display the best runs, the best score and overall stats.

Interactive by default; --plain (or a non-terminal stdout) prints a table.

Examples:
  leap scores
  leap scores --plain --limit 5
  leap scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a static table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the run history and best score")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(leap.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		out, err := tui.PlainScores(store, leap.GameID, leap.GameTitle, flagFPS, flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunScoreboard(store, leap.GameID, leap.GameTitle, flagFPS, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
