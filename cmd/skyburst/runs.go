package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyburst/internal/platform/tui"
	"github.com/vovakirdan/skyburst/internal/storage"
)

var (
	flagRunsDB    string
	flagRunsLimit int
	flagPlain     bool
	flagClear     bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded headless runs",
	Long: `Show the run journal written by 'skyburst sim'.

In a terminal the journal opens in an interactive browser; with --plain,
or when stdout is not a terminal, the top runs are printed as text.

Examples:
  skyburst runs
  skyburst runs --plain --limit 20
  skyburst runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsDB, "db", storage.DefaultPath, "Path to the run journal")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Runs to print in plain mode")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the browser")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded batch")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagRunsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("run journal cleared")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunsBrowser(store, width, height)
	}
	return printRuns(store)
}

func printRuns(store *storage.Store) error {
	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Println("Top Headless Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skyburst sim' to fill the journal.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-3s  %-10s  %s\n", "Rank", "Seed", "Score", "Lv", "Outcome", "Kills")
	fmt.Printf("  %-4s  %-8s  %-7s  %-3s  %-10s  %s\n", "----", "----", "-----", "--", "-------", "-----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7d  %-3d  %-10s  %s\n", i+1, r.Seed, r.Score, r.MaxLevel, r.Outcome, r.Kills)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("batches=%d runs=%d best=%d avg=%.1f victories=%d game_overs=%d\n",
		stats.Batches, stats.Runs, stats.HighScore, stats.AvgScore, stats.Victories, stats.GameOvers)
	return nil
}
