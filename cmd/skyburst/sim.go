package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyburst/internal/storage"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

var (
	flagRuns    int
	flagTicks   int64
	flagDBPath  string
	flagNoSave  bool
	flagLabel   string
	flagCopy    bool
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot batches",
	Long: `Play batches of runs without a display, steered by the built-in
autopilot, and report how they went. Runs use consecutive seeds starting
at --seed (1 when unset), so a batch is reproducible.

Each batch is recorded in the run journal (--db) unless --no-save is set.

Examples:
  skyburst sim
  skyburst sim --runs 50 --ticks 18000 --label "elite hp 90"
  skyburst sim --runs 1 --seed 7 --verbose
  skyburst sim --difficulty hard --copy`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simCmd.Flags().Int64Var(&flagTicks, "ticks", 60*180, "Tick budget per run")
	simCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run journal")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the batch")
	simCmd.Flags().StringVar(&flagLabel, "label", "", "Label stored with the batch")
	simCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the report to the clipboard")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print every run's event journal")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagRuns <= 0 || flagTicks <= 0 {
		return errors.New("--runs and --ticks must be positive")
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("skyburst-sim", false)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	seedBase := flagSeed
	if seedBase == 0 {
		seedBase = 1
	}

	h := telemetry.Headless{
		Config:  cfg,
		Ticks:   flagTicks,
		Logger:  logger,
		Verbose: flagVerbose,
	}

	var report *telemetry.Report
	if flagVerbose {
		report = &telemetry.Report{Ticks: flagTicks}
		for i := range flagRuns {
			summary, journal := h.Run(seedBase + int64(i))
			report.Add(summary)
			fmt.Printf("--- seed %d ---\n%s\n", summary.Seed, journal.Format())
		}
	} else {
		report = h.Batch(flagRuns, seedBase)
	}

	out := report.Format()
	fmt.Print(out)

	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.SaveBatch(cmd.Context(), flagLabel, report)
		if err != nil {
			return err
		}
		fmt.Printf("saved batch #%d to %s\n", id, flagDBPath)
	}

	if flagCopy {
		if err := clipboard.WriteAll(out); err != nil {
			logger.Warn("could not copy report", "error", err)
		} else {
			fmt.Println("report copied to clipboard")
		}
	}
	return nil
}
