package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyburst/internal/platform/window"
)

var (
	flagScale float64
	flagDebug bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the arena at its native size.

Controls:
  Arrows/WASD - Move
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over or victory)
  Q           - Quit

Examples:
  skyburst window
  skyburst window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the arena")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show tick rate and frame counters")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("skyburst", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	sound := newSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	summary, err := window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Sound:  sound,
		Scale:  flagScale,
		Debug:  flagDebug,
	})
	if err != nil {
		return err
	}
	fmt.Println(summary.String())
	return nil
}
