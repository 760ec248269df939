package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyburst/internal/platform/tui"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Without --difficulty a title menu lets you pick the preset; with it the
game starts right away.

Controls:
  Arrows/WASD - Move
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over or victory)
  B           - Back to menu (while paused or after the game)
  Ctrl+S      - Save a text screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a key stays held for a few
ticks after its last repeat (--hold).

Examples:
  skyburst play
  skyburst play --difficulty hard
  skyburst play --seed 42 --log-file skyburst.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", 8, "Ticks a key stays held after its last repeat")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("skyburst", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound := newSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	opts := tui.Options{
		Config:    cfg,
		Seed:      flagSeed,
		Logger:    logger,
		Sound:     sound,
		Width:     width,
		Height:    height,
		HoldTicks: flagHoldTicks,
	}

	var summaries []telemetry.RunSummary
	if flagDifficulty != "" {
		summary, runErr := tui.Run(opts)
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		summaries = append(summaries, summary)
	} else {
		summaries, err = tui.RunSession(opts, selectedPreset())
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}

	for _, s := range summaries {
		fmt.Println(s.String())
	}
	return nil
}
