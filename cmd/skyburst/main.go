// skyburst is a vertical shoot-'em-up played in the terminal, in a window
// or over SSH, with a headless simulator for balancing.
//
// Usage:
//
//	skyburst play            - Play in the terminal
//	skyburst window          - Play in a desktop window
//	skyburst serve           - Start SSH server for remote play
//	skyburst sim             - Run headless autopilot batches
//	skyburst runs            - Browse recorded headless runs
//	skyburst config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML configuration
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//	--mute, --volume <v>  - Disable sound or set its gain
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyburst",
	Short: "Skyburst - a vertical shoot-'em-up for the terminal",
	Long: `Skyburst is a deterministic vertical shoot-'em-up. Steer the ship,
shoot down formations, elites and free-roaming enemies, survive the orb
barrages and defeat the final boss.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot batches
  runs     - Browse recorded headless runs
  config   - Print the effective configuration

Examples:
  skyburst play
  skyburst play --difficulty hard --seed 42
  skyburst window --scale 1.5
  skyburst serve --ssh :2222
  skyburst sim --runs 20 --ticks 18000
  skyburst runs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0, "Sound gain in halvings (0 = unity, -1 = half)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
