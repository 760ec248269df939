package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the other commands would use, after the
search order, --difficulty and --fps are applied. The output is valid
YAML and can be saved as a starting point for --config.

Search order:
  --config <path>
  ~/.skyburst/configs/shmup.yaml
  ./configs/shmup.yaml
  built-in defaults

Examples:
  skyburst config
  skyburst config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n%s", source, data)
	return nil
}
