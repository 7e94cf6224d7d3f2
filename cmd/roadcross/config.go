package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in config for a variant. Save it to
~/.arcade/configs/crossing.yaml or ./configs/crossing.yaml to override it.

Examples:
  roadcross config > ~/.arcade/configs/crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "crossing"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no config for game %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
