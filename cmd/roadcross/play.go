package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/platform/tui"
	"github.com/vovakirdan/roadcross/internal/registry"
)

var (
	flagConfig string
	flagRamp   string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game variant",
	Long: `Start playing the given variant (default: crossing).

Controls:
  Arrows/WASD/hjkl  - Move one step
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Ramp presets (traffic speeds up each time a vehicle wraps):
  off     - Constant lane speeds
  gentle  - +0.05 per wrap, capped at 5
  steep   - +0.15 per wrap, capped at 7

Examples:
  roadcross play
  roadcross play crossing_ramp
  roadcross play --ramp gentle
  roadcross play --config ./my-crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagRamp, "ramp", "", "Ramp preset: off, gentle, steep")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "crossing"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return unknownGameError(gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func unknownGameError(gameID string) error {
	return fmt.Errorf("unknown game %q, run 'roadcross list' to see available games", gameID)
}

// applyGameFlags hands --config and --ramp to the crossing package
// before any game is created.
func applyGameFlags() error {
	preset, err := config.ParseRampPreset(flagRamp)
	if err != nil {
		return err
	}
	crossing.SetConfigPath(flagConfig)
	crossing.SetRampPreset(preset)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
