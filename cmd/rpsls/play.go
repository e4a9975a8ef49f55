package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpsls/internal/config"
	"github.com/vovakirdan/tui-rpsls/internal/games/rpsls"
	"github.com/vovakirdan/tui-rpsls/internal/platform/tui"
	"github.com/vovakirdan/tui-rpsls/internal/registry"
)

var (
	flagConfig string
	flagTarget int
	flagName   string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a match",
	Long: `Start a match of the given variant (default: rpsls).

Controls:
  Left/Right, h/l  - Move the cursor
  Enter/Space      - Throw the selected hand
  1-5              - Throw a hand directly
  N                - New match
  B/Esc            - Back
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  rpsls play
  rpsls play rps
  rpsls play --target 3
  rpsls play --config ./my-rpsls.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Points needed to win the match (overrides config)")
	playCmd.Flags().StringVar(&flagName, "name", defaultPlayer(), "Player name recorded with finished matches")
}

// applyGameFlags hands --config and --target to the game package.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadRPSLS(flagConfig); err != nil {
			return err
		}
	}
	if flagTarget < 0 || flagTarget > config.MaxWinningScore {
		return fmt.Errorf("--target must be between 1 and %d", config.MaxWinningScore)
	}
	rpsls.SetConfigPath(flagConfig)
	rpsls.SetWinningScore(flagTarget)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := rpsls.Classic.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'rpsls list' to see available variants", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sessLog, closeLog := sessionLogger()
	defer closeLog()

	if _, err := tui.Run(game, store, sessLog, runtimeConfig(flagName)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
