package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpsls/internal/platform/tui"
	"github.com/vovakirdan/tui-rpsls/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant, Tab for
match history. Going back from a match returns to the menu.

Examples:
  rpsls menu
  rpsls menu --name alice
  rpsls menu --db ./matches.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", defaultPlayer(), "Player name recorded with finished matches")
	menuCmd.Flags().IntVar(&flagTarget, "target", 0, "Points needed to win the match (overrides config)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sessLog, closeLog := sessionLogger()
	defer closeLog()

	cfg := runtimeConfig(flagName)

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, sessLog, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
