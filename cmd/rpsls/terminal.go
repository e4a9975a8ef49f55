package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-rpsls/internal/core"
	"github.com/vovakirdan/tui-rpsls/internal/storage"
)

// runtimeConfig builds the runtime config from global flags and the terminal size.
func runtimeConfig(player string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if player != "" {
		cfg.Player = player
	}
	return cfg
}

// openStore opens the match database. Failure is logged and yields nil;
// matches are simply not recorded.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultConfig().Player
}
