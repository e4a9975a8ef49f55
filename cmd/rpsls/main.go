// rpsls is Rock-Paper-Scissors-Lizard-Spock against a random agent in the terminal.
//
// Usage:
//
//	rpsls play [variant]      - Play a match (default: rpsls)
//	rpsls menu                - Pick a variant interactively
//	rpsls list                - List available variants
//	rpsls rules [variant]     - Show which hand beats which
//	rpsls history [variant]   - Show finished matches
//	rpsls serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for a reproducible agent
//	--db <path>           - Set database path (default: ~/.rpsls/matches.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpsls/internal/config"

	// Register variants
	_ "github.com/vovakirdan/tui-rpsls/internal/games/rpsls"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = newLogger(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rpsls",
	Short: "Rock Paper Scissors Lizard Spock in your terminal",
	Long: `Play Rock-Paper-Scissors-Lizard-Spock against a random agent.
The first side to reach the target score wins the match.

Available commands:
  play     - Play a match directly
  menu     - Interactive variant picker
  list     - Show all variants
  rules    - Show the rules
  history  - Show finished matches
  serve    - Start SSH server for remote play

Examples:
  rpsls play
  rpsls play rps --target 3
  rpsls menu
  rpsls history rpsls
  rpsls serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join("~", config.DirName, "matches.db"), "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rpsls",
	})
}

// sessionLogger returns a logger for use while the TUI owns the terminal.
// Records go to ~/.rpsls/rpsls.log; the returned func closes the file.
func sessionLogger() (*log.Logger, func()) {
	path, err := config.ExpandHome(filepath.Join("~", config.DirName, "rpsls.log"))
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		logger.Debug("session log disabled", "error", err)
		l := newLogger(io.Discard)
		return l, func() {}
	}

	l := newLogger(f)
	l.SetLevel(logger.GetLevel())
	return l, func() { f.Close() }
}
