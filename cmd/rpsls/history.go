package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpsls/internal/registry"
	"github.com/vovakirdan/tui-rpsls/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show finished matches",
	Long: `Display recent finished matches, newest first, with totals.

Examples:
  rpsls history
  rpsls history rps --limit 20
  rpsls history rpsls --player alice
  rpsls history rps --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show matches of this player")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches of the variant")
}

func runHistory(cmd *cobra.Command, args []string) error {
	filter := storage.MatchFilter{Player: flagPlayer}
	if len(args) > 0 {
		filter.GameID = args[0]
		if !registry.Exists(filter.GameID) {
			return fmt.Errorf("unknown variant %q, run 'rpsls list' to see available variants", filter.GameID)
		}
	}
	if flagClear && filter.GameID == "" {
		return fmt.Errorf("--clear needs a variant, e.g. 'rpsls history rpsls --clear'")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearMatches(filter.GameID); err != nil {
			return err
		}
		logger.Info("cleared match history", "game", filter.GameID)
		fmt.Fprintf(out, "Cleared all %s matches.\n", filter.GameID)
		return nil
	}

	matches, err := store.FindMatches(filter, flagLimit)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		fmt.Fprintln(out, "Run 'rpsls play' to finish your first match!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-12s  %-7s  %-6s  %s\n", "Date", "Game", "Player", "Score", "Rounds", "Winner")
	fmt.Fprintf(out, "  %-16s  %-6s  %-12s  %-7s  %-6s  %s\n", "----", "----", "------", "-----", "------", "------")
	for _, m := range matches {
		fmt.Fprintf(out, "  %-16s  %-6s  %-12s  %-7s  %-6d  %s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.GameID,
			m.Player,
			fmt.Sprintf("%d : %d", m.PlayerScore, m.AgentScore),
			m.Rounds,
			m.Winner,
		)
	}

	stats, err := store.MatchStats(filter)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: played %d, won %d, lost %d (%.0f%% win rate)\n",
		statsScope(filter), stats.Played, stats.PlayerWins, stats.AgentWins, stats.WinRate()*100)
	return nil
}

// statsScope names the matches the totals line covers.
func statsScope(f storage.MatchFilter) string {
	game := "all variants"
	if f.GameID != "" {
		game = f.GameID
	}
	if f.Player == "" {
		return "All players, " + game
	}
	return f.Player + ", " + game
}
