package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rpsls/internal/games/rpsls"
	"github.com/vovakirdan/tui-rpsls/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	resetFlags := func() {
		flagLimit, flagPlayer, flagClear, flagHand = 10, "", false, ""
		flagLogLevel = "info"
	}
	resetFlags()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "rpsls")
	assert.Contains(t, out, "Rock Paper Scissors Lizard Spock")
	assert.Contains(t, out, "rps ")
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "Scissors cuts")
	assert.Contains(t, out, "Spock    vaporizes")
	assert.Equal(t, 10, strings.Count(out, "\n  "))

	out, err = execute(t, "rules", "rps")
	require.NoError(t, err)
	assert.NotContains(t, out, "Spock")
	assert.Equal(t, 3, strings.Count(out, "\n  "))

	_, err = execute(t, "rules", "chess")
	assert.ErrorContains(t, err, "unknown variant")
}

func TestHistoryCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")

	out, err := execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No matches recorded yet.")

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveMatch(storage.MatchRecord{
		GameID: "rpsls", Player: "alice", PlayerScore: 5, AgentScore: 4, Winner: "player", Rounds: 12,
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err = execute(t, "history", "rpsls", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "5 : 4")
	assert.Contains(t, out, "All players, rpsls: played 1, won 1, lost 0 (100% win rate)")

	_, err = execute(t, "history", "chess", "--db", dbPath)
	assert.ErrorContains(t, err, "unknown variant")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func saveMatches(t *testing.T, dbPath string, records ...storage.MatchRecord) {
	t.Helper()
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	for _, r := range records {
		_, err := store.SaveMatch(r)
		require.NoError(t, err)
	}
}

func TestHistoryFiltersByVariantAndPlayer(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var records []storage.MatchRecord
	for i := range 3 {
		records = append(records, storage.MatchRecord{
			GameID: "rpsls", Player: "alice", PlayerScore: 5, AgentScore: i, Winner: "player", Rounds: 7,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	for i := range 3 {
		records = append(records, storage.MatchRecord{
			GameID: "rps", Player: "alice", PlayerScore: 1, AgentScore: 5, Winner: "agent", Rounds: 9,
			CreatedAt: base.Add(time.Duration(10+i) * time.Minute),
		})
	}
	records = append(records, storage.MatchRecord{
		GameID: "rpsls", Player: "bob", PlayerScore: 2, AgentScore: 5, Winner: "agent", Rounds: 8,
		CreatedAt: base.Add(time.Hour),
	})
	saveMatches(t, dbPath, records...)

	out, err := execute(t, "history", "rpsls", "--player", "alice", "--limit", "3", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, " rpsls "))
	assert.NotContains(t, out, " rps ")
	assert.NotContains(t, out, "bob")
	assert.Contains(t, out, "alice, rpsls: played 3, won 3, lost 0 (100% win rate)")
}

func TestHistoryClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")
	saveMatches(t, dbPath,
		storage.MatchRecord{GameID: "rpsls", Player: "alice", PlayerScore: 5, Winner: "player", Rounds: 5},
		storage.MatchRecord{GameID: "rps", Player: "alice", PlayerScore: 5, Winner: "player", Rounds: 5},
	)

	_, err := execute(t, "history", "--clear", "--db", dbPath)
	assert.ErrorContains(t, err, "--clear needs a variant")

	out, err := execute(t, "history", "rpsls", "--clear", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared all rpsls matches.")

	out, err = execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.NotContains(t, out, " rpsls ")
	assert.Contains(t, out, " rps ")
}

func TestRulesForOneHand(t *testing.T) {
	out, err := execute(t, "rules", "--hand", " SPOCK ")
	require.NoError(t, err)
	assert.Contains(t, out, "Spock in Rock Paper Scissors Lizard Spock")
	assert.Contains(t, out, "Spock    smashes     Scissors")
	assert.Contains(t, out, "Paper    disproves   Spock")
	assert.Equal(t, 4, strings.Count(out, "\n  "))

	_, err = execute(t, "rules", "rps", "--hand", "lizard")
	assert.ErrorContains(t, err, "not played")

	_, err = execute(t, "rules", "--hand", "fire")
	assert.ErrorIs(t, err, rpsls.ErrInvalidHand)
}
