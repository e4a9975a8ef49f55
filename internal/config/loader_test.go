package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rpsls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultRPSLSYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultRPSLSConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, "match:\n  winning_score: 3\n")

	cfg, err := LoadRPSLS(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Match.WinningScore)
	// Omitted keys keep defaults.
	assert.Equal(t, 5, cfg.Display.HistoryRows)
	assert.True(t, cfg.Display.ShowVerbs)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadRPSLS(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeConfig(t, "match: [not, a, map\n")
	_, err = LoadRPSLS(bad)
	assert.ErrorContains(t, err, "cannot parse")
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRPSLS("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRPSLSConfig(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, DirName, "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rpsls.yaml"), []byte("match:\n  winning_score: 7\n"), 0o600))

	cfg, err := LoadRPSLS("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Match.WinningScore)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        RPSLSConfig
		wantScore int
		wantRows  int
	}{
		{"zero score uses default", RPSLSConfig{}, 5, 0},
		{"negative values", RPSLSConfig{Match: MatchConfig{WinningScore: -2}, Display: DisplayConfig{HistoryRows: -1}}, 5, 0},
		{"too large", RPSLSConfig{Match: MatchConfig{WinningScore: 500}, Display: DisplayConfig{HistoryRows: 100}}, MaxWinningScore, MaxHistoryRows},
		{"in range", RPSLSConfig{Match: MatchConfig{WinningScore: 3}, Display: DisplayConfig{HistoryRows: 4}}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			assert.Equal(t, tt.wantScore, cfg.Match.WinningScore)
			assert.Equal(t, tt.wantRows, cfg.Display.HistoryRows)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.rpsls/matches.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rpsls", "matches.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
