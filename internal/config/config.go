// Package config provides YAML-based game configuration loading.
package config

// RPSLSConfig contains all configuration for the game.
type RPSLSConfig struct {
	Match   MatchConfig   `yaml:"match"`
	Display DisplayConfig `yaml:"display"`
}

// MatchConfig defines match rules.
type MatchConfig struct {
	WinningScore int `yaml:"winning_score"`
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	HistoryRows int  `yaml:"history_rows"`
	ShowVerbs   bool `yaml:"show_verbs"`
}

// Limits applied by Normalize.
const (
	MaxWinningScore = 99
	MaxHistoryRows  = 20
)

// Normalize replaces out-of-range values with defaults or limits.
func (c *RPSLSConfig) Normalize() {
	def := DefaultRPSLSConfig()
	if c.Match.WinningScore <= 0 {
		c.Match.WinningScore = def.Match.WinningScore
	}
	if c.Match.WinningScore > MaxWinningScore {
		c.Match.WinningScore = MaxWinningScore
	}
	if c.Display.HistoryRows < 0 {
		c.Display.HistoryRows = 0
	}
	if c.Display.HistoryRows > MaxHistoryRows {
		c.Display.HistoryRows = MaxHistoryRows
	}
}
