package config

import (
	_ "embed"
)

//go:embed defaults/rpsls.yaml
var defaultRPSLSYAML []byte

// DefaultRPSLSConfig returns the built-in configuration.
func DefaultRPSLSConfig() RPSLSConfig {
	return RPSLSConfig{
		Match: MatchConfig{
			WinningScore: 5,
		},
		Display: DisplayConfig{
			HistoryRows: 5,
			ShowVerbs:   true,
		},
	}
}
