// Package rpsls implements Rock-Paper-Scissors-Lizard-Spock against a random agent.
//
// The rules (Resolve, MatchState, Play) are pure and have no terminal
// dependency. Game adapts them to the terminal game platform.
package rpsls

import (
	"errors"
	"fmt"
	"strings"
)

// Hand is one of the five playable symbols.
type Hand int

const (
	Rock Hand = iota
	Paper
	Scissors
	Lizard
	Spock
)

// ErrInvalidHand is returned for any value outside the five symbols.
var ErrInvalidHand = errors.New("rpsls: invalid hand")

var handNames = [...]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Lizard:   "Lizard",
	Spock:    "Spock",
}

// AllHands returns the five hands in ordinal order.
func AllHands() []Hand {
	return []Hand{Rock, Paper, Scissors, Lizard, Spock}
}

// Valid reports whether h is one of the five symbols.
func (h Hand) Valid() bool {
	return h >= Rock && h <= Spock
}

func (h Hand) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Hand(%d)", int(h))
	}
	return handNames[h]
}

// ParseHand converts a case-insensitive hand name to a Hand.
func ParseHand(s string) (Hand, error) {
	name := strings.TrimSpace(s)
	for _, h := range AllHands() {
		if strings.EqualFold(name, handNames[h]) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHand, s)
}

func checkHand(h Hand) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidHand, int(h))
	}
	return nil
}
