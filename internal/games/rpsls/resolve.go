package rpsls

import (
	"errors"
	"fmt"
)

// Outcome is the result of a single round.
type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	AgentWins
)

// ErrInvalidOutcome is returned when recording a value that is not an Outcome.
var ErrInvalidOutcome = errors.New("rpsls: invalid outcome")

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case PlayerWins:
		return "PlayerWins"
	case AgentWins:
		return "AgentWins"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Valid reports whether o is one of the three outcomes.
func (o Outcome) Valid() bool {
	return o >= Tie && o <= AgentWins
}

type pair struct {
	winner, loser Hand
}

// beats is the full winning relation with the verb used for display.
// Every hand appears exactly twice as winner and twice as loser.
var beats = map[pair]string{
	{Rock, Scissors}:   "crushes",
	{Rock, Lizard}:     "crushes",
	{Paper, Rock}:      "covers",
	{Paper, Spock}:     "disproves",
	{Scissors, Paper}:  "cuts",
	{Scissors, Lizard}: "decapitates",
	{Lizard, Spock}:    "poisons",
	{Lizard, Paper}:    "eats",
	{Spock, Scissors}:  "smashes",
	{Spock, Rock}:      "vaporizes",
}

// Beats reports whether a defeats b.
func Beats(a, b Hand) bool {
	_, ok := beats[pair{a, b}]
	return ok
}

// Verb returns the verb describing how winner defeats loser,
// or "beats" for a pair outside the relation.
func Verb(winner, loser Hand) string {
	if v, ok := beats[pair{winner, loser}]; ok {
		return v
	}
	return "beats"
}

// Resolve decides a round from the player's point of view.
func Resolve(player, agent Hand) (Outcome, error) {
	if err := checkHand(player); err != nil {
		return Tie, err
	}
	if err := checkHand(agent); err != nil {
		return Tie, err
	}

	switch {
	case player == agent:
		return Tie, nil
	case Beats(player, agent):
		return PlayerWins, nil
	default:
		return AgentWins, nil
	}
}

// Defeats returns the hands h beats, in ordinal order.
func (h Hand) Defeats() []Hand {
	var out []Hand
	for _, other := range AllHands() {
		if Beats(h, other) {
			out = append(out, other)
		}
	}
	return out
}

// WinningPairs returns the relation as (winner, loser) pairs ordered by
// winner then loser.
func WinningPairs() [][2]Hand {
	pairs := make([][2]Hand, 0, len(beats))
	for _, w := range AllHands() {
		for _, l := range w.Defeats() {
			pairs = append(pairs, [2]Hand{w, l})
		}
	}
	return pairs
}
