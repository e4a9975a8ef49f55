package rpsls

import "fmt"

// Round is the record of a single throw.
type Round struct {
	Player  Hand
	Agent   Hand
	Outcome Outcome
}

// Summary describes the round for display, for example
// "Rock crushes Scissors - you win the round".
func (r Round) Summary() string {
	return r.describe(Verb)
}

// PlainSummary is Summary with every verb replaced by "beats".
func (r Round) PlainSummary() string {
	return r.describe(func(Hand, Hand) string { return "beats" })
}

func (r Round) describe(verb func(winner, loser Hand) string) string {
	switch r.Outcome {
	case PlayerWins:
		return fmt.Sprintf("%s %s %s - you win the round", r.Player, verb(r.Player, r.Agent), r.Agent)
	case AgentWins:
		return fmt.Sprintf("%s %s %s - agent wins the round", r.Agent, verb(r.Agent, r.Player), r.Player)
	default:
		return fmt.Sprintf("%s and %s - tie", r.Player, r.Agent)
	}
}

// Play runs one round: the agent draws a hand, the round is resolved and
// recorded. Invalid hands and concluded matches are rejected before the
// agent is consulted.
func Play(m MatchState, player Hand, agent Chooser) (Round, MatchState, error) {
	if err := checkHand(player); err != nil {
		return Round{}, m, err
	}
	if m.Concluded() {
		return Round{}, m, ErrMatchConcluded
	}

	r := Round{Player: player, Agent: agent.Choose()}

	outcome, err := Resolve(r.Player, r.Agent)
	if err != nil {
		return Round{}, m, fmt.Errorf("agent hand: %w", err)
	}
	r.Outcome = outcome

	next, err := m.Record(outcome)
	if err != nil {
		return Round{}, m, err
	}
	return r, next, nil
}
