package rpsls

import (
	"errors"
	"fmt"
)

// DefaultWinningScore is the score that ends a match.
const DefaultWinningScore = 5

// ErrMatchConcluded is returned when a round is recorded after the match ended.
var ErrMatchConcluded = errors.New("rpsls: match already concluded")

// Side identifies a participant.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAgent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAgent:
		return "agent"
	default:
		return "none"
	}
}

// Status is the match lifecycle state.
type Status int

const (
	InProgress Status = iota
	Concluded
)

func (s Status) String() string {
	if s == Concluded {
		return "Concluded"
	}
	return "InProgress"
}

// MatchState is an immutable score record. Methods return updated copies.
type MatchState struct {
	PlayerScore  int
	AgentScore   int
	WinningScore int
	Rounds       int // every recorded round, ties included
	Ties         int
}

// NewMatch returns a fresh match. Non-positive thresholds use DefaultWinningScore.
func NewMatch(winningScore int) MatchState {
	if winningScore <= 0 {
		winningScore = DefaultWinningScore
	}
	return MatchState{WinningScore: winningScore}
}

// Winner returns the side that reached the threshold, player first.
func (m MatchState) Winner() Side {
	switch {
	case m.PlayerScore >= m.WinningScore:
		return SidePlayer
	case m.AgentScore >= m.WinningScore:
		return SideAgent
	default:
		return SideNone
	}
}

// Concluded reports whether either side reached the threshold.
func (m MatchState) Concluded() bool {
	return m.Winner() != SideNone
}

// Status returns InProgress or Concluded.
func (m MatchState) Status() Status {
	if m.Concluded() {
		return Concluded
	}
	return InProgress
}

// Record applies one round outcome. A concluded match is returned unchanged
// together with ErrMatchConcluded.
func (m MatchState) Record(o Outcome) (MatchState, error) {
	if !o.Valid() {
		return m, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	if m.Concluded() {
		return m, ErrMatchConcluded
	}

	m.Rounds++
	switch o {
	case PlayerWins:
		m.PlayerScore++
	case AgentWins:
		m.AgentScore++
	case Tie:
		m.Ties++
	}
	return m, nil
}

// Reset returns a new match with the same threshold.
func (m MatchState) Reset() MatchState {
	return NewMatch(m.WinningScore)
}

func (m MatchState) String() string {
	return fmt.Sprintf("%d : %d", m.PlayerScore, m.AgentScore)
}
