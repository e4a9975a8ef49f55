package rpsls

import (
	"math/rand"
	"sync"
)

// Chooser supplies the agent's hand for each round.
type Chooser interface {
	Choose() Hand
}

// ChooserFunc adapts a plain function to Chooser.
type ChooserFunc func() Hand

// Choose calls f.
func (f ChooserFunc) Choose() Hand {
	return f()
}

// RandomAgent draws uniformly from a fixed set of hands.
// It keeps no memory of earlier rounds and is safe for concurrent use.
type RandomAgent struct {
	mu    sync.Mutex
	rng   *rand.Rand
	hands []Hand
}

// NewRandomAgent returns an agent seeded with seed that draws from hands.
// An empty hand set means all five hands.
func NewRandomAgent(seed int64, hands []Hand) *RandomAgent {
	if len(hands) == 0 {
		hands = AllHands()
	}
	return &RandomAgent{
		rng:   rand.New(rand.NewSource(seed)),
		hands: append([]Hand(nil), hands...),
	}
}

// Choose draws the next hand.
func (a *RandomAgent) Choose() Hand {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hands[a.rng.Intn(len(a.hands))]
}

// Sequence replays a fixed list of hands, wrapping around at the end.
type Sequence struct {
	hands []Hand
	next  int
}

// NewSequence returns a Sequence over hands. It panics on an empty list.
func NewSequence(hands ...Hand) *Sequence {
	if len(hands) == 0 {
		panic("rpsls: empty sequence")
	}
	return &Sequence{hands: hands}
}

// Choose returns the next hand in the sequence.
func (s *Sequence) Choose() Hand {
	h := s.hands[s.next%len(s.hands)]
	s.next++
	return h
}
