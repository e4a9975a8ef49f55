package rpsls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAgentIsDeterministicPerSeed(t *testing.T) {
	a := NewRandomAgent(42, nil)
	b := NewRandomAgent(42, nil)

	for range 50 {
		assert.Equal(t, a.Choose(), b.Choose())
	}
}

func TestRandomAgentCoversAllHands(t *testing.T) {
	a := NewRandomAgent(7, nil)
	counts := map[Hand]int{}
	const draws = 5000
	for range draws {
		h := a.Choose()
		assert.True(t, h.Valid())
		counts[h]++
	}

	assert.Len(t, counts, 5)
	for _, h := range AllHands() {
		// Uniform expectation is 1000 per hand.
		assert.InDelta(t, draws/5, counts[h], 150, "hand %s", h)
	}
}

func TestRandomAgentRespectsHandSet(t *testing.T) {
	a := NewRandomAgent(1, Original.Hands)
	for range 200 {
		assert.True(t, Original.Allows(a.Choose()))
	}
}

func TestRandomAgentConcurrentUse(t *testing.T) {
	a := NewRandomAgent(3, nil)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				a.Choose()
			}
		}()
	}
	wg.Wait()
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(Rock, Spock)
	assert.Equal(t, []Hand{Rock, Spock, Rock, Spock}, []Hand{s.Choose(), s.Choose(), s.Choose(), s.Choose()})
	assert.Panics(t, func() { NewSequence() })
}

func TestVariants(t *testing.T) {
	assert.Len(t, Classic.Hands, 5)
	assert.True(t, Original.Allows(Scissors))
	assert.False(t, Original.Allows(Lizard))

	// Restricting the relation to three hands yields the classic cycle.
	for _, h := range Original.Hands {
		n := 0
		for _, o := range Original.Hands {
			if Beats(h, o) {
				n++
			}
		}
		assert.Equal(t, 1, n, "%s", h)
	}
}
