// Package registry maps variant ids to game factories.
//
// A game package registers every variant it provides from init(), one id
// per variant (the rpsls package registers "rpsls" and "rps"). The CLI,
// the menu and the SSH sessions look variants up here by id, and finished
// matches are stored under the same id.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-rpsls/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a playable variant as seen by the platform.
// The platform owns input, timing and terminal output; a Game only turns
// input frames into state and draws that state.
type Game interface {
	// ID returns the variant id the game was registered under.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh match.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick worth of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game summary.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics if the id is taken or if the
// factory builds a game reporting a different id.
func Register(id string, f Factory) {
	sample := f()
	if sample.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q creates game %q", id, sample.ID()))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: sample.Title()},
		factory: f,
	}
}

// List returns all registered variants sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a fresh game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
