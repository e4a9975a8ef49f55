package rpsls

import (
	"github.com/vovakirdan/tui-rpsls/internal/config"
	"github.com/vovakirdan/tui-rpsls/internal/core"
	"github.com/vovakirdan/tui-rpsls/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath           string
	winningScoreOverride int
)

// SetConfigPath sets a custom config file for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetWinningScore overrides the configured winning score. 0 clears the override.
func SetWinningScore(n int) {
	winningScoreOverride = n
}

// Game adapts the rules to the terminal game platform.
type Game struct {
	variant Variant
	cfg     config.RPSLSConfig

	fixedAgent Chooser // injected agent; nil means a seeded RandomAgent per match
	agent      Chooser
	seed       int64

	match   MatchState
	cursor  int
	last    *Round
	history []Round // newest first
	err     error   // last rejected throw

	tickRate  int
	flash     int // ticks left to highlight the latest result
	screenW   int
	screenH   int
	tooSmall  bool
	seedCount int64
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		cfg:     config.DefaultRPSLSConfig(),
		match:   NewMatch(DefaultWinningScore),
	}
}

// NewWithChooser creates a game whose agent is c instead of a random agent.
func NewWithChooser(v Variant, c Chooser) *Game {
	g := New(v)
	g.fixedAgent = c
	return g
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the variant name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Match returns the current match state.
func (g *Game) Match() MatchState {
	return g.match
}

// LastRound returns the most recent round, if any.
func (g *Game) LastRound() (Round, bool) {
	if g.last == nil {
		return Round{}, false
	}
	return *g.last, true
}

// Err returns the error of the last rejected throw, if any.
func (g *Game) Err() error {
	return g.err
}

// History returns recorded rounds, newest first.
func (g *Game) History() []Round {
	return g.history
}

// Reset loads configuration and starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadRPSLS(configPath)
	if err != nil {
		cfg = config.DefaultRPSLSConfig()
	}
	if winningScoreOverride > 0 {
		cfg.Match.WinningScore = winningScoreOverride
		cfg.Normalize()
	}
	g.cfg = cfg

	g.seed = rc.Seed
	g.seedCount = 0
	g.tickRate = max(rc.TickRate, 1)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.cursor = 0
	g.newMatch()
}

// Resize updates the layout without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// newMatch clears the board. Each match gets its own agent stream so
// restarts within a session do not replay the same hands.
func (g *Game) newMatch() {
	g.match = NewMatch(g.cfg.Match.WinningScore)
	g.last = nil
	g.err = nil
	g.history = nil
	g.flash = 0

	if g.fixedAgent != nil {
		g.agent = g.fixedAgent
		return
	}
	g.agent = NewRandomAgent(g.seed+g.seedCount, g.variant.Hands)
	g.seedCount++
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth(len(g.variant.Hands)) || g.screenH < minHeight
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.flash > 0 {
		g.flash--
	}

	if in.Has(core.ActionRestart) {
		g.newMatch()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.match.Concluded() {
		return core.StepResult{State: g.State()}
	}

	n := len(g.variant.Hands)
	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % n
	}

	throw := in.Has(core.ActionConfirm)
	if idx, ok := in.Choice(); ok && idx < n {
		g.cursor = idx
		throw = true
	}
	if !throw {
		return core.StepResult{State: g.State()}
	}

	concluded := g.throw(g.variant.Hands[g.cursor])
	return core.StepResult{State: g.State(), Concluded: concluded}
}

// throw plays one round and reports whether it ended the match.
// Step already rejects invalid hands and concluded matches, so an error
// here comes from the agent; it is kept for display and the throw is void.
func (g *Game) throw(h Hand) bool {
	r, next, err := Play(g.match, h, g.agent)
	if err != nil {
		g.err = err
		return false
	}
	g.err = nil
	g.match = next
	g.last = &r
	g.flash = g.tickRate / 2

	if rows := g.cfg.Display.HistoryRows; rows > 0 {
		g.history = append([]Round{r}, g.history...)
		if len(g.history) > rows {
			g.history = g.history[:rows]
		}
	}
	return next.Concluded()
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.match.PlayerScore,
		OpponentScore: g.match.AgentScore,
		Rounds:        g.match.Rounds,
		GameOver:      g.match.Concluded(),
		Won:           g.match.Winner() == SidePlayer,
	}
}
