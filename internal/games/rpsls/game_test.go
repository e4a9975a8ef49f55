package rpsls

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rpsls/internal/config"
	"github.com/vovakirdan/tui-rpsls/internal/core"
	"github.com/vovakirdan/tui-rpsls/internal/registry"
)

// isolate keeps user and working-directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	SetWinningScore(0)
	t.Cleanup(func() {
		SetConfigPath("")
		SetWinningScore(0)
	})
}

func newTestGame(t *testing.T, v Variant, agent Chooser) *Game {
	t.Helper()
	isolate(t)
	g := NewWithChooser(v, agent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameRegistered(t *testing.T) {
	for _, v := range Variants() {
		require.True(t, registry.Exists(v.ID))
		g, err := registry.Create(v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.Title, g.Title())
	}
}

func TestGameQuickThrowWinsMatch(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Scissors))

	for i := 1; i <= 4; i++ {
		res := press(g, core.ActionChoice1)
		assert.False(t, res.Concluded)
		assert.Equal(t, i, res.State.Score)
	}

	res := press(g, core.ActionChoice1)
	assert.True(t, res.Concluded)
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, 5, res.State.Score)
	assert.Equal(t, 0, res.State.OpponentScore)

	// Further throws are ignored once the match is over.
	res = press(g, core.ActionChoice1)
	assert.False(t, res.Concluded)
	assert.Equal(t, 5, res.State.Score)
	assert.Equal(t, 5, g.Match().Rounds)
}

func TestGameCursorAndConfirm(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Rock))

	press(g, core.ActionLeft) // wraps to Spock
	res := press(g, core.ActionConfirm)
	assert.Equal(t, 1, res.State.Score)

	last, ok := g.LastRound()
	require.True(t, ok)
	assert.Equal(t, Round{Player: Spock, Agent: Rock, Outcome: PlayerWins}, last)

	press(g, core.ActionRight) // wraps to Rock
	press(g, core.ActionConfirm)
	last, _ = g.LastRound()
	assert.Equal(t, Tie, last.Outcome)
}

func TestGameChoiceOutsideVariantIgnored(t *testing.T) {
	g := newTestGame(t, Original, NewSequence(Rock))

	res := press(g, core.ActionChoice5)
	assert.Equal(t, 0, res.State.Rounds)

	press(g, core.ActionChoice2)
	last, ok := g.LastRound()
	require.True(t, ok)
	assert.Equal(t, Paper, last.Player)
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Paper))

	for range 5 {
		press(g, core.ActionChoice1)
	}
	require.True(t, g.State().GameOver)
	assert.False(t, g.State().Won)

	res := press(g, core.ActionRestart)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.OpponentScore)
	assert.Empty(t, g.History())
	_, ok := g.LastRound()
	assert.False(t, ok)
}

func TestGameHistoryIsBounded(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Rock))

	for range 8 {
		press(g, core.ActionChoice1) // ties forever
	}
	assert.Len(t, g.History(), 5)
	assert.Equal(t, 8, g.State().Rounds)
}

func TestGameWinningScoreOverride(t *testing.T) {
	isolate(t)
	SetWinningScore(2)

	g := NewWithChooser(Classic, NewSequence(Scissors))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})

	press(g, core.ActionChoice1)
	res := press(g, core.ActionChoice1)
	assert.True(t, res.Concluded)
}

func TestGameConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  winning_score: 1\ndisplay:\n  history_rows: 0\n"), 0o600))
	SetConfigPath(path)

	g := NewWithChooser(Classic, NewSequence(Paper))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})

	res := press(g, core.ActionChoice1)
	assert.True(t, res.Concluded)
	assert.Empty(t, g.History())
}

// agentHands throws Rock n times and returns what the agent played.
func agentHands(t *testing.T, g *Game, n int) []Hand {
	t.Helper()
	hands := make([]Hand, 0, n)
	for range n {
		press(g, core.ActionChoice1)
		last, ok := g.LastRound()
		require.True(t, ok)
		hands = append(hands, last.Agent)
	}
	return hands
}

func newSeededGame(seed int64) *Game {
	g := New(Classic)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func TestGameSeedReplaysAgent(t *testing.T) {
	isolate(t)
	SetWinningScore(config.MaxWinningScore)

	first := agentHands(t, newSeededGame(99), 30)
	second := agentHands(t, newSeededGame(99), 30)
	assert.Equal(t, first, second)

	other := agentHands(t, newSeededGame(100), 30)
	assert.NotEqual(t, first, other)
}

func TestGameRestartDrawsNewAgentStream(t *testing.T) {
	isolate(t)
	SetWinningScore(config.MaxWinningScore)

	g := newSeededGame(99)
	first := agentHands(t, g, 30)

	press(g, core.ActionRestart)
	require.Zero(t, g.State().Rounds)
	afterRestart := agentHands(t, g, 30)
	assert.NotEqual(t, first, afterRestart)

	// A new session with the same seed starts from the first stream again.
	assert.Equal(t, first, agentHands(t, newSeededGame(99), 30))
}

func TestGameRejectedThrowIsReported(t *testing.T) {
	g := newTestGame(t, Classic, ChooserFunc(func() Hand { return Hand(42) }))

	res := press(g, core.ActionChoice1)
	assert.False(t, res.Concluded)
	assert.Zero(t, res.State.Rounds)
	assert.ErrorIs(t, g.Err(), ErrInvalidHand)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Throw rejected")

	press(g, core.ActionRestart)
	assert.NoError(t, g.Err())
}

func TestGameStepReportsStateAfterThrow(t *testing.T) {
	g := newTestGame(t, Original, NewSequence(Paper))

	res := press(g, core.ActionChoice3) // Scissors cuts Paper
	assert.Equal(t, g.State(), res.State)
	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, 1, res.State.Rounds)

	res = press(g, core.ActionChoice1) // Paper covers Rock
	assert.Equal(t, g.State(), res.State)
	assert.Equal(t, 1, res.State.OpponentScore)
	assert.Equal(t, 2, res.State.Rounds)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Scissors))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "ROCK PAPER SCISSORS LIZARD SPOCK")
	assert.Contains(t, out, "Score  You 0 : 0 Agent")
	assert.Contains(t, out, "You: —   Agent: —")
	assert.Contains(t, out, "Make a move")
	assert.Contains(t, out, ">  1 Rock  <")
	assert.Contains(t, screen.Row(10), strings.Repeat("─", 36))

	press(g, core.ActionChoice1)
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "You: Rock   Agent: Scissors")
	assert.Contains(t, out, "Rock crushes Scissors - you win the round")
	assert.Contains(t, out, "Recent rounds")

	for range 4 {
		press(g, core.ActionChoice1)
	}
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "YOU WIN THE MATCH")
	assert.Contains(t, out, "5 : 0  in 5 rounds")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, Classic, NewSequence(Rock))
	g.Resize(30, 10)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))

	res := press(g, core.ActionChoice1)
	assert.Equal(t, 0, res.State.Rounds)
}
