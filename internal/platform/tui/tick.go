// Package tui provides the Bubble Tea integration for the game platform.
// It runs the terminal loop, maps keys to actions and hosts sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives Game.Step at the configured tick rate.
// Each GameModel only accepts ticks carrying its own generation.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
