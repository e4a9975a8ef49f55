package rpsls

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-rpsls/internal/core"
)

const (
	buttonWidth = 12 // "[3 Scissors]"
	buttonGap   = 1
	minHeight   = 18
	dialogW     = 34
	dialogH     = 7

	separatorWidth = 36
)

func minWidth(buttons int) int {
	return max(buttons*buttonWidth+(buttons-1)*buttonGap+2, 40)
}

// Render draws the board and, once the match is over, the result dialog.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", minWidth(len(g.variant.Hands)), minHeight)
		dst.DrawTextCenteredColor(dst.Height()/2, msg, core.ColorBrightRed)
		return
	}

	dst.DrawTextCenteredColor(1, strings.ToUpper(g.variant.Title), core.ColorBrightYellow)
	dst.DrawTextCenteredColor(2, fmt.Sprintf("First to %d", g.match.WinningScore), core.ColorGray)
	dst.DrawTextCenteredColor(4, fmt.Sprintf("Score  You %s Agent", g.match), core.ColorBrightWhite)

	g.drawButtons(dst, 6)

	you, agent := "—", "—"
	if g.last != nil {
		you, agent = g.last.Player.String(), g.last.Agent.String()
	}
	dst.DrawTextCentered(8, fmt.Sprintf("You: %s   Agent: %s", you, agent))
	g.drawResult(dst, 9)
	dst.DrawHLine((dst.Width()-separatorWidth)/2, 10, separatorWidth, '─')

	g.drawHistory(dst, 11)

	controls := "←/→ select  Enter throw  1-" + fmt.Sprint(len(g.variant.Hands)) + " quick  N new game  B menu  Q quit"
	dst.DrawTextCenteredColor(dst.Height()-1, controls, core.ColorGray)

	if g.match.Concluded() {
		g.drawDialog(dst)
	}
}

func (g *Game) drawButtons(dst *core.Screen, y int) {
	n := len(g.variant.Hands)
	total := n*buttonWidth + (n-1)*buttonGap
	x := (dst.Width() - total) / 2

	for i, h := range g.variant.Hands {
		label := fmt.Sprintf("%d %s", i+1, h)
		open, closing, color := "[", "]", core.ColorDefault
		if i == g.cursor {
			open, closing, color = ">", "<", core.ColorBrightYellow
		}
		pad := buttonWidth - 2 - len(label)
		text := open + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + closing
		dst.DrawTextColor(x, y, text, color)
		x += buttonWidth + buttonGap
	}
}

func (g *Game) summary(r Round) string {
	if g.cfg.Display.ShowVerbs {
		return r.Summary()
	}
	return r.PlainSummary()
}

func (g *Game) drawResult(dst *core.Screen, y int) {
	if g.err != nil {
		dst.DrawTextCenteredColor(y, "Throw rejected: "+g.err.Error(), core.ColorBrightRed)
		return
	}
	if g.last == nil {
		dst.DrawTextCenteredColor(y, "Make a move", core.ColorGray)
		return
	}
	dst.DrawTextCenteredColor(y, g.summary(*g.last), outcomeColor(g.last.Outcome, g.flash > 0))
}

func (g *Game) drawHistory(dst *core.Screen, y int) {
	if len(g.history) == 0 {
		return
	}
	dst.DrawTextCenteredColor(y, "Recent rounds", core.ColorGray)
	for i, r := range g.history {
		row := y + 1 + i
		if row >= dst.Height()-2 {
			break
		}
		number := g.match.Rounds - i
		line := fmt.Sprintf("#%-3d %-8s vs %-8s  %s", number, r.Player, r.Agent, outcomeLabel(r.Outcome))
		dst.DrawTextCenteredColor(row, line, outcomeColor(r.Outcome, false))
	}
}

func (g *Game) drawDialog(dst *core.Screen) {
	box := core.CenteredRect(dst.Width(), dst.Height(), dialogW, dialogH)
	dst.DrawRect(box, ' ')

	title, color := "AGENT WINS THE MATCH", core.ColorBrightRed
	if g.match.Winner() == SidePlayer {
		title, color = "YOU WIN THE MATCH", core.ColorBrightGreen
	}
	dst.DrawBox(box, color)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}
	center(box.Y+1, title, color)
	center(box.Y+3, fmt.Sprintf("%s  in %d rounds", g.match, g.match.Rounds), core.ColorBrightWhite)
	center(box.Y+5, "N: new game  B: menu", core.ColorGray)
}

func outcomeLabel(o Outcome) string {
	switch o {
	case PlayerWins:
		return "you"
	case AgentWins:
		return "agent"
	default:
		return "tie"
	}
}

func outcomeColor(o Outcome, bright bool) core.Color {
	switch o {
	case PlayerWins:
		if bright {
			return core.ColorBrightGreen
		}
		return core.ColorGreen
	case AgentWins:
		if bright {
			return core.ColorBrightRed
		}
		return core.ColorRed
	default:
		if bright {
			return core.ColorBrightYellow
		}
		return core.ColorYellow
	}
}
