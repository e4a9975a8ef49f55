package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rpsls/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var choiceKeys = map[string]core.Action{
	"1": core.ActionChoice1,
	"2": core.ActionChoice2,
	"3": core.ActionChoice3,
	"4": core.ActionChoice4,
	"5": core.ActionChoice5,
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	key := msg.String()
	if a, ok := choiceKeys[key]; ok {
		return a
	}

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "h", "a":
		return core.ActionLeft
	case "right", "l", "d":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "n":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction is a menu-level action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}
	return MenuActionNone
}
