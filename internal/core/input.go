package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - previous choice
	ActionRight          // Right arrow, l - next choice
	ActionConfirm        // Enter, Space - throw the highlighted choice
	ActionBack           // B, Escape - back to menu
	ActionRestart        // N - new game
	ActionQuit           // Q, Ctrl+C
	ActionChoice1        // 1..5 - throw a choice directly
	ActionChoice2
	ActionChoice3
	ActionChoice4
	ActionChoice5
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionChoice1: "Choice1",
	ActionChoice2: "Choice2",
	ActionChoice3: "Choice3",
	ActionChoice4: "Choice4",
	ActionChoice5: "Choice5",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ChoiceIndex returns the zero-based index for ActionChoice1..5.
func (a Action) ChoiceIndex() (int, bool) {
	if a < ActionChoice1 || a > ActionChoice5 {
		return 0, false
	}
	return int(a - ActionChoice1), true
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Choice returns the first direct-choice action in the frame.
func (f InputFrame) Choice() (int, bool) {
	for a := ActionChoice1; a <= ActionChoice5; a++ {
		if f.Has(a) {
			return a.ChoiceIndex()
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
