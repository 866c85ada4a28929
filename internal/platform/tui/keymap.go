package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/purrfect-leap/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "space", "enter", "up", "w":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionCancel, false
	}
	return core.ActionNone, false
}

// HoldTracker emulates held direction keys. Terminals only report presses
// (and auto-repeat), so each press keeps its direction held for a number of
// ticks. Pressing the opposite direction releases the first one.
type HoldTracker struct {
	holdTicks int
	left      int // Ticks left holding left
	right     int // Ticks left holding right
}

// NewHoldTracker creates a tracker that holds a direction for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{holdTicks: max(holdTicks, 1)}
}

// Press records a key press. Non-direction actions are ignored.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	}
}

// Apply sets the held directions on frame and consumes one tick of hold.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Release drops any held direction.
func (h *HoldTracker) Release() {
	h.left = 0
	h.right = 0
}
