package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/input"
)

// KeyMapper translates Bubble Tea key messages to key codes and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// IsQuit reports whether msg asks to leave the program.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// KeyCode translates a key message to the code the input mapper understands.
// Returns false for keys the game does not use.
func (km *KeyMapper) KeyCode(msg tea.KeyMsg) (int, bool) {
	switch msg.String() {
	case "left", "a":
		return input.KeyLeft, true
	case "right", "d":
		return input.KeyRight, true
	case " ", "space":
		return input.KeySpace, true
	case "enter":
		return input.KeyEnter, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker emulates key releases. Terminals only report presses (and
// auto-repeat presses while a key is held), so a key counts as held until
// no press has been seen for a number of ticks.
type HoldTracker struct {
	window int         // Ticks without a press before a key is released
	held   map[int]int // Key code -> ticks left
}

// HoldTicks converts a hold window to whole ticks at tickRate, never less
// than one.
func HoldTicks(window time.Duration, tickRate int) int {
	return max(int(window*time.Duration(tickRate)/time.Second), 1)
}

// NewHoldTracker creates a tracker that releases a key after window ticks
// without a press. The window has to outlast the delay before the terminal
// starts auto-repeating, or a held key is released and pressed again.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window: window,
		held:   make(map[int]int),
	}
}

// Press records a press of code. Returns true if the key was not already
// held, i.e. this press is a key-down.
func (h *HoldTracker) Press(code int) bool {
	_, wasHeld := h.held[code]
	h.held[code] = h.window
	return !wasHeld
}

// Release forgets code immediately. Returns true if it was held.
func (h *HoldTracker) Release(code int) bool {
	if _, ok := h.held[code]; !ok {
		return false
	}
	delete(h.held, code)
	return true
}

// ReleaseAll forgets every held key without reporting key-ups and returns
// the codes dropped, in ascending order.
func (h *HoldTracker) ReleaseAll() []int {
	codes := make([]int, 0, len(h.held))
	for code := range h.held {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		h.Release(code)
	}
	return codes
}

// Tick advances one tick and returns the codes released by it, in
// ascending order.
func (h *HoldTracker) Tick() []int {
	var released []int
	for code, left := range h.held {
		left--
		if left <= 0 {
			delete(h.held, code)
			released = append(released, code)
			continue
		}
		h.held[code] = left
	}
	sort.Ints(released)
	return released
}
