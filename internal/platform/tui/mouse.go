package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/input"
)

// PointerEvent converts a left-button mouse message to a raw pointer event.
// The playfield occupies the top-left width x height cells; the cell
// center is used as the pointer position so the input mapper's scaling
// turns cells into field pixels.
//
// Legacy X10 mouse reporting does not say which button was released, so a
// release with no button counts as a left release.
func PointerEvent(msg tea.MouseMsg, width, height int) (input.RawEvent, bool) {
	var kind input.EventKind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		kind = input.EventPointerDown
	case msg.Action == tea.MouseActionRelease &&
		(msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone):
		kind = input.EventPointerUp
	default:
		return input.RawEvent{}, false
	}

	return input.RawEvent{
		Kind:          kind,
		PageX:         float64(msg.X) + 0.5,
		PageY:         float64(msg.Y) + 0.5,
		SurfaceWidth:  float64(width),
		SurfaceHeight: float64(height),
	}, true
}
