package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arkanoid/internal/input"
)

func TestPointerEventPress(t *testing.T) {
	msg := tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	ev, ok := PointerEvent(msg, 80, 24)
	require.True(t, ok)

	assert.Equal(t, input.EventPointerDown, ev.Kind)
	assert.InDelta(t, 3.5, ev.PageX, 1e-9)
	assert.InDelta(t, 4.5, ev.PageY, 1e-9)
	assert.InDelta(t, 80.0, ev.SurfaceWidth, 1e-9)
	assert.InDelta(t, 24.0, ev.SurfaceHeight, 1e-9)
}

func TestPointerEventRelease(t *testing.T) {
	for _, button := range []tea.MouseButton{tea.MouseButtonLeft, tea.MouseButtonNone} {
		msg := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: button}

		ev, ok := PointerEvent(msg, 80, 24)
		require.True(t, ok)
		assert.Equal(t, input.EventPointerUp, ev.Kind)
	}
}

func TestPointerEventIgnoresOtherButtons(t *testing.T) {
	tests := []tea.MouseMsg{
		{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	}

	for _, msg := range tests {
		_, ok := PointerEvent(msg, 80, 24)
		assert.False(t, ok, "message %+v should be ignored", msg)
	}
}

func TestPointerEventScalesToField(t *testing.T) {
	// The cell center of the last column maps into the right edge of the field.
	msg := tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	ev, ok := PointerEvent(msg, 80, 24)
	require.True(t, ok)

	x, y := input.FieldPoint(ev, testField)
	assert.InDelta(t, 1908.0, x, 1e-9)
	assert.InDelta(t, 1057.5, y, 1e-9)
}
