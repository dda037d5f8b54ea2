package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyCode(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		code int
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft, true},
		{"a", runeKey('a'), input.KeyLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, input.KeyRight, true},
		{"d", runeKey('d'), input.KeyRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, input.KeySpace, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEnter, true},
		{"unused", runeKey('x'), 0, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := km.KeyCode(tt.msg)
			if ok != tt.ok || code != tt.code {
				t.Errorf("KeyCode(%q) = (%d, %v), want (%d, %v)", tt.msg.String(), code, ok, tt.code, tt.ok)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsQuit(runeKey('q')) {
		t.Error("q should quit")
	}
	if !km.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c should quit")
	}
	if km.IsQuit(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("esc should not quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(3)

	if !h.Press(input.KeyLeft) {
		t.Fatal("first press should be a key-down")
	}
	if h.Press(input.KeyLeft) {
		t.Error("auto-repeat press should not be a key-down")
	}
}

func TestHoldTrackerReleasesAfterWindow(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(input.KeyRight)

	for i := 0; i < 2; i++ {
		if released := h.Tick(); len(released) != 0 {
			t.Fatalf("tick %d released %v too early", i+1, released)
		}
	}

	released := h.Tick()
	if len(released) != 1 || released[0] != input.KeyRight {
		t.Fatalf("third tick released %v, want [%d]", released, input.KeyRight)
	}
	if !h.Press(input.KeyRight) {
		t.Error("press after release should be a new key-down")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(input.KeySpace)

	for i := 0; i < 10; i++ {
		if released := h.Tick(); len(released) != 0 {
			t.Fatalf("key released at tick %d despite repeats", i+1)
		}
		if h.Press(input.KeySpace) {
			t.Fatalf("repeat at tick %d reported as key-down", i+1)
		}
	}
}

func TestHoldTrackerReleasesInOrder(t *testing.T) {
	h := NewHoldTracker(1)
	h.Press(input.KeyRight)
	h.Press(input.KeyEnter)
	h.Press(input.KeyLeft)

	released := h.Tick()
	want := []int{input.KeyEnter, input.KeyLeft, input.KeyRight}
	if len(released) != len(want) {
		t.Fatalf("released %v, want %v", released, want)
	}
	for i := range want {
		if released[i] != want[i] {
			t.Fatalf("released %v, want %v", released, want)
		}
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(input.KeyLeft)

	if !h.Release(input.KeyLeft) {
		t.Error("Release should report a held key")
	}
	if h.Release(input.KeyLeft) {
		t.Error("Release should report false for a key that is not held")
	}
	if len(h.Tick()) != 0 {
		t.Error("released key should not be reported by Tick")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(input.KeyRight)
	h.Press(input.KeyLeft)

	dropped := h.ReleaseAll()
	if len(dropped) != 2 || dropped[0] != input.KeyLeft || dropped[1] != input.KeyRight {
		t.Fatalf("ReleaseAll() = %v, want [%d %d]", dropped, input.KeyLeft, input.KeyRight)
	}
	if len(h.Tick()) != 0 {
		t.Error("dropped keys should not be reported by Tick")
	}
	if len(h.ReleaseAll()) != 0 {
		t.Error("second ReleaseAll should drop nothing")
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		window   time.Duration
		tickRate int
		expected int
	}{
		{DefaultHoldWindow, 60, 36},
		{DefaultHoldWindow, 30, 18},
		{50 * time.Millisecond, 60, 3},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
	}

	for _, tc := range tests {
		if got := HoldTicks(tc.window, tc.tickRate); got != tc.expected {
			t.Errorf("HoldTicks(%v, %d) = %d, expected %d", tc.window, tc.tickRate, got, tc.expected)
		}
	}
}

// A key held down produces one press, then nothing until the keyboard's
// repeat delay has passed, then a press every repeat interval.
func TestHoldTrackerSurvivesRepeatDelay(t *testing.T) {
	const tickRate = 60
	h := NewHoldTracker(HoldTicks(DefaultHoldWindow, tickRate))

	repeatDelay := int(500 * time.Millisecond * tickRate / time.Second) // 30 ticks
	const repeatEvery = 2

	downs, ups := 0, 0
	if h.Press(input.KeyLeft) {
		downs++
	}
	for tick := 1; tick <= 120; tick++ {
		ups += len(h.Tick())
		if tick >= repeatDelay && (tick-repeatDelay)%repeatEvery == 0 {
			if h.Press(input.KeyLeft) {
				downs++
			}
		}
	}

	if downs != 1 || ups != 0 {
		t.Fatalf("one continuous hold gave %d key-downs and %d key-ups, want 1 and 0", downs, ups)
	}

	// Letting go releases the key once the window runs out
	for tick := 0; tick < HoldTicks(DefaultHoldWindow, tickRate); tick++ {
		ups += len(h.Tick())
	}
	if ups != 1 {
		t.Errorf("release after letting go gave %d key-ups, want 1", ups)
	}
}

