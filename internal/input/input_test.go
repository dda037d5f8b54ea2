package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

var field = arkanoid.Field{Width: 1920, Height: 1080}

// halfSize returns a pointer event on a surface drawn at half size with an
// offset of (10, 20), at field coordinates (fx, fy).
func halfSize(kind EventKind, fx, fy float64) RawEvent {
	return RawEvent{
		Kind:          kind,
		PageX:         10 + fx/2,
		PageY:         20 + fy/2,
		OffsetLeft:    10,
		OffsetTop:     20,
		SurfaceWidth:  960,
		SurfaceHeight: 540,
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		code     int
		down, up core.Intent
		reset    core.Intent
	}{
		{code: KeySpace, down: core.IntentLaunch, up: core.IntentNone, reset: core.IntentReset},
		{code: KeyEnter, down: core.IntentNone, up: core.IntentNone, reset: core.IntentReset},
		{code: KeyLeft, down: core.IntentMoveLeftStart, up: core.IntentMoveLeftStop, reset: core.IntentNone},
		{code: KeyA, down: core.IntentMoveLeftStart, up: core.IntentMoveLeftStop, reset: core.IntentNone},
		{code: KeyRight, down: core.IntentMoveRightStart, up: core.IntentMoveRightStop, reset: core.IntentNone},
		{code: KeyD, down: core.IntentMoveRightStart, up: core.IntentMoveRightStop, reset: core.IntentNone},
		{code: 81, down: core.IntentNone, up: core.IntentNone, reset: core.IntentNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.down, KeyDown(tt.code), "KeyDown(%d)", tt.code)
		assert.Equal(t, tt.up, KeyUp(tt.code), "KeyUp(%d)", tt.code)
		assert.Equal(t, tt.reset, ResetKey(tt.code), "ResetKey(%d)", tt.code)
	}
}

func TestFieldPointScaling(t *testing.T) {
	x, y := FieldPoint(halfSize(EventPointerDown, 885, 1000), field)
	assert.Equal(t, 885.0, x)
	assert.Equal(t, 1000.0, y)

	// Unknown surface size means native size
	x, y = FieldPoint(RawEvent{PageX: 50, PageY: 60, OffsetLeft: 10, OffsetTop: 10}, field)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 50.0, y)
}

func TestPointerDown(t *testing.T) {
	tests := []struct {
		name   string
		fx, fy float64
		want   core.Intent
	}{
		{name: "left control", fx: 885, fy: 1000, want: core.IntentMoveLeftStart},
		{name: "left control edge", fx: 840, fy: 960, want: core.IntentMoveLeftStart},
		{name: "right control", fx: 1000, fy: 1000, want: core.IntentMoveRightStart},
		{name: "right control edge", fx: 1080, fy: 1050, want: core.IntentMoveRightStart},
		{name: "gap between controls", fx: 960, fy: 1000, want: core.IntentNone},
		{name: "above paddle launches", fx: 960, fy: 500, want: core.IntentLaunch},
		{name: "below paddle", fx: 100, fy: 1000, want: core.IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerDown(halfSize(EventPointerDown, tt.fx, tt.fy), field, 900)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPointerUp(t *testing.T) {
	assert.Equal(t, core.IntentMoveLeftStop, PointerUp(arkanoid.DirectionLeft))
	assert.Equal(t, core.IntentMoveRightStop, PointerUp(arkanoid.DirectionRight))
	assert.Equal(t, core.IntentNone, PointerUp(arkanoid.DirectionNone))
}

func TestReplayPointer(t *testing.T) {
	assert.Equal(t, core.IntentReset, ReplayPointer(halfSize(EventPointerUp, 960, 780), field))
	assert.Equal(t, core.IntentReset, ReplayPointer(halfSize(EventPointerUp, 870, 750), field))
	assert.Equal(t, core.IntentNone, ReplayPointer(halfSize(EventPointerUp, 960, 700), field))
	assert.Equal(t, core.IntentNone, ReplayPointer(halfSize(EventPointerUp, 1100, 780), field))
}

func TestMapRoutesBySet(t *testing.T) {
	ctx := Context{Field: field, PaddleY: 900, Direction: arkanoid.DirectionRight}

	tests := []struct {
		name string
		set  core.ListenerSet
		ev   RawEvent
		want core.Intent
	}{
		{name: "play key down", set: core.ListenersPlay, ev: RawEvent{Kind: EventKeyDown, Code: KeyLeft}, want: core.IntentMoveLeftStart},
		{name: "play key up", set: core.ListenersPlay, ev: RawEvent{Kind: EventKeyUp, Code: KeyD}, want: core.IntentMoveRightStop},
		{name: "play space up does not reset", set: core.ListenersPlay, ev: RawEvent{Kind: EventKeyUp, Code: KeySpace}, want: core.IntentNone},
		{name: "play pointer down", set: core.ListenersPlay, ev: halfSize(EventPointerDown, 960, 300), want: core.IntentLaunch},
		{name: "play pointer up", set: core.ListenersPlay, ev: halfSize(EventPointerUp, 0, 0), want: core.IntentMoveRightStop},
		{name: "reset key up", set: core.ListenersReset, ev: RawEvent{Kind: EventKeyUp, Code: KeyEnter}, want: core.IntentReset},
		{name: "reset ignores key down", set: core.ListenersReset, ev: RawEvent{Kind: EventKeyDown, Code: KeySpace}, want: core.IntentNone},
		{name: "reset replay click", set: core.ListenersReset, ev: halfSize(EventPointerUp, 960, 780), want: core.IntentReset},
		{name: "reset ignores steering", set: core.ListenersReset, ev: halfSize(EventPointerDown, 885, 1000), want: core.IntentNone},
		{name: "detached", set: core.ListenersNone, ev: RawEvent{Kind: EventKeyDown, Code: KeySpace}, want: core.IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Map(tt.set, tt.ev, ctx))
		})
	}
}
