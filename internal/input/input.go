// Package input maps raw key and pointer events to player intents.
// Everything here is a pure function; the platform decides which listener
// set is attached and feeds events through Map.
package input

import (
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// Key codes understood by the mapper.
const (
	KeyEnter = 13
	KeySpace = 32
	KeyLeft  = 37
	KeyRight = 39
	KeyA     = 65
	KeyD     = 68
)

// EventKind identifies a raw input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventPointerUp
)

// RawEvent is a key or pointer event as delivered by the platform.
//
// Pointer coordinates are page coordinates. The drawing surface starts at
// (OffsetLeft, OffsetTop) and is displayed at SurfaceWidth x SurfaceHeight,
// which may differ from the field's native size.
type RawEvent struct {
	Kind EventKind
	Code int

	PageX, PageY                float64
	OffsetLeft, OffsetTop       float64
	SurfaceWidth, SurfaceHeight float64
}

// Context is the part of the game state the mapper needs.
type Context struct {
	Field     arkanoid.Field
	PaddleY   float64
	Direction arkanoid.Direction
}

// KeyDown maps a key press while playing.
func KeyDown(code int) core.Intent {
	switch code {
	case KeySpace:
		return core.IntentLaunch
	case KeyLeft, KeyA:
		return core.IntentMoveLeftStart
	case KeyRight, KeyD:
		return core.IntentMoveRightStart
	default:
		return core.IntentNone
	}
}

// KeyUp maps a key release while playing.
func KeyUp(code int) core.Intent {
	switch code {
	case KeyLeft, KeyA:
		return core.IntentMoveLeftStop
	case KeyRight, KeyD:
		return core.IntentMoveRightStop
	default:
		return core.IntentNone
	}
}

// ResetKey maps a key release once the round is over.
func ResetKey(code int) core.Intent {
	switch code {
	case KeySpace, KeyEnter:
		return core.IntentReset
	default:
		return core.IntentNone
	}
}

// FieldPoint converts a pointer event to field pixels.
// A surface with unknown size is treated as drawn at native size.
func FieldPoint(ev RawEvent, f arkanoid.Field) (float64, float64) {
	x := ev.PageX - ev.OffsetLeft
	y := ev.PageY - ev.OffsetTop

	if ev.SurfaceWidth > 0 {
		x /= ev.SurfaceWidth / f.Width
	}
	if ev.SurfaceHeight > 0 {
		y /= ev.SurfaceHeight / f.Height
	}
	return x, y
}

// PointerDown maps a press while playing. The steering controls win over
// the launch area; anything above the paddle launches the ball.
func PointerDown(ev RawEvent, f arkanoid.Field, paddleY float64) core.Intent {
	x, y := FieldPoint(ev, f)

	switch {
	case arkanoid.LeftControlRect(f).ContainsClosed(x, y):
		return core.IntentMoveLeftStart
	case arkanoid.RightControlRect(f).ContainsClosed(x, y):
		return core.IntentMoveRightStart
	case y < paddleY:
		return core.IntentLaunch
	default:
		return core.IntentNone
	}
}

// PointerUp stops whichever direction the paddle is moving in.
func PointerUp(dir arkanoid.Direction) core.Intent {
	switch dir {
	case arkanoid.DirectionLeft:
		return core.IntentMoveLeftStop
	case arkanoid.DirectionRight:
		return core.IntentMoveRightStop
	default:
		return core.IntentNone
	}
}

// ReplayPointer maps a click once the round is over.
func ReplayPointer(ev RawEvent, f arkanoid.Field) core.Intent {
	x, y := FieldPoint(ev, f)
	if arkanoid.ReplayRect(f).ContainsClosed(x, y) {
		return core.IntentReset
	}
	return core.IntentNone
}

// Map routes ev through the given listener set. Events the set does not
// listen for map to IntentNone.
func Map(set core.ListenerSet, ev RawEvent, ctx Context) core.Intent {
	switch set {
	case core.ListenersPlay:
		switch ev.Kind {
		case EventKeyDown:
			return KeyDown(ev.Code)
		case EventKeyUp:
			return KeyUp(ev.Code)
		case EventPointerDown:
			return PointerDown(ev, ctx.Field, ctx.PaddleY)
		case EventPointerUp:
			return PointerUp(ctx.Direction)
		}
	case core.ListenersReset:
		switch ev.Kind {
		case EventKeyUp:
			return ResetKey(ev.Code)
		case EventPointerUp:
			return ReplayPointer(ev, ctx.Field)
		}
	}
	return core.IntentNone
}
