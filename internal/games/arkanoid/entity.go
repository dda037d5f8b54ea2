package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// Entity is the shape shared by the paddle and the ball.
// Coordinates are field pixels with the origin at the top-left corner.
type Entity struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Magnitude of motion, fixed for the entity's lifetime
	DX, DY        float64 // Velocity per tick; for the ball DY > 0 means upward
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Paddle is the player-controlled bar at the bottom of the field.
// Its Y never changes and DX is always -Speed, 0 or +Speed.
type Paddle struct {
	Entity
}

// TouchOffset maps a horizontal contact point to [-1, 1] across the paddle:
// -1 at the left edge, 0 at the center, 1 at the right edge.
// Points outside the paddle map outside that range.
func (p *Paddle) TouchOffset(x float64) float64 {
	return 2*(x-p.X)/p.Width - 1
}

// Ball is the single ball in play.
type Ball struct {
	Entity
}

// Block is a destructible brick. Active turns false once and never back.
type Block struct {
	X, Y          float64
	Width, Height float64
	Active        bool
}

// Rect returns the block's bounding box.
func (b *Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Field is the playing area; walls sit on its four edges.
type Field struct {
	Width, Height float64
}

// World is what a Movable sees during one call. It is rebuilt for every call
// and must not be retained.
type World struct {
	Field  Field
	Paddle *Paddle
	Blocks []Block
}

// MoveEvent reports what happened while advancing an entity.
type MoveEvent int

const (
	MoveNone     MoveEvent = iota
	HitLeftWall            // Clamped against the left wall
	HitRightWall           // Clamped against the right wall
)

// String returns a human-readable name for the event.
func (e MoveEvent) String() string {
	switch e {
	case HitLeftWall:
		return "left"
	case HitRightWall:
		return "right"
	default:
		return "none"
	}
}

// Movable is implemented by every entity that moves during a tick.
type Movable interface {
	// Advance moves the entity by one fixed step.
	Advance(st State, w World) MoveEvent

	// ResolveCollisions reacts to whatever the entity touches after moving.
	ResolveCollisions(w World) Report
}

var (
	_ Movable = (*Paddle)(nil)
	_ Movable = (*Ball)(nil)
)
