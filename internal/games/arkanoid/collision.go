package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// axisTolerance is the band, in pixels, used to decide whether a block was
// struck on its top or bottom face.
const axisTolerance = 5.0

// WallEvent reports which wall the ball touched during a tick.
type WallEvent int

const (
	WallNone WallEvent = iota
	WallLeft
	WallRight
	WallTop
	WallBreached // Ball reached the bottom edge; the round is lost
)

// String returns a human-readable name for the event.
func (e WallEvent) String() string {
	switch e {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBreached:
		return "breached"
	default:
		return "none"
	}
}

// Report summarises the collisions resolved in one tick.
type Report struct {
	BlocksHit     int
	PaddleBounced bool
	Wall          WallEvent
}

// Merge combines the reports of two movers. The later wall event wins
// unless it is WallNone.
func (r Report) Merge(o Report) Report {
	r.BlocksHit += o.BlocksHit
	r.PaddleBounced = r.PaddleBounced || o.PaddleBounced
	if o.Wall != WallNone {
		r.Wall = o.Wall
	}
	return r
}

// ResolveCollisions runs the ball against every block, then the paddle, then
// the walls, in that fixed order.
func (b *Ball) ResolveCollisions(w World) Report {
	var r Report

	for i := range w.Blocks {
		if b.HitBlock(&w.Blocks[i]) {
			r.BlocksHit++
		}
	}

	if w.Paddle != nil && b.HitPaddle(w.Paddle) {
		r.PaddleBounced = true
	}

	r.Wall = b.HitWalls(w.Field)
	return r
}

// Probe returns the ball's box one step ahead, at (X+DX, Y-DY).
// Contact with blocks and the paddle is tested against this box.
func (b *Ball) Probe() core.Rect {
	return b.Rect().Translate(b.DX, -b.DY)
}

// HitBlock destroys block if the ball's probe overlaps it and bounces the ball.
// Inactive blocks are ignored. Returns true if the block was destroyed.
//
// The ball flips DY when its leading edge is within axisTolerance of the
// block's top or bottom face and flips DX otherwise. A hit that matches
// neither face band, including a clean corner hit, therefore bounces
// horizontally.
func (b *Ball) HitBlock(block *Block) bool {
	if !block.Active || !b.Probe().Intersects(block.Rect()) {
		return false
	}

	block.Active = false

	if b.nearHorizontalFace(block) {
		b.DY = -b.DY
	} else {
		b.DX = -b.DX
	}
	return true
}

// nearHorizontalFace reports whether the ball's vertical edge, offset by half
// its height, sits inside the tolerance band of the block's bottom or top face.
func (b *Ball) nearHorizontalFace(block *Block) bool {
	lead := b.Y + b.DY
	half := b.Height / 2

	bottom := block.Y + block.Height
	upper := lead - half
	if upper+axisTolerance > bottom && upper-axisTolerance < bottom {
		return true
	}

	lower := lead + b.Height + half
	return lower+axisTolerance > block.Y && lower-axisTolerance < block.Y
}

// HitPaddle bounces the ball off the paddle if the probe overlaps it.
//
// On contact the ball first takes on the paddle's horizontal motion. A ball
// already moving upward is left alone after that; otherwise it leaves at half
// speed upward with DX = Speed * TouchOffset, so where the ball lands on the
// paddle steers it. Returns true if the ball bounced.
func (b *Ball) HitPaddle(p *Paddle) bool {
	if !b.Probe().Intersects(p.Rect()) {
		return false
	}

	b.X += p.DX

	if b.DY > 0 {
		return false
	}

	touchX := b.X + b.Width/2
	b.DY = b.Speed / 2
	b.DX = b.Speed * p.TouchOffset(touchX)
	return true
}

// HitWalls checks the field edges in the order left, right, top, bottom and
// handles only the first match. Side and top walls clamp the ball and send it
// back at half speed. The bottom edge is not a wall: the ball is left where it
// is and WallBreached is reported.
func (b *Ball) HitWalls(f Field) WallEvent {
	switch {
	case b.X <= 0:
		b.X = 0
		b.DX = b.Speed / 2
		return WallLeft
	case b.X+b.Width >= f.Width:
		b.X = f.Width - b.Width
		b.DX = -b.Speed / 2
		return WallRight
	case b.Y <= 0:
		b.Y = 0
		b.DY = -b.Speed / 2
		return WallTop
	case b.Y+b.Height >= f.Height:
		return WallBreached
	}
	return WallNone
}
