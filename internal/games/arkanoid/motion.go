package arkanoid

// Advance moves the paddle by one tick and clamps it to the field.
//
// While either force-stop flag is set the paddle does not move at all; it
// stays frozen until steering in the opposite direction clears the flag.
// Reaching a wall reports HitLeftWall or HitRightWall so the caller can set
// the matching flag.
func (p *Paddle) Advance(st State, w World) MoveEvent {
	if st.ForceStopLeft || st.ForceStopRight {
		return MoveNone
	}

	p.X += p.DX

	if p.X <= 0 {
		p.X = 0
		return HitLeftWall
	}
	if p.X+p.Width >= w.Field.Width {
		p.X = w.Field.Width - p.Width
		return HitRightWall
	}
	return MoveNone
}

// ResolveCollisions is a no-op for the paddle: walls are handled by Advance
// and the ball resolves its own contact with the paddle.
func (p *Paddle) ResolveCollisions(World) Report {
	return Report{}
}

// Advance moves the ball by one tick.
//
// Before launch the ball rides on the paddle. If the paddle is frozen against
// a wall the ball is pinned above the paddle's center at that wall; otherwise
// it follows whatever horizontal nudge the steering intents gave it. Once
// launched, X grows with DX and Y shrinks as DY grows (DY > 0 is upward).
func (b *Ball) Advance(st State, w World) MoveEvent {
	if !st.BallIsLaunched {
		switch {
		case st.ForceStopLeft:
			b.X = b.restOffsetLeft(w.Paddle)
			return MoveNone
		case st.ForceStopRight:
			b.X = w.Field.Width - b.restOffsetRight(w.Paddle)
			return MoveNone
		}
	}

	b.X += b.DX
	b.Y -= b.DY
	return MoveNone
}

// restOffsetLeft is the ball's X when the paddle rests against the left wall.
func (b *Ball) restOffsetLeft(p *Paddle) float64 {
	return p.Width/2 - b.Width/2
}

// restOffsetRight is the distance from the right wall to the ball's X when
// the paddle rests against the right wall.
func (b *Ball) restOffsetRight(p *Paddle) float64 {
	return p.Width/2 + b.Width/2
}
