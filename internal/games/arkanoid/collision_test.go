package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBall(x, y, dx, dy float64) *Ball {
	return &Ball{Entity{X: x, Y: y, Width: 60, Height: 60, Speed: 24, DX: dx, DY: dy}}
}

func newTestBlock() *Block {
	return &Block{X: 195, Y: 105, Width: 180, Height: 60, Active: true}
}

func TestHitWallsPriority(t *testing.T) {
	field := Field{Width: 1920, Height: 1080}

	tests := []struct {
		name   string
		ball   *Ball
		want   WallEvent
		wantX  float64
		wantY  float64
		wantDX float64
		wantDY float64
	}{
		{
			name: "left and top at once fires left only",
			ball: newTestBall(-5, -5, -10, 10),
			want: WallLeft, wantX: 0, wantY: -5, wantDX: 12, wantDY: 10,
		},
		{
			name: "right",
			ball: newTestBall(1870, 500, 10, 10),
			want: WallRight, wantX: 1860, wantY: 500, wantDX: -12, wantDY: 10,
		},
		{
			name: "right and top at once fires right only",
			ball: newTestBall(1870, -3, 10, 10),
			want: WallRight, wantX: 1860, wantY: -3, wantDX: -12, wantDY: 10,
		},
		{
			name: "top",
			ball: newTestBall(100, -1, 5, 12),
			want: WallTop, wantX: 100, wantY: 0, wantDX: 5, wantDY: -12,
		},
		{
			name: "bottom is a breach without clamp",
			ball: newTestBall(100, 1030, 5, -12),
			want: WallBreached, wantX: 100, wantY: 1030, wantDX: 5, wantDY: -12,
		},
		{
			name: "inside the field",
			ball: newTestBall(100, 500, 5, -12),
			want: WallNone, wantX: 100, wantY: 500, wantDX: 5, wantDY: -12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ball.HitWalls(field)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantX, tt.ball.X)
			assert.Equal(t, tt.wantY, tt.ball.Y)
			assert.Equal(t, tt.wantDX, tt.ball.DX)
			assert.Equal(t, tt.wantDY, tt.ball.DY)
		})
	}
}

func TestTouchOffset(t *testing.T) {
	p := newTestPaddle(810, 0)

	assert.Equal(t, -1.0, p.TouchOffset(p.X))
	assert.Equal(t, 1.0, p.TouchOffset(p.X+p.Width))
	assert.Equal(t, 0.0, p.TouchOffset(p.X+p.Width/2))
	assert.Less(t, p.TouchOffset(p.X-30), -1.0, "offset is not clamped")
}

func TestHitPaddleBounce(t *testing.T) {
	tests := []struct {
		name    string
		ballX   float64
		paddleV float64
	}{
		{name: "center", ballX: 930},
		{name: "right half", ballX: 1020},
		{name: "left edge", ballX: 790},
		{name: "moving paddle", ballX: 930, paddleV: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle(810, tt.paddleV)
			b := newTestBall(tt.ballX, 850, 0, -12)

			require.True(t, b.HitPaddle(p))

			wantX := tt.ballX + tt.paddleV
			assert.Equal(t, wantX, b.X, "ball takes on the paddle's motion")
			assert.Equal(t, b.Speed/2, b.DY)
			assert.Equal(t, b.Speed*p.TouchOffset(wantX+b.Width/2), b.DX)
		})
	}
}

func TestHitPaddleIgnoresRisingBall(t *testing.T) {
	p := newTestPaddle(810, 24)
	b := newTestBall(930, 870, 3, 12)

	assert.False(t, b.HitPaddle(p))
	assert.Equal(t, 954.0, b.X, "overlap still carries the paddle's motion")
	assert.Equal(t, 3.0, b.DX)
	assert.Equal(t, 12.0, b.DY)
}

func TestHitPaddleMiss(t *testing.T) {
	p := newTestPaddle(810, 0)
	b := newTestBall(100, 850, 0, -12)

	assert.False(t, b.HitPaddle(p))
	assert.Equal(t, 100.0, b.X)
	assert.Equal(t, -12.0, b.DY)
}

func TestHitBlockAxis(t *testing.T) {
	tests := []struct {
		name   string
		ball   *Ball
		wantDX float64
		wantDY float64
	}{
		{
			name:   "bottom face flips DY",
			ball:   newTestBall(250, 175, 0, 20),
			wantDX: 0, wantDY: -20,
		},
		{
			name:   "top face flips DY",
			ball:   newTestBall(250, 31, 0, -16),
			wantDX: 0, wantDY: 16,
		},
		{
			name:   "side hit flips DX",
			ball:   newTestBall(130, 110, 12, 0),
			wantDX: -12, wantDY: 0,
		},
		{
			// Neither face band matches, so the corner hit falls back to a horizontal flip
			name:   "corner hit flips DX",
			ball:   newTestBall(140, 170, 12, 12),
			wantDX: -12, wantDY: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := newTestBlock()

			require.True(t, tt.ball.HitBlock(block))
			assert.False(t, block.Active)
			assert.Equal(t, tt.wantDX, tt.ball.DX)
			assert.Equal(t, tt.wantDY, tt.ball.DY)
		})
	}
}

func TestHitBlockOnlyOnce(t *testing.T) {
	block := newTestBlock()
	b := newTestBall(130, 110, 12, 0)

	require.True(t, b.HitBlock(block))
	require.False(t, block.Active)

	// Same geometry again: an inactive block is never hit and never comes back
	b = newTestBall(130, 110, 12, 0)
	assert.False(t, b.HitBlock(block))
	assert.False(t, block.Active)
	assert.Equal(t, 12.0, b.DX)
}

func TestResolveCollisionsReport(t *testing.T) {
	blocks := []Block{*newTestBlock(), {X: 1000, Y: 105, Width: 180, Height: 60, Active: true}}
	p := newTestPaddle(810, 0)
	b := newTestBall(130, 110, 12, 0)

	r := b.ResolveCollisions(World{Field: Field{Width: 1920, Height: 1080}, Paddle: p, Blocks: blocks})

	assert.Equal(t, 1, r.BlocksHit)
	assert.False(t, r.PaddleBounced)
	assert.Equal(t, WallNone, r.Wall)
	assert.False(t, blocks[0].Active)
	assert.True(t, blocks[1].Active)
}

func TestReportMerge(t *testing.T) {
	paddle := Report{}
	ball := Report{BlocksHit: 2, PaddleBounced: true, Wall: WallBreached}

	merged := paddle.Merge(ball)
	assert.Equal(t, ball, merged)

	// A later mover with no wall contact keeps the earlier wall event
	merged = ball.Merge(Report{BlocksHit: 1})
	assert.Equal(t, Report{BlocksHit: 3, PaddleBounced: true, Wall: WallBreached}, merged)
}

func TestPaddleResolveCollisionsThroughMovable(t *testing.T) {
	var m Movable = newTestPaddle(810, 0)
	r := m.ResolveCollisions(World{Field: Field{Width: 1920, Height: 1080}})
	assert.Equal(t, Report{}, r)
}

