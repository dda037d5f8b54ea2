package arkanoid

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            int
	Phase           string
	PaddleDirection string
	RemainingBlocks int
	ForceStopLeft   bool
	ForceStopRight  bool
	Outcome         int

	// Paddle and ball are 4 values each: X, Y, DX, DY
	Paddle [4]float64
	Ball   [4]float64

	// One entry per block in layout order: 1 if active
	BlockData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, len(g.blocks))
	for i, b := range g.blocks {
		if b.Active {
			blockData[i] = 1
		}
	}

	var rngState uint64
	if g.rng != nil {
		rngState = g.rng.state
	}

	return Snapshot{
		Tick:            g.stats.Ticks,
		Phase:           g.state.Phase().String(),
		PaddleDirection: g.state.PaddleDirection.String(),
		RemainingBlocks: g.state.RemainingBlocks,
		ForceStopLeft:   g.state.ForceStopLeft,
		ForceStopRight:  g.state.ForceStopRight,
		Outcome:         int(g.outcome),
		Paddle:          [4]float64{g.paddle.X, g.paddle.Y, g.paddle.DX, g.paddle.DY},
		Ball:            [4]float64{g.ball.X, g.ball.Y, g.ball.DX, g.ball.DY},
		BlockData:       blockData,
		RNGState:        rngState,
	}
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17

	mix := func(v uint64) {
		h = h*31 + v
	}
	flag := func(b bool) uint64 {
		if b {
			return 1
		}
		return 0
	}

	mix(uint64(s.Tick)) //#nosec G115 -- hash computation
	for _, c := range s.Phase + "/" + s.PaddleDirection {
		mix(uint64(c))
	}
	mix(uint64(s.RemainingBlocks)) //#nosec G115 -- hash computation
	mix(flag(s.ForceStopLeft))
	mix(flag(s.ForceStopRight))
	mix(uint64(s.Outcome))

	for _, v := range s.Paddle {
		mix(math.Float64bits(v))
	}
	for _, v := range s.Ball {
		mix(math.Float64bits(v))
	}
	for _, v := range s.BlockData {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}

	mix(s.RNGState)

	return h
}
