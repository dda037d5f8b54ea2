package arkanoid

// Direction is the paddle's current steering direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Phase is the coarse state of the game as seen from outside.
type Phase int

const (
	PhaseIdle     Phase = iota // Ball resting on the paddle, waiting for launch
	PhaseLaunched              // Ball in free flight
	PhaseFinished              // Round over, only reset is accepted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLaunched:
		return "launched"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome records how a finished round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// Result messages shown when a round ends.
const (
	WinMessage  = "There are not enough blocks for you"
	LossMessage = "Blocks defeated you"
)

// Message returns the text displayed for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return WinMessage
	case OutcomeLoss:
		return LossMessage
	default:
		return ""
	}
}

// State is the authoritative game record. It is only changed through Merge.
type State struct {
	GameFinished    bool
	BallIsLaunched  bool
	PaddleDirection Direction
	RemainingBlocks int
	ForceStopLeft   bool // Paddle reached the left wall and is frozen
	ForceStopRight  bool // Paddle reached the right wall and is frozen
}

// DefaultState returns the state of a fresh round with blockCount blocks to clear.
func DefaultState(blockCount int) State {
	return State{RemainingBlocks: blockCount}
}

// Phase derives the coarse phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.GameFinished:
		return PhaseFinished
	case s.BallIsLaunched:
		return PhaseLaunched
	default:
		return PhaseIdle
	}
}

// Patch lists fields to overwrite in a State. Nil fields are left untouched.
type Patch struct {
	GameFinished    *bool
	BallIsLaunched  *bool
	PaddleDirection *Direction
	RemainingBlocks *int
	ForceStopLeft   *bool
	ForceStopRight  *bool
}

// Merge overlays the non-nil fields of p onto s and returns the result.
// It is a shallow overlay; fields p does not mention are preserved.
func (s State) Merge(p Patch) State {
	if p.GameFinished != nil {
		s.GameFinished = *p.GameFinished
	}
	if p.BallIsLaunched != nil {
		s.BallIsLaunched = *p.BallIsLaunched
	}
	if p.PaddleDirection != nil {
		s.PaddleDirection = *p.PaddleDirection
	}
	if p.RemainingBlocks != nil {
		s.RemainingBlocks = *p.RemainingBlocks
	}
	if p.ForceStopLeft != nil {
		s.ForceStopLeft = *p.ForceStopLeft
	}
	if p.ForceStopRight != nil {
		s.ForceStopRight = *p.ForceStopRight
	}
	return s
}

// ref returns a pointer to v, for building patches inline.
func ref[T any](v T) *T {
	return &v
}
