package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// EffectKind identifies a side effect produced by a transition.
type EffectKind int

const (
	EffectLaunchBall  EffectKind = iota // Ball leaves the paddle with a random DX and DY = Speed/2
	EffectSteerPaddle                   // Paddle DX becomes Dir * Speed
	EffectNudgeBall                     // Resting ball DX becomes Dir * Speed
	EffectRebuild                       // Entities back to their initial rects, fresh block grid
	EffectHaltPaddle                    // Paddle DX becomes 0
	EffectPlatform                      // Forwarded to the platform untouched
)

// Effect is a side-effect descriptor returned next to the new state.
// Transitions never touch entities; Game applies the effects afterwards.
type Effect struct {
	Kind     EffectKind
	Dir      Direction
	Platform core.Effect
}

// Sign returns -1, 0 or 1 for the effect's direction.
func (e Effect) Sign() float64 {
	switch e.Dir {
	case DirectionLeft:
		return -1
	case DirectionRight:
		return 1
	default:
		return 0
	}
}

func steer(d Direction) Effect { return Effect{Kind: EffectSteerPaddle, Dir: d} }
func nudge(d Direction) Effect { return Effect{Kind: EffectNudgeBall, Dir: d} }
func forward(e core.Effect) Effect {
	return Effect{Kind: EffectPlatform, Platform: e}
}

// Transition applies a player intent to st. Intents that do not fit the
// current phase leave the state unchanged and produce no effects.
func Transition(st State, in core.Intent, blockCount int) (State, []Effect) {
	phase := st.Phase()

	if in == core.IntentReset {
		if phase != PhaseFinished {
			return st, nil
		}
		return DefaultState(blockCount), []Effect{
			{Kind: EffectRebuild},
			forward(core.Unsubscribe(core.ListenersReset)),
			forward(core.Subscribe(core.ListenersPlay)),
			forward(core.PlaySound(core.SoundReplay)),
		}
	}

	if phase == PhaseFinished {
		return st, nil
	}

	switch in {
	case core.IntentLaunch:
		if phase != PhaseIdle {
			return st, nil
		}
		return st.Merge(Patch{BallIsLaunched: ref(true)}), []Effect{{Kind: EffectLaunchBall}}

	case core.IntentMoveLeftStart:
		next := st.Merge(Patch{
			PaddleDirection: ref(DirectionLeft),
			ForceStopRight:  ref(false),
		})
		return next, steering(st, DirectionLeft)

	case core.IntentMoveRightStart:
		next := st.Merge(Patch{
			PaddleDirection: ref(DirectionRight),
			ForceStopLeft:   ref(false),
		})
		return next, steering(st, DirectionRight)

	case core.IntentMoveLeftStop:
		if st.PaddleDirection != DirectionLeft {
			return st, nil
		}
		next := st.Merge(Patch{
			PaddleDirection: ref(DirectionNone),
			ForceStopRight:  ref(false),
		})
		return next, steering(st, DirectionNone)

	case core.IntentMoveRightStop:
		if st.PaddleDirection != DirectionRight {
			return st, nil
		}
		return st.Merge(Patch{PaddleDirection: ref(DirectionNone)}), steering(st, DirectionNone)
	}

	return st, nil
}

// steering returns the effects of changing the paddle's direction. Before
// launch the resting ball is nudged the same way.
func steering(st State, d Direction) []Effect {
	effects := []Effect{steer(d)}
	if !st.BallIsLaunched {
		effects = append(effects, nudge(d))
	}
	return effects
}

// Settle decides at the end of a tick whether the round is over: the ball
// breached the bottom edge or no blocks remain. A finished round stops the
// paddle and swaps the play listeners for the reset listeners.
func Settle(st State, breached bool) (State, Outcome, []Effect) {
	if st.GameFinished || (!breached && st.RemainingBlocks > 0) {
		return st, OutcomeNone, nil
	}

	outcome := OutcomeLoss
	if st.RemainingBlocks == 0 {
		outcome = OutcomeWin
	}

	return st.Merge(Patch{GameFinished: ref(true)}), outcome, []Effect{
		{Kind: EffectHaltPaddle},
		forward(core.Unsubscribe(core.ListenersPlay)),
		forward(core.Subscribe(core.ListenersReset)),
	}
}
