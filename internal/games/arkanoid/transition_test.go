package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestTransition(t *testing.T) {
	idle := DefaultState(32)
	launched := idle.Merge(Patch{BallIsLaunched: ref(true)})
	finished := launched.Merge(Patch{GameFinished: ref(true)})

	tests := []struct {
		name        string
		st          State
		in          core.Intent
		want        State
		wantEffects []Effect
	}{
		{
			name:        "launch from idle",
			st:          idle,
			in:          core.IntentLaunch,
			want:        launched,
			wantEffects: []Effect{{Kind: EffectLaunchBall}},
		},
		{
			name: "launch twice is ignored",
			st:   launched,
			in:   core.IntentLaunch,
			want: launched,
		},
		{
			name:        "left start before launch nudges the ball",
			st:          idle.Merge(Patch{ForceStopRight: ref(true)}),
			in:          core.IntentMoveLeftStart,
			want:        idle.Merge(Patch{PaddleDirection: ref(DirectionLeft)}),
			wantEffects: []Effect{steer(DirectionLeft), nudge(DirectionLeft)},
		},
		{
			name:        "right start in flight clears left stop",
			st:          launched.Merge(Patch{ForceStopLeft: ref(true)}),
			in:          core.IntentMoveRightStart,
			want:        launched.Merge(Patch{PaddleDirection: ref(DirectionRight)}),
			wantEffects: []Effect{steer(DirectionRight)},
		},
		{
			name:        "left stop clears right stop",
			st:          launched.Merge(Patch{PaddleDirection: ref(DirectionLeft), ForceStopRight: ref(true)}),
			in:          core.IntentMoveLeftStop,
			want:        launched,
			wantEffects: []Effect{steer(DirectionNone)},
		},
		{
			name: "left stop while steering right is ignored",
			st:   launched.Merge(Patch{PaddleDirection: ref(DirectionRight)}),
			in:   core.IntentMoveLeftStop,
			want: launched.Merge(Patch{PaddleDirection: ref(DirectionRight)}),
		},
		{
			name:        "right stop keeps stop flags",
			st:          idle.Merge(Patch{PaddleDirection: ref(DirectionRight), ForceStopLeft: ref(true)}),
			in:          core.IntentMoveRightStop,
			want:        idle.Merge(Patch{ForceStopLeft: ref(true)}),
			wantEffects: []Effect{steer(DirectionNone), nudge(DirectionNone)},
		},
		{
			name: "reset while playing is ignored",
			st:   launched,
			in:   core.IntentReset,
			want: launched,
		},
		{
			name: "steering after the round is ignored",
			st:   finished,
			in:   core.IntentMoveLeftStart,
			want: finished,
		},
		{
			name: "reset from finished",
			st:   finished.Merge(Patch{RemainingBlocks: ref(0), ForceStopLeft: ref(true)}),
			in:   core.IntentReset,
			want: idle,
			wantEffects: []Effect{
				{Kind: EffectRebuild},
				forward(core.Unsubscribe(core.ListenersReset)),
				forward(core.Subscribe(core.ListenersPlay)),
				forward(core.PlaySound(core.SoundReplay)),
			},
		},
		{
			name: "none is ignored",
			st:   launched,
			in:   core.IntentNone,
			want: launched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Transition(tt.st, tt.in, 32)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEffects, effects)
		})
	}
}

func TestSettle(t *testing.T) {
	finishEffects := []Effect{
		{Kind: EffectHaltPaddle},
		forward(core.Unsubscribe(core.ListenersPlay)),
		forward(core.Subscribe(core.ListenersReset)),
	}

	tests := []struct {
		name        string
		st          State
		breached    bool
		wantOutcome Outcome
		wantEffects []Effect
	}{
		{name: "still playing", st: DefaultState(3)},
		{name: "all blocks cleared", st: DefaultState(0), wantOutcome: OutcomeWin, wantEffects: finishEffects},
		{name: "breached", st: DefaultState(3), breached: true, wantOutcome: OutcomeLoss, wantEffects: finishEffects},
		{name: "last block and breach in one tick", st: DefaultState(0), breached: true, wantOutcome: OutcomeWin, wantEffects: finishEffects},
		{name: "already finished", st: State{GameFinished: true}, breached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome, effects := Settle(tt.st, tt.breached)
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantEffects, effects)
			if tt.wantOutcome != OutcomeNone {
				assert.True(t, got.GameFinished)
			}
		})
	}
}

func TestStateMerge(t *testing.T) {
	st := State{BallIsLaunched: true, RemainingBlocks: 5, PaddleDirection: DirectionLeft}

	got := st.Merge(Patch{RemainingBlocks: ref(4)})

	assert.Equal(t, 4, got.RemainingBlocks)
	assert.True(t, got.BallIsLaunched, "unmentioned fields are preserved")
	assert.Equal(t, DirectionLeft, got.PaddleDirection)
	assert.Equal(t, 5, st.RemainingBlocks, "merge does not modify the receiver")
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "There are not enough blocks for you", OutcomeWin.Message())
	assert.Equal(t, "Blocks defeated you", OutcomeLoss.Message())
	assert.Empty(t, OutcomeNone.Message())
}
