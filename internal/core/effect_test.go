package core

import "testing"

func TestEffectConstructors(t *testing.T) {
	if e := PlaySound(SoundBump); e.Kind != EffectPlaySound || e.Sound != SoundBump {
		t.Errorf("PlaySound(SoundBump) = %+v", e)
	}
	if e := Subscribe(ListenersReset); e.Kind != EffectSubscribe || e.Listeners != ListenersReset {
		t.Errorf("Subscribe(ListenersReset) = %+v", e)
	}
	if e := Unsubscribe(ListenersPlay); e.Kind != EffectUnsubscribe || e.Listeners != ListenersPlay {
		t.Errorf("Unsubscribe(ListenersPlay) = %+v", e)
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		in   Intent
		want string
	}{
		{IntentLaunch, "launch"},
		{IntentMoveLeftStart, "move-left-start"},
		{IntentMoveRightStop, "move-right-stop"},
		{IntentReset, "reset"},
		{Intent(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Intent(%d).String() = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
