package core

// Sound identifies an audio clip the platform can play.
type Sound int

const (
	SoundNone   Sound = iota
	SoundBump         // Ball hit a block or the paddle
	SoundReplay       // New round started
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundReplay:
		return "replay"
	default:
		return "none"
	}
}

// EffectKind identifies what the platform is asked to do.
type EffectKind int

const (
	EffectPlaySound EffectKind = iota
	EffectSubscribe
	EffectUnsubscribe
)

// Effect is a side effect a game hands back to the platform instead of
// performing it itself. Games never touch audio devices or input sources.
type Effect struct {
	Kind      EffectKind
	Sound     Sound
	Listeners ListenerSet
}

// PlaySound returns an effect asking the platform to play s.
func PlaySound(s Sound) Effect {
	return Effect{Kind: EffectPlaySound, Sound: s}
}

// Subscribe returns an effect asking the platform to attach a listener set.
func Subscribe(l ListenerSet) Effect {
	return Effect{Kind: EffectSubscribe, Listeners: l}
}

// Unsubscribe returns an effect asking the platform to detach a listener set.
func Unsubscribe(l ListenerSet) Effect {
	return Effect{Kind: EffectUnsubscribe, Listeners: l}
}
