// Package audio plays the game's sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	_ arkanoid.Audio = (*Synth)(nil)
	_ arkanoid.Audio = Silent{}
)

// Streamer returns a fresh streamer for s, or nil for sounds that have no clip.
func Streamer(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundBump:
		// Short percussive blip
		return newToneGenerator(sampleRate, true, 0.25,
			note{freq: 660, duration: 60 * time.Millisecond},
		)
	case core.SoundReplay:
		// Rising arpeggio
		return newToneGenerator(sampleRate, false, 0.35,
			note{freq: 523.25, duration: 90 * time.Millisecond},
			note{freq: 659.25, duration: 90 * time.Millisecond},
			note{freq: 783.99, duration: 180 * time.Millisecond},
		)
	default:
		return nil
	}
}

// Synth synthesises sounds on the fly and mixes them onto the speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSynth creates a synthesiser. Volume is in halvings: 0 is full volume,
// -1 half, and so on.
func NewSynth(volume float64) *Synth {
	mixer := &beep.Mixer{}
	return &Synth{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
		},
	}
}

// Init opens the audio device. It is safe to call more than once.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(s.volume)
	s.initialized = true
	return nil
}

// Play starts s without waiting for it to finish. Unknown sounds and calls
// before Init are ignored.
func (s *Synth) Play(snd core.Sound) {
	streamer := Streamer(snd)
	if streamer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops every sound that is still playing.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	s.initialized = false
}

// Silent discards every sound. Used when audio is disabled or unavailable.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Sound) {}
