package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0

	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				t.Fatalf("Sample %d is not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}

	t.Fatal("Streamer never ended")
	return 0, 0
}

func TestStreamerLengths(t *testing.T) {
	tests := []struct {
		sound core.Sound
		want  int
		gain  float64
	}{
		{sound: core.SoundBump, want: sampleRate.N(60 * time.Millisecond), gain: 0.25},
		{
			sound: core.SoundReplay,
			want:  2*sampleRate.N(90*time.Millisecond) + sampleRate.N(180*time.Millisecond),
			gain:  0.35,
		},
	}

	for _, tt := range tests {
		s := Streamer(tt.sound)
		if s == nil {
			t.Fatalf("Streamer(%v) = nil", tt.sound)
		}

		n, peak := drain(t, s)
		if n != tt.want {
			t.Errorf("Streamer(%v) produced %d samples, want %d", tt.sound, n, tt.want)
		}
		if peak == 0 || peak > tt.gain {
			t.Errorf("Streamer(%v) peak = %f, want in (0, %f]", tt.sound, peak, tt.gain)
		}
		if s.Err() != nil {
			t.Errorf("Streamer(%v) error: %v", tt.sound, s.Err())
		}
	}
}

func TestStreamerNone(t *testing.T) {
	if s := Streamer(core.SoundNone); s != nil {
		t.Errorf("Expected no streamer for SoundNone, got %T", s)
	}
}

func TestPlayBeforeInit(t *testing.T) {
	s := NewSynth(0)

	// Must not touch the speaker
	s.Play(core.SoundBump)
	s.Close()

	Silent{}.Play(core.SoundReplay)
}
