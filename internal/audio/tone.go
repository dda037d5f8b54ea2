package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is one step of a tone: a frequency held for a duration.
type note struct {
	freq     float64
	duration time.Duration
}

// toneGenerator plays a sequence of notes with a short exponential decay on
// each one. It ends after the last note.
type toneGenerator struct {
	sr     beep.SampleRate
	notes  []note
	square bool
	gain   float64

	index int // Current note
	pos   int // Sample position inside the current note
	phase float64
}

func newToneGenerator(sr beep.SampleRate, square bool, gain float64, notes ...note) *toneGenerator {
	return &toneGenerator{
		sr:     sr,
		notes:  notes,
		square: square,
		gain:   gain,
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.index >= len(g.notes) {
			return i, i > 0
		}

		cur := g.notes[g.index]
		t := float64(g.pos) / float64(g.sr)

		var val float64
		if g.square {
			if g.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		} else {
			val = math.Sin(2 * math.Pi * g.phase)
		}

		// Quick attack, exponential tail
		env := math.Min(t/0.005, 1) * math.Exp(-t*12)
		sample := g.gain * env * val

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += cur.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++

		if g.pos >= g.sr.N(cur.duration) {
			g.index++
			g.pos = 0
		}
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
