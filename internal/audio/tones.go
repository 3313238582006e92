// Package audio synthesizes the garden's sound cues with beep and plays them
// through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/garden-defense/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// tone generates a single note with a linear frequency glide.
type tone struct {
	from, to float64 // Hz at start and end
	phase    float64
	total    int
	position int
	wave     WaveType
	rng      *rand.Rand
}

func newTone(from, to float64, d time.Duration, wave WaveType) *tone {
	return &tone{
		from:  from,
		to:    to,
		total: sampleRate.N(d),
		wave:  wave,
		rng:   rand.New(rand.NewSource(1)), //#nosec G404 -- audio noise
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}

		// Attack and release over the first and last 10%
		edge := t.total / 10
		vol := 1.0
		if edge > 0 {
			if t.position < edge {
				vol = float64(t.position) / float64(edge)
			} else if rem := t.total - t.position; rem < edge {
				vol = float64(rem) / float64(edge)
			}
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		progress := float64(t.position) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note is one step of a cue.
type note struct {
	from, to float64
	d        time.Duration
	wave     WaveType
}

// cueNotes is the score for each cue.
var cueNotes = map[game.Cue][]note{
	game.CueSpray:      {{0, 0, 60 * time.Millisecond, WaveNoise}},
	game.CueHit:        {{520, 260, 90 * time.Millisecond, WaveSquare}},
	game.CueGrab:       {{300, 420, 80 * time.Millisecond, WaveSquare}},
	game.CueEscape:     {{440, 110, 250 * time.Millisecond, WaveSquare}},
	game.CueRoundStart: {{523, 523, 100 * time.Millisecond, WaveSine}, {659, 659, 100 * time.Millisecond, WaveSine}, {784, 784, 160 * time.Millisecond, WaveSine}},
	game.CueRoundEnd:   {{784, 784, 120 * time.Millisecond, WaveSine}, {523, 523, 200 * time.Millisecond, WaveSine}},
	game.CueTapToggle:  {{880, 660, 70 * time.Millisecond, WaveSine}},
	game.CueGameOver:   {{392, 392, 200 * time.Millisecond, WaveSine}, {330, 330, 200 * time.Millisecond, WaveSine}, {262, 196, 400 * time.Millisecond, WaveSine}},
}

// cueVolume is the per-cue gain relative to the master volume.
var cueVolume = map[game.Cue]float64{
	game.CueSpray: 0.15,
	game.CueHit:   0.4,
	game.CueGrab:  0.35,
}

// Synthesize builds the streamer for a cue, or nil for an unknown cue.
func Synthesize(cue game.Cue, master float64) beep.Streamer {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.from, n.to, n.d, n.wave))
	}

	gain, ok := cueVolume[cue]
	if !ok {
		gain = 0.5
	}
	return newVolume(beep.Seq(parts...), gain*master)
}

// Duration returns the length of a cue.
func Duration(cue game.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.d
	}
	return d
}

// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
