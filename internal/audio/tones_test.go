package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/garden-defense/internal/game"
)

// drain reads a streamer to the end and returns the sample count and peak.
func drain(t *testing.T, cue game.Cue, master float64) (int, float64) {
	t.Helper()
	s := Synthesize(cue, master)
	if s == nil {
		t.Fatalf("Synthesize(%v) returned nil", cue)
	}

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
		if total > sampleRate.N(5*time.Second) {
			t.Fatalf("cue %v never ends", cue)
		}
	}
	return total, peak
}

func TestEveryCueSynthesizes(t *testing.T) {
	cues := []game.Cue{
		game.CueSpray, game.CueHit, game.CueGrab, game.CueEscape,
		game.CueRoundStart, game.CueRoundEnd, game.CueTapToggle, game.CueGameOver,
	}
	for _, cue := range cues {
		t.Run(cue.String(), func(t *testing.T) {
			samples, peak := drain(t, cue, 1.0)
			expected := 0
			for _, n := range cueNotes[cue] {
				expected += sampleRate.N(n.d)
			}
			if samples != expected {
				t.Errorf("cue produced %d samples, expected %d", samples, expected)
			}
			if peak <= 0 || peak > 1.0+1e-9 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, game.CueHit, 0)
	if peak != 0 {
		t.Errorf("peak = %v at zero volume, expected silence", peak)
	}
}

func TestUnknownCue(t *testing.T) {
	if Synthesize(game.Cue(99), 1) != nil {
		t.Error("unknown cue should synthesize to nil")
	}
	if Duration(game.Cue(99)) != 0 {
		t.Error("unknown cue should have no duration")
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(game.CueRoundStart); got != 360*time.Millisecond {
		t.Errorf("Duration(round start) = %v, expected 360ms", got)
	}
}

func TestPlayerSilentUntilInitialized(t *testing.T) {
	p := NewCuePlayer(0.5)
	p.Play(game.CueHit)
	if p.Played() != 0 {
		t.Errorf("Played() = %d before Initialize, expected 0", p.Played())
	}
	p.Close() // no-op
}

func TestPlayerMute(t *testing.T) {
	p := NewCuePlayer(0.5)
	if p.IsMuted() {
		t.Fatal("new player should not be muted")
	}
	if !p.ToggleMute() || !p.IsMuted() {
		t.Error("ToggleMute() should mute")
	}
	p.SetMuted(false)
	if p.IsMuted() {
		t.Error("SetMuted(false) should unmute")
	}
}
