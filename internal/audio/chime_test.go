package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

type recordPlayer struct{ played []beep.Streamer }

func (r *recordPlayer) Play(s beep.Streamer) { r.played = append(r.played, s) }

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		n += k
		if !ok || k == 0 {
			return n, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	s, err := Tone(440, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	n, peak := drain(s)
	if want := SampleRate.N(50 * time.Millisecond); n != want {
		t.Fatalf("tone produced %d samples, want %d", n, want)
	}
	if peak <= 0 || peak > 1 {
		t.Fatalf("peak %f out of range", peak)
	}
}

func TestToneFadesIn(t *testing.T) {
	s, _ := Tone(440, 50*time.Millisecond)
	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("first sample %f, expected silence", buf[0][0])
	}
}

func TestPitch(t *testing.T) {
	if Pitch(0) != baseFreq {
		t.Fatalf("empty grid pitch %f", Pitch(0))
	}
	if Pitch(10) <= Pitch(1) {
		t.Fatal("pitch does not rise with population")
	}
	if Pitch(100000) != maxFreq {
		t.Fatal("pitch not capped")
	}
}

func TestChimePlaysCues(t *testing.T) {
	p := &recordPlayer{}
	c := NewChime(p, 0.5)
	c.OnGeneration(1, 12)
	c.OnClear()
	if len(p.played) != 2 {
		t.Fatalf("played %d cues, want 2", len(p.played))
	}
	n, _ := drain(p.played[1])
	if want := 2 * SampleRate.N(clearLength); n != want {
		t.Fatalf("clear cue produced %d samples, want %d", n, want)
	}

	c.SetMuted(true)
	c.OnGeneration(2, 12)
	if len(p.played) != 2 {
		t.Fatal("muted chime played")
	}
}

func TestSilentVolume(t *testing.T) {
	s, _ := Tone(440, 10*time.Millisecond)
	_, peak := drain(volume(s, 0))
	if peak != 0 {
		t.Fatalf("silent volume produced peak %f", peak)
	}
}
