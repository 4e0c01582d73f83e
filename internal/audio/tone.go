// Package audio plays short cues when the simulation advances or the grid is
// cleared.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// fade shapes a stream with a linear attack and release.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(duration),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	if f.position >= f.total {
		return 0, false
	}
	if rest := f.total - f.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; left < f.release {
			vol = math.Min(vol, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// volume scales s by a linear gain. Zero or less is silent.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Tone returns a sine tone of the given frequency and length with short
// fades at both ends.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	edge := d / 5
	return newFade(beep.Take(SampleRate.N(d), sine), d, edge, edge), nil
}
