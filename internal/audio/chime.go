package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	tickLength  = 40 * time.Millisecond
	clearLength = 120 * time.Millisecond
	baseFreq    = 220.0
	maxFreq     = 880.0
)

// Player plays a streamer without blocking.
type Player interface {
	Play(s beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }

// Chime turns generation and clear notifications into tones. Its pitch rises
// with the population.
type Chime struct {
	mu     sync.Mutex
	player Player
	gain   float64
	muted  bool
}

// NewChime creates a chime playing through p at the given linear gain.
func NewChime(p Player, gain float64) *Chime {
	return &Chime{player: p, gain: gain}
}

// Open initialises the speaker and returns a chime playing through it.
func Open(gain float64) (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return NewChime(speakerPlayer{}, gain), nil
}

// SetMuted silences or re-enables the chime.
func (c *Chime) SetMuted(m bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = m
}

// Pitch maps a population to a tone frequency.
func Pitch(population int) float64 {
	f := baseFreq + 4*float64(population)
	if f > maxFreq {
		return maxFreq
	}
	return f
}

// OnGeneration plays a short tick.
func (c *Chime) OnGeneration(_ uint64, population int) {
	c.play(func() (beep.Streamer, error) {
		return Tone(Pitch(population), tickLength)
	})
}

// OnClear plays a falling two-note cue.
func (c *Chime) OnClear() {
	c.play(func() (beep.Streamer, error) {
		hi, err := Tone(maxFreq/2, clearLength)
		if err != nil {
			return nil, err
		}
		lo, err := Tone(baseFreq/2, clearLength)
		if err != nil {
			return nil, err
		}
		return beep.Seq(hi, lo), nil
	})
}

func (c *Chime) play(build func() (beep.Streamer, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.muted || c.player == nil {
		return
	}
	s, err := build()
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	c.player.Play(volume(s, c.gain))
}
