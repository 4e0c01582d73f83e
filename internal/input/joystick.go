package input

import (
	"context"
	"time"

	"cag-life/internal/bus"
)

// Bands holds the joystick thresholds in raw counts.
type Bands struct {
	// Y thresholds between the 1s|2s, 2s|5s and 5s|10s interval bands.
	Interval [3]int
	// X readings above Start request start, below Stop request stop.
	Start, Stop int
	// Hysteresis is how far past a threshold a reading must go before the
	// band changes.
	Hysteresis int
}

// DefaultBands splits the Y axis at 2%, 5% and 10% of full scale and uses
// 3000/1000 counts on the X axis.
func DefaultBands() Bands {
	return Bands{
		Interval:   [3]int{StickMax * 2 / 100, StickMax * 5 / 100, StickMax * 10 / 100},
		Start:      3000,
		Stop:       1000,
		Hysteresis: 8,
	}
}

// intervalBand returns the Y band for v, starting from the current band.
func (b Bands) intervalBand(cur, v int) int {
	for cur < len(b.Interval) && v >= b.Interval[cur]+b.Hysteresis {
		cur++
	}
	for cur > 0 && v < b.Interval[cur-1]-b.Hysteresis {
		cur--
	}
	return cur
}

type zone int

const (
	zoneStop zone = iota
	zoneRest
	zoneStart
)

func (b Bands) zone(cur zone, v int) zone {
	switch {
	case v > b.Start+b.Hysteresis:
		return zoneStart
	case v < b.Stop-b.Hysteresis:
		return zoneStop
	case cur == zoneStart && v > b.Start-b.Hysteresis:
		return zoneStart
	case cur == zoneStop && v < b.Stop+b.Hysteresis:
		return zoneStop
	}
	return zoneRest
}

// Joystick maps joystick readings to control flags. A flag is raised only
// when a reading crosses into a new band, so holding the stick still does
// not repeat it.
type Joystick struct {
	hub    *bus.Hub
	src    StickSource
	bands  Bands
	period time.Duration

	band    int
	zone    zone
	pressed bool
}

// NewJoystick creates a mapper polling src every period.
func NewJoystick(hub *bus.Hub, src StickSource, bands Bands, period time.Duration) *Joystick {
	return &Joystick{hub: hub, src: src, bands: bands, period: period}
}

// Run recreates the joystick control group and polls until ctx is
// cancelled.
func (j *Joystick) Run(ctx context.Context) error {
	j.hub.ResetJoystickEvents()
	j.band, j.zone, j.pressed = 0, zoneStop, false

	ticker := time.NewTicker(j.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.Poll()
		}
	}
}

// Poll reads the stick once and raises flags for any band change. It returns
// the joystick flags it set.
func (j *Joystick) Poll() bus.Bits {
	s := j.src.ReadStick()
	var bits bus.Bits

	if band := j.bands.intervalBand(j.band, int(s.Y)); band != j.band {
		j.band = band
		bits |= bus.Intervals[band].Bit
	}
	if z := j.bands.zone(j.zone, int(s.X)); z != j.zone {
		j.zone = z
		switch z {
		case zoneStart:
			bits |= bus.EvtStart
		case zoneStop:
			bits |= bus.EvtStop
		}
	}
	if bits != 0 {
		if g := j.hub.JoystickEvents(); g != nil {
			g.Set(bits)
		}
	}

	if s.Pressed && !j.pressed {
		if g := j.hub.GridEvents(); g != nil {
			g.Set(bus.EvtClearGrid)
		}
	}
	j.pressed = s.Pressed
	return bits
}
