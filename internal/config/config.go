// Package config holds the runtime settings shared by the cag binaries.
package config

import (
	"flag"
	"strconv"
	"time"
)

// Seed modes for a freshly started controller.
const (
	SeedDemo   = "demo"
	SeedRandom = "random"
	SeedEmpty  = "empty"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Border   bool
	Scale    int

	EditQueueCap int
	SendTimeout  time.Duration
	RecvTimeout  time.Duration
	EventWait    time.Duration

	ControllerPeriod time.Duration
	EditorPeriod     time.Duration
	JoystickPeriod   time.Duration
	DisplayPeriod    time.Duration

	Interval time.Duration

	SeedMode string
	Seed     int64
	Density  float64

	Sound bool
	Debug bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:            64,
		Height:           16,
		CellSize:         2,
		Scale:            6,
		EditQueueCap:     5,
		SendTimeout:      10 * time.Millisecond,
		RecvTimeout:      10 * time.Millisecond,
		EventWait:        0,
		ControllerPeriod: 10 * time.Millisecond,
		EditorPeriod:     20 * time.Millisecond,
		JoystickPeriod:   100 * time.Millisecond,
		DisplayPeriod:    20 * time.Millisecond,
		Interval:         time.Second,
		SeedMode:         SeedDemo,
		Seed:             42,
		Density:          0.3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in display pixels")
	fs.BoolVar(&c.Border, "border", c.Border, "draw a border around the grid")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.EditQueueCap, "queue", c.EditQueueCap, "edit message queue capacity")
	fs.DurationVar(&c.SendTimeout, "send-timeout", c.SendTimeout, "how long a full queue is retried before dropping")
	fs.DurationVar(&c.RecvTimeout, "recv-timeout", c.RecvTimeout, "how long the controller waits for a signalled edit")
	fs.DurationVar(&c.EventWait, "event-wait", c.EventWait, "how long the controller waits on each event group")
	fs.DurationVar(&c.ControllerPeriod, "poll", c.ControllerPeriod, "controller polling period")
	fs.DurationVar(&c.EditorPeriod, "editor-poll", c.EditorPeriod, "grid editor polling period")
	fs.DurationVar(&c.JoystickPeriod, "joystick-poll", c.JoystickPeriod, "joystick polling period")
	fs.DurationVar(&c.DisplayPeriod, "display-poll", c.DisplayPeriod, "display polling period")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "initial tick interval (1s, 2s, 5s or 10s)")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial grid: demo, random or empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random grid")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone on every generation")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log to logs/")
}

// FromMap populates a default config from a string map (flag-style key/value
// pairs). Unparseable values keep their defaults.
func FromMap(m map[string]string) *Config {
	c := NewConfig()
	if m == nil {
		return c
	}
	setInt := func(key string, dst *int) {
		if v, ok := m[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := m[key]; ok {
			if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := m[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}

	setInt("w", &c.Width)
	setInt("h", &c.Height)
	setInt("cell", &c.CellSize)
	setInt("scale", &c.Scale)
	setInt("queue", &c.EditQueueCap)
	setBool("border", &c.Border)
	setBool("sound", &c.Sound)
	setBool("debug", &c.Debug)
	setDuration("send-timeout", &c.SendTimeout)
	setDuration("recv-timeout", &c.RecvTimeout)
	setDuration("event-wait", &c.EventWait)
	setDuration("poll", &c.ControllerPeriod)
	setDuration("editor-poll", &c.EditorPeriod)
	setDuration("joystick-poll", &c.JoystickPeriod)
	setDuration("display-poll", &c.DisplayPeriod)
	setDuration("interval", &c.Interval)
	if v, ok := m["seed-mode"]; ok {
		c.SeedMode = v
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := m["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = parsed
		}
	}
	c.Validate()
	return c
}

// Validate pulls out-of-range values back to usable ones.
func (c *Config) Validate() {
	d := NewConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.EditQueueCap <= 0 {
		c.EditQueueCap = d.EditQueueCap
	}
	if c.ControllerPeriod <= 0 {
		c.ControllerPeriod = d.ControllerPeriod
	}
	if c.EditorPeriod <= 0 {
		c.EditorPeriod = d.EditorPeriod
	}
	if c.JoystickPeriod <= 0 {
		c.JoystickPeriod = d.JoystickPeriod
	}
	if c.DisplayPeriod <= 0 {
		c.DisplayPeriod = d.DisplayPeriod
	}
	if !ValidInterval(c.Interval) {
		c.Interval = d.Interval
	}
	switch c.SeedMode {
	case SeedDemo, SeedRandom, SeedEmpty:
	default:
		c.SeedMode = d.SeedMode
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
}

// ValidInterval reports whether d is one of the selectable tick intervals.
func ValidInterval(d time.Duration) bool {
	switch d {
	case time.Second, 2 * time.Second, 5 * time.Second, 10 * time.Second:
		return true
	}
	return false
}
