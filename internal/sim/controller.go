// Package sim runs the Game-of-Life tick loop. The Controller is the only
// writer of the grid; everything else reaches it through the bus.
package sim

import (
	"context"
	"log"
	"time"

	"cag-life/internal/bus"
	"cag-life/internal/config"
	internalcore "cag-life/internal/core"
	"cag-life/internal/lifeform"
	"cag-life/pkg/core"
	"cag-life/pkg/life"
)

// Observer is notified of grid changes that are worth an out-of-band cue.
// Callbacks run on the controller goroutine and must not block.
type Observer interface {
	OnGeneration(generation uint64, population int)
	OnClear()
}

// State is the controller's view of the simulation.
type State struct {
	Running    bool
	Interval   time.Duration
	Cursor     core.Point
	Generation uint64
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock replaces the monotonic clock used for tick timing.
func WithClock(c internalcore.Clock) Option {
	return func(ctrl *Controller) { ctrl.clock = c }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(ctrl *Controller) { ctrl.observer = o }
}

// Controller owns the grid and the simulation state.
type Controller struct {
	cfg      *config.Config
	hub      *bus.Hub
	clock    internalcore.Clock
	observer Observer

	grid   *core.Grid
	counts *life.Counts
	timer  *internalcore.TickTimer
	edits  *bus.EditQueue

	running    bool
	cursor     core.Point
	generation uint64
}

// New creates a controller. Nothing is allocated on the bus until Start.
func New(cfg *config.Config, hub *bus.Hub, opts ...Option) *Controller {
	c := &Controller{cfg: cfg, hub: hub, clock: internalcore.SystemClock{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start (re)initialises the controller: it recreates the edit queue, seeds a
// fresh grid, resets the tick timer and publishes the first snapshot.
func (c *Controller) Start() {
	c.edits = c.hub.ResetEdits(c.cfg.EditQueueCap)
	c.grid = core.NewGrid(c.cfg.Width, c.cfg.Height)
	c.counts = life.NewCounts(c.cfg.Width, c.cfg.Height)
	c.seed()
	c.timer = internalcore.NewTickTimer(c.clock, c.cfg.Interval)
	c.running = true
	c.cursor = core.Point{}
	c.generation = 0
	c.publish()
}

func (c *Controller) seed() {
	switch c.cfg.SeedMode {
	case config.SeedEmpty:
	case config.SeedRandom:
		life.Randomize(c.grid, core.NewRNG(c.cfg.Seed), c.cfg.Density)
	default:
		lifeform.Seed(c.grid, lifeform.Demo())
	}
}

// Run starts the controller and polls until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.Start()
	log.Printf("simulator started (%dx%d, every %v)", c.grid.W, c.grid.H, c.timer.Interval())

	ticker := time.NewTicker(c.cfg.ControllerPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("simulator stopped at generation %d", c.generation)
			return nil
		case <-ticker.C:
			c.Iterate()
		}
	}
}

// Iterate runs one polling iteration: drain the grid control flags, drain the
// joystick flags, serve a pending draw request, then advance a generation if
// the simulation is running and the interval has elapsed.
func (c *Controller) Iterate() {
	c.drainGridEvents()
	c.drainJoystickEvents()
	c.serveDrawRequest()

	if c.running && c.timer.Due() {
		life.Advance(c.grid, c.counts)
		c.generation++
		c.publish()
		if c.observer != nil {
			c.observer.OnGeneration(c.generation, life.Population(c.grid))
		}
	}
}

func (c *Controller) drainGridEvents() {
	group := c.hub.GridEvents()
	if group == nil {
		return
	}
	bits := group.Wait(bus.GridControlMask, c.cfg.EventWait)
	if bits == 0 {
		return
	}

	if bits&bus.EvtClearGrid != 0 {
		c.grid.Clear()
		c.publish()
		group.Clear(bus.EvtClearGrid)
		log.Printf("grid cleared")
		if c.observer != nil {
			c.observer.OnClear()
		}
	}
	if bits&bus.EvtStartStop != 0 {
		c.running = !c.running
		c.publish()
		group.Clear(bus.EvtStartStop)
		log.Printf("simulation %s", runningLabel(c.running))
	}
	if bits&bus.EvtSelectCell != 0 {
		c.applyNextEdit()
		c.publish()
		group.Clear(bus.EvtSelectCell)
	}
	if bits&bus.EvtUnselectCell != 0 {
		c.applyNextEdit()
		c.publish()
		group.Clear(bus.EvtUnselectCell)
	}
	if bits&bus.EvtMoveOrigin != 0 {
		c.cursor = core.Point{}
	}
	group.Clear(bits & (bus.EvtMoveUp | bus.EvtMoveLeft | bus.EvtMoveDown | bus.EvtMoveRight | bus.EvtMoveOrigin))
}

func (c *Controller) drainJoystickEvents() {
	group := c.hub.JoystickEvents()
	if group == nil {
		return
	}
	bits := group.Wait(bus.JoystickControlMask, c.cfg.EventWait)
	if bits == 0 {
		return
	}

	if bits&bus.EvtStart != 0 {
		c.running = true
		log.Printf("simulation running")
	}
	if bits&bus.EvtStop != 0 {
		c.running = false
		log.Printf("simulation stopped")
	}
	for _, iv := range bus.Intervals {
		if bits&iv.Bit != 0 {
			c.timer.SetInterval(iv.Interval)
			log.Printf("simulation updates every %v", iv.Interval)
		}
	}
	c.publish()
	group.Clear(bits)
}

func (c *Controller) serveDrawRequest() {
	sig := c.hub.DrawSignal()
	if sig == nil || !sig.Take(c.cfg.EventWait) {
		return
	}
	c.applyNextEdit()
	c.publish()
}

// applyNextEdit takes one message off the edit queue and applies it. An empty
// queue is not an error.
func (c *Controller) applyNextEdit() {
	msg, ok := c.edits.Recv(c.cfg.RecvTimeout)
	if !ok {
		return
	}
	c.Apply(msg)
}

// Apply performs a single edit on the grid. Messages addressing a cell
// outside the grid are logged and ignored.
func (c *Controller) Apply(msg bus.EditMessage) {
	if !c.grid.InBounds(msg.X, msg.Y) {
		log.Printf("invalid position (%d, %d), ignoring %v", msg.X, msg.Y, msg.Kind)
		return
	}
	switch msg.Kind {
	case bus.EditKill:
		life.SetCell(c.grid, msg.X, msg.Y, false)
	case bus.EditSpawn:
		life.SetCell(c.grid, msg.X, msg.Y, true)
	case bus.EditStamp:
		t, ok := lifeform.Lookup(msg.Form)
		if !ok {
			log.Printf("invalid life form %v", msg.Form)
			return
		}
		life.Stamp(c.grid, t, msg.X, msg.Y)
	default:
		log.Printf("invalid edit kind %v", msg.Kind)
		return
	}
	c.cursor = core.Point{X: msg.X, Y: msg.Y}
	log.Printf("%v", msg)
}

// State returns the current simulation state. It must be called from the
// goroutine that drives the controller.
func (c *Controller) State() State {
	s := State{Running: c.running, Cursor: c.cursor, Generation: c.generation}
	if c.timer != nil {
		s.Interval = c.timer.Interval()
	}
	return s
}

// Snapshot returns a copy of the grid and state.
func (c *Controller) Snapshot() *bus.Snapshot {
	return &bus.Snapshot{
		W:          c.grid.W,
		H:          c.grid.H,
		Cells:      c.grid.CopyCells(nil),
		Generation: c.generation,
		Population: life.Population(c.grid),
		Running:    c.running,
		Interval:   c.timer.Interval(),
		Cursor:     c.cursor,
	}
}

func (c *Controller) publish() {
	slot := c.hub.Snapshots()
	if slot == nil {
		return
	}
	slot.Publish(c.Snapshot())
}

func runningLabel(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}
