// Package system wires the simulation controller, the input coordinators and
// the display sink around a shared bus.
package system

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cag-life/internal/bus"
	"cag-life/internal/config"
	"cag-life/internal/display"
	"cag-life/internal/input"
	"cag-life/internal/sim"
	"cag-life/internal/supervisor"
	"cag-life/pkg/core"
)

// Devices are the front-end collaborators a system draws on and reads from.
type Devices struct {
	Surface   display.Surface
	Keys      input.CharSource
	Stick     input.StickSource
	Indicator input.Indicator
	// Observer is optional.
	Observer sim.Observer
}

// System is a fully wired simulation.
type System struct {
	Config     *config.Config
	Hub        *bus.Hub
	Supervisor *supervisor.Supervisor
	Controller *sim.Controller
	Editor     *input.Editor
	Joystick   *input.Joystick
	Mnemonic   *input.Mnemonic
	Sink       *display.Sink
}

// New builds a system whose restartable tasks live under ctx.
func New(ctx context.Context, cfg *config.Config, dev Devices) *System {
	hub := bus.NewWiredHub(cfg.EditQueueCap)
	sup := supervisor.New(ctx)

	var opts []sim.Option
	if dev.Observer != nil {
		opts = append(opts, sim.WithObserver(dev.Observer))
	}
	border := 0
	if cfg.Border {
		border = 1
	}

	s := &System{
		Config:     cfg,
		Hub:        hub,
		Supervisor: sup,
		Controller: sim.New(cfg, hub, opts...),
		Editor:     input.NewEditor(hub, sup, dev.Keys, dev.Indicator, core.Size{W: cfg.Width, H: cfg.Height}, cfg.EditorPeriod, cfg.SendTimeout),
		Joystick:   input.NewJoystick(hub, dev.Stick, input.DefaultBands(), cfg.JoystickPeriod),
		Mnemonic:   input.NewMnemonic(hub, sup, cfg.SendTimeout),
		Sink:       display.NewSink(hub, dev.Surface, sup, cfg.CellSize, border, cfg.DisplayPeriod),
	}
	sup.Register(supervisor.TaskSimulator, "simulator", s.Controller.Run)
	sup.Register(supervisor.TaskJoystick, "joystick", s.Joystick.Run)
	sup.Register(supervisor.TaskEditor, "grid editor", s.Editor.Run)
	return s
}

// Run starts every task and blocks until ctx is cancelled. Command lines are
// read from lines; reply receives each result and may be nil.
func (s *System) Run(ctx context.Context, lines <-chan string, reply func(string, error)) error {
	if err := s.Supervisor.StartAll(); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Sink.Run(ctx) })
	g.Go(func() error { return s.Mnemonic.Run(ctx, lines, reply) })
	g.Go(func() error {
		<-ctx.Done()
		return s.Supervisor.StopAll()
	})
	return g.Wait()
}
