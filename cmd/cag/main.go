// Command cag runs the Game of Life in a terminal. Grid mode keys drive the
// grid editor and the arrow keys drive a virtual joystick; Tab switches to a
// command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"cag-life/internal/audio"
	"cag-life/internal/config"
	"cag-life/internal/input"
	"cag-life/internal/render"
	"cag-life/internal/system"
	"cag-life/internal/term"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "cag crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(cfg, screen); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	screen.Fini()
}

func run(cfg *config.Config, screen tcell.Screen) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	keys := input.NewKeyBuffer(32)
	stick := input.NewVirtualStick()
	leds := &term.LEDBar{}
	dev := system.Devices{
		Surface:   term.NewSurface(screen, 0, 0),
		Keys:      keys,
		Stick:     stick,
		Indicator: leds,
	}
	if cfg.Sound {
		chime, err := audio.Open(0.3)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			dev.Observer = chime
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	sys := system.New(ctx, cfg, dev)

	border := 0
	if cfg.Border {
		border = 1
	}
	_, h := render.FrameSize(cfg.Width, cfg.Height, cfg.CellSize, border)
	lines := make(chan string, 1)
	fe := term.NewFrontend(screen, keys, stick, leds, sys.Sink, lines, term.Rows(h)+1)

	g.Go(func() error { return sys.Run(ctx, lines, fe.Reply) })
	g.Go(func() error { return fe.Run(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, term.ErrQuit) {
		return err
	}
	return nil
}
