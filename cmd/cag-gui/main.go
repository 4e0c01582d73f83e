//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"cag-life/internal/app"
	"cag-life/internal/audio"
	"cag-life/internal/config"
	"cag-life/internal/core"
	"cag-life/internal/input"
	"cag-life/internal/render"
	"cag-life/internal/system"
	"cag-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 220

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	border := 0
	if cfg.Border {
		border = 1
	}
	keys := input.NewKeyBuffer(32)
	stick := input.NewVirtualStick()
	overlay := ui.NewOverlay()
	lines := make(chan string, 1)

	// the HUD reads from the sink, which is created after the game
	var sys *system.System
	status := core.ParameterFunc(func() core.ParameterSnapshot { return sys.Sink.Parameters() })
	game := app.New(ctx, app.Options{
		GridW:   cfg.Width,
		GridH:   cfg.Height,
		Cell:    cfg.CellSize,
		Border:  border,
		Scale:   cfg.Scale,
		Keys:    keys,
		Stick:   stick,
		Lines:   lines,
		Overlay: overlay,
		HUD:     ui.NewHUD(status, hudWidth),
	})

	dev := system.Devices{Surface: game, Keys: keys, Stick: stick, Indicator: overlay}
	if cfg.Sound {
		if chime, err := audio.Open(0.3); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			dev.Observer = chime
		}
	}
	sys = system.New(ctx, cfg, dev)

	done := make(chan error, 1)
	go func() {
		done <- sys.Run(ctx, lines, func(out string, err error) {
			if err != nil {
				log.Printf("command: %v", err)
				return
			}
			log.Print(out)
		})
	}()

	w, h := render.FrameSize(cfg.Width, cfg.Height, cfg.CellSize, border)
	ebiten.SetWindowTitle("cag-life")
	ebiten.SetWindowSize(w*cfg.Scale+hudWidth, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	cancel()
	if err := <-done; err != nil {
		log.Fatal(err)
	}
}
