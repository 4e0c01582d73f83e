//go:build ebiten

package app

import (
	"context"
	"image/color"
	"sync"

	"cag-life/internal/input"
	"cag-life/internal/render"
	"cag-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game is the window front end. It is the display surface for the sink and
// routes keyboard input to the grid editor, the virtual joystick and the
// command line.
type Game struct {
	ctx     context.Context
	keys    *input.KeyBuffer
	stick   *input.VirtualStick
	lines   chan<- string
	painter *render.FramePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	cell, border int
	scale        int
	frameW       int
	frameH       int

	mu    sync.Mutex
	frame *render.Frame

	command bool
	line    []rune
}

// Options configures a Game.
type Options struct {
	GridW, GridH int
	Cell, Border int
	Scale        int
	Keys         *input.KeyBuffer
	Stick        *input.VirtualStick
	Lines        chan<- string
	Overlay      *ui.Overlay
	HUD          *ui.HUD
}

// New constructs a Game. Update reports termination once ctx is done.
func New(ctx context.Context, o Options) *Game {
	w, h := render.FrameSize(o.GridW, o.GridH, o.Cell, o.Border)
	return &Game{
		ctx:      ctx,
		keys:     o.Keys,
		stick:    o.Stick,
		lines:    o.Lines,
		painter:  render.NewFramePainter(w, h),
		overlay:  o.Overlay,
		hud:      o.HUD,
		onColor:  color.White,
		offColor: color.Black,
		cell:     o.Cell,
		border:   o.Border,
		scale:    o.Scale,
		frameW:   w,
		frameH:   h,
		frame:    render.NewFrame(w, h),
	}
}

// Present stores a copy of f for the next Draw.
func (g *Game) Present(f *render.Frame) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frame.W != f.W || g.frame.H != f.H {
		g.frame = render.NewFrame(f.W, f.H)
	}
	copy(g.frame.Pix, f.Pix)
	return nil
}

// Blank clears the stored frame.
func (g *Game) Blank() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.frame.Clear()
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.command = !g.command
		g.line = g.line[:0]
	}
	chars := ebiten.AppendInputChars(nil)
	if g.command {
		g.updateCommand(chars)
	} else if quit := g.updateGrid(chars); quit {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update()
	return nil
}

func (g *Game) updateGrid(chars []rune) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.stick.Up()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.stick.Down()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.stick.Left()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.stick.Right()
	}
	for _, r := range chars {
		switch {
		case r == ' ':
			g.stick.Press()
		case r < 0x80:
			g.keys.Push(byte(r))
		}
	}
	return false
}

func (g *Game) updateCommand(chars []rune) {
	g.line = append(g.line, chars...)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.line) > 0 {
		g.line = g.line[:len(g.line)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.line = g.line[:0]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		select {
		case g.lines <- string(g.line):
		default:
		}
		g.line = g.line[:0]
	}
}

// Prompt returns the command line being typed, or "" in grid mode.
func (g *Game) Prompt() string {
	if !g.command {
		return ""
	}
	return "> " + string(g.line)
}

// Draw renders the latest frame, the cursor overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	g.painter.Blit(screen, g.frame, g.onColor, g.offColor, g.scale)
	g.mu.Unlock()
	if g.overlay != nil && !g.command {
		g.overlay.Draw(screen, g.cell, g.border, g.scale)
	}
	g.hud.Draw(screen, g.frameW*g.scale, g.frameH*g.scale)
	if p := g.Prompt(); p != "" {
		text.Draw(screen, p, basicfont.Face7x13, g.frameW*g.scale+12, g.frameH*g.scale-8, color.White)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frameW*g.scale + g.hud.Width(), g.frameH * g.scale
}
