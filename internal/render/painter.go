//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads frames into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for w*h pixel frames.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads f into the painter image and draws it scaled onto dst.
// Frames of a different size are ignored.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *Frame, on, off color.Color, scale int) {
	if f == nil || f.W != fp.w || f.H != fp.h {
		return
	}
	fp.buf = f.RGBA(fp.buf, on, off)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
