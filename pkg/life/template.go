package life

import "cag-life/pkg/core"

// TemplateDim is the side length of every life-form template.
const TemplateDim = 4

// Template is a small fixed pattern of live (1) and dead (0) cells, indexed
// [row][col].
type Template [TemplateDim][TemplateDim]uint8

// Cells returns the offsets of the live cells of t in row-major order.
func (t Template) Cells() []core.Point {
	var pts []core.Point
	for y := 0; y < TemplateDim; y++ {
		for x := 0; x < TemplateDim; x++ {
			if t[y][x] != 0 {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Stamp ORs the live cells of t into g with the template's top-left corner at
// (ox, oy). Cells already alive stay alive; nothing is cleared. Template cells
// that fall outside the grid are dropped.
func Stamp(g *core.Grid, t Template, ox, oy int) {
	for y := 0; y < TemplateDim; y++ {
		for x := 0; x < TemplateDim; x++ {
			if t[y][x] == 0 {
				continue
			}
			g.Set(ox+x, oy+y, true)
		}
	}
}
