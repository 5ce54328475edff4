package render

import (
	"image/color"

	"sandgrid/internal/core"
)

var (
	airColor   = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	sandColor  = color.RGBA{R: 214, G: 174, B: 128, A: 255}
	solidColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// ParticleColor maps a particle to its display color. Brush- and
// shape-derived solids render identically; provenance is a simulation
// concern, not a visual one.
func ParticleColor(p core.Particle) color.RGBA {
	switch p.Kind {
	case core.Sand:
		return sandColor
	case core.Solid:
		return solidColor
	}
	return airColor
}

// writeRGBA stores col at cell index i of the RGBA pixel buffer.
func writeRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// FillRGBA repaints the whole buffer from the grid contents, ignoring dirty
// flags. Used once after allocation so the first frame has a full image.
func FillRGBA(buf []byte, g *core.Grid) {
	cells := g.Cells()
	for i := range cells {
		writeRGBA(buf, i, ParticleColor(cells[i].P))
	}
}
