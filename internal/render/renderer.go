//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandgrid/internal/core"
)

// GridPainter keeps a grid-resolution RGBA image in sync with the
// simulation by patching only the cells the grid reports dirty. Draining
// through Sync clears the dirty flags, completing the per-frame sequence.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size×size grid and primes it
// with the grid's current contents.
func NewGridPainter(g *core.Grid) *GridPainter {
	size := g.Size()
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	FillRGBA(gp.buf, g)
	gp.img.WritePixels(gp.buf)
	return gp
}

// Sync drains the grid's dirty cells into the pixel buffer and re-uploads
// the image when anything changed.
func (gp *GridPainter) Sync(g *core.Grid) {
	changed := false
	g.ConsumeDirty(func(x, y int, p core.Particle) {
		writeRGBA(gp.buf, y*gp.size+x, ParticleColor(p))
		changed = true
	})
	if changed {
		gp.img.WritePixels(gp.buf)
	}
}

// Draw blits the cell image onto dst scaled so one cell covers scale×scale
// pixels.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the side length of the underlying image in cells.
func (gp *GridPainter) Size() int { return gp.size }
