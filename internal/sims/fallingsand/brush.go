package fallingsand

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
)

// Paint fills a disk of the configured radius centered on pt (world pixels)
// with freshly constructed particles of the given kind, overwriting whatever
// occupied those cells. The disk uses a strict inequality: offsets with
// dx²+dy² < r² are filled. Every write is bounds-checked; off-grid cells are
// skipped.
func (w *World) Paint(kind core.Kind, pt r2.Vec) {
	cell := float64(w.cfg.CellSize)
	cx := int(math.Floor(pt.X / cell))
	cy := int(math.Floor(pt.Y / cell))

	p := core.Particle{Kind: kind}
	if kind == core.Solid {
		p.Source = core.SourceBrush
	}

	r := w.cfg.Params.BrushRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy >= r*r {
				continue
			}
			w.grid.Set(cx+dx, cy+dy, p)
		}
	}
}

// PaintStroke interpolates linearly between from and to, painting a disk at
// each sample so that fast pointer motion never leaves gaps wider than one
// cell between disks. The step count is max(1, floor(distance/cellSize)).
func (w *World) PaintStroke(kind core.Kind, from, to r2.Vec) {
	delta := r2.Sub(to, from)
	dist := math.Hypot(delta.X, delta.Y)
	steps := int(math.Floor(dist / float64(w.cfg.CellSize)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		w.Paint(kind, r2.Vec{X: from.X + delta.X*t, Y: from.Y + delta.Y*t})
	}
}

// StrokeTo continues the active paint gesture to pt. The first call of a
// gesture paints a single disk; subsequent calls interpolate from the
// previously reported point.
func (w *World) StrokeTo(kind core.Kind, pt r2.Vec) {
	if w.strokeActive {
		w.PaintStroke(kind, w.strokePrev, pt)
	} else {
		w.Paint(kind, pt)
	}
	w.strokePrev = pt
	w.strokeActive = true
}

// EndStroke forgets the remembered pointer position. The host calls this
// when the pointer is released or the active tool changes.
func (w *World) EndStroke() {
	w.strokeActive = false
}
