package fallingsand

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
)

// OnGeometryChanged replaces every shape-derived Solid cell with the
// projection of the provided shape list. The list is authoritative: solids
// no longer justified by it revert to Air. Brush-painted solids carry a
// different provenance tag and survive. The call completes synchronously, so
// no tick ever observes a half-rasterized shape.
func (w *World) OnGeometryChanged(shapes []core.Shape) {
	w.shapes = append(w.shapes[:0], shapes...)
	w.revertShapeSolids()
	for i := range w.shapes {
		w.rasterizeShape(w.shapes[i])
	}
}

func (w *World) revertShapeSolids() {
	size := w.grid.Size()
	cells := w.grid.Cells()
	for i := range cells {
		p := cells[i].P
		if p.Kind == core.Solid && p.Source == core.SourceShape {
			w.grid.Set(i%size, i/size, core.AirParticle())
		}
	}
}

func (w *World) rasterizeShape(s core.Shape) {
	verts := s.WorldVertices()
	if s.Closed {
		// Fewer than three vertices cannot enclose area.
		if len(verts) < 3 {
			return
		}
		w.fillClosed(verts)
		return
	}
	if len(verts) < 2 {
		return
	}
	w.tracePath(verts)
}

// fillClosed rasterizes a closed polygon with an even-odd scanline fill. For
// every grid row intersecting the polygon's bounding box, the horizontal
// line through the row's world-space center is intersected with each edge
// whose endpoints straddle it; sorted crossings are paired off and the cells
// whose centers fall between each pair become shape-derived Solid. An odd
// trailing crossing (degenerate or self-intersecting polygon) is dropped
// rather than read past.
func (w *World) fillClosed(verts []r2.Vec) {
	cell := float64(w.cfg.CellSize)
	size := w.grid.Size()

	minY, maxY := verts[0].Y, verts[0].Y
	for _, v := range verts[1:] {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	if math.IsNaN(minY) || math.IsNaN(maxY) {
		return
	}

	yLo := int(math.Floor(minY / cell))
	yHi := int(math.Floor(maxY / cell))
	if yLo < 0 {
		yLo = 0
	}
	if yHi >= size {
		yHi = size - 1
	}

	solid := core.Particle{Kind: core.Solid, Source: core.SourceShape}
	xs := make([]float64, 0, 8)
	for gy := yLo; gy <= yHi; gy++ {
		sy := (float64(gy) + 0.5) * cell

		xs = xs[:0]
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			t := (sy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+(b.X-a.X)*t)
		}
		sort.Float64s(xs)

		for k := 0; k+1 < len(xs); k += 2 {
			gx0 := int(math.Ceil(xs[k]/cell - 0.5))
			gx1 := int(math.Floor(xs[k+1]/cell - 0.5))
			for gx := gx0; gx <= gx1; gx++ {
				w.grid.Set(gx, gy, solid)
			}
		}
	}
}

// tracePath stamps shape-derived Solid cells along an open path by walking
// each segment in steps no longer than one cell. Zero-length segments are
// skipped explicitly so the step computation never divides by zero.
func (w *World) tracePath(verts []r2.Vec) {
	cell := float64(w.cfg.CellSize)
	solid := core.Particle{Kind: core.Solid, Source: core.SourceShape}

	for i := 0; i+1 < len(verts); i++ {
		a := verts[i]
		d := r2.Sub(verts[i+1], a)
		dist := math.Hypot(d.X, d.Y)
		if !(dist > 0) {
			continue
		}
		steps := int(math.Ceil(dist / cell))
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			gx := int(math.Floor((a.X + d.X*t) / cell))
			gy := int(math.Floor((a.Y + d.Y*t) / cell))
			w.grid.Set(gx, gy, solid)
		}
	}
}
