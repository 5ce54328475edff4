package fallingsand

import (
	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
	pkgcore "sandgrid/pkg/core"
)

// World owns the falling-sand grid and advances it one tick at a time. Brush
// painting, the automaton tick and dirty-cell draining run strictly in that
// order within a frame; shape rasterization happens synchronously whenever
// the host reports changed geometry.
type World struct {
	cfg Config

	grid   *core.Grid
	shapes []core.Shape

	tick  uint64
	moved int

	rng *pkgcore.RNG

	strokeActive bool
	strokePrev   r2.Vec
}

// New returns a falling-sand world with the given grid side length using
// defaults for everything else.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	if cfg.Params.BrushRadius < 1 {
		cfg.Params.BrushRadius = 1
	}
	return &World{
		cfg:  cfg,
		grid: core.NewGrid(cfg.Size),
		rng:  pkgcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "fallingsand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Grid exposes the simulation grid for the renderer and for tests.
func (w *World) Grid() *core.Grid { return w.grid }

// CellSize reports the width of one cell in world pixels.
func (w *World) CellSize() int { return w.cfg.CellSize }

// BrushRadius reports the current brush radius in cells.
func (w *World) BrushRadius() int { return w.cfg.Params.BrushRadius }

// ShapeCount reports how many shapes the last geometry notification carried.
func (w *World) ShapeCount() int { return len(w.shapes) }

// Shapes exposes the current shape list for overlay drawing.
func (w *World) Shapes() []core.Shape { return w.shapes }

// Tick reports how many steps have run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Quiescent reports whether the most recent Step moved any particle.
func (w *World) Quiescent() bool { return w.moved == 0 }

// Reset empties the grid and restores deterministic state. A zero seed
// falls back to the configured seed. The shape list is cleared; the host
// re-announces geometry after a reset.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pkgcore.NewRNG(effective)
	w.grid.Clear()
	w.shapes = w.shapes[:0]
	w.tick = 0
	w.moved = 0
	w.strokeActive = false
}

// Step advances the automaton by one tick. Rows are visited bottom to top so
// a particle's move decision always sees the not-yet-updated state of the
// row below it; the horizontal scan direction alternates by row parity to
// avoid a systematic lateral bias.
func (w *World) Step() {
	size := w.grid.Size()
	w.moved = 0
	for y := size - 1; y >= 0; y-- {
		if y%2 == 0 {
			for x := 0; x < size; x++ {
				w.updateCell(x, y)
			}
		} else {
			for x := size - 1; x >= 0; x-- {
				w.updateCell(x, y)
			}
		}
	}
	w.tick++
}

func (w *World) updateCell(x, y int) {
	cells := w.grid.Cells()
	switch cells[w.grid.Index(x, y)].P.Kind {
	case core.Air, core.Solid:
	case core.Sand:
		if updateSand(w.grid, x, y, w.preferLeft) {
			w.moved++
		}
	}
}

// preferLeft resolves the lateral tie per the configured policy.
func (w *World) preferLeft() bool {
	if w.cfg.Params.TieBreak == TieBreakRandom {
		return w.rng.Bool()
	}
	return w.tick%2 == 0
}

// updateSand applies the fall-and-spread rule for the sand particle at
// (x, y): straight down, else down-left, else down-right, else stay. The
// move is a swap with an Air cell, marking both cells dirty. preferLeft is
// consulted only when both diagonals are free.
func updateSand(g *core.Grid, x, y int, preferLeft func() bool) bool {
	if airAt(g, x, y+1) {
		return g.Swap(x, y, x, y+1)
	}
	left := airAt(g, x-1, y+1)
	right := airAt(g, x+1, y+1)
	switch {
	case left && right:
		if preferLeft() {
			return g.Swap(x, y, x-1, y+1)
		}
		return g.Swap(x, y, x+1, y+1)
	case left:
		return g.Swap(x, y, x-1, y+1)
	case right:
		return g.Swap(x, y, x+1, y+1)
	}
	return false
}

// airAt reports whether (x, y) is in bounds and holds Air.
func airAt(g *core.Grid, x, y int) bool {
	c, err := g.At(x, y)
	return err == nil && c.P.Kind == core.Air
}

func init() {
	core.Register("fallingsand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
