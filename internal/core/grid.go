package core

import "errors"

// ErrOutOfBounds reports a coordinate outside [0, size) on either axis.
var ErrOutOfBounds = errors.New("core: coordinate out of bounds")

// Cell is one grid slot: its particle plus a dirty flag set by every mutator
// and cleared only when the renderer drains it.
type Cell struct {
	P     Particle
	dirty bool
}

// Dirty reports whether the cell has been mutated since the last drain.
func (c Cell) Dirty() bool { return c.dirty }

// Grid stores a square field of cells in row-major order. It is the single
// shared mutable resource; the stepper, rasterizer and brush all operate on
// it by reference.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates a size×size grid filled with Air.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// InBounds reports whether (x, y) addresses a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns the cell at (x, y) or ErrOutOfBounds.
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[g.Index(x, y)], nil
}

// Cells exposes the backing slice so hot loops can read values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Set replaces the particle at (x, y) and marks the cell dirty. Out-of-range
// targets are skipped, never written; the return value reports whether the
// write landed.
func (g *Grid) Set(x, y int, p Particle) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.Index(x, y)
	g.cells[i].P = p
	g.cells[i].dirty = true
	return true
}

// Swap exchanges the particles of two cells and marks both dirty. Either
// coordinate being out of range skips the swap entirely.
func (g *Grid) Swap(ax, ay, bx, by int) bool {
	if !g.InBounds(ax, ay) || !g.InBounds(bx, by) {
		return false
	}
	ai := g.Index(ax, ay)
	bi := g.Index(bx, by)
	g.cells[ai].P, g.cells[bi].P = g.cells[bi].P, g.cells[ai].P
	g.cells[ai].dirty = true
	g.cells[bi].dirty = true
	return true
}

// Clear resets every cell to Air and marks the whole grid dirty so the next
// drain repaints it.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].P = AirParticle()
		g.cells[i].dirty = true
	}
}

// ConsumeDirty visits every dirty cell in row-major order and clears its
// flag. The renderer drains the grid through this once per frame.
func (g *Grid) ConsumeDirty(fn func(x, y int, p Particle)) {
	for y := 0; y < g.size; y++ {
		row := y * g.size
		for x := 0; x < g.size; x++ {
			c := &g.cells[row+x]
			if !c.dirty {
				continue
			}
			c.dirty = false
			if fn != nil {
				fn(x, y, c.P)
			}
		}
	}
}

// CountDirty returns the number of cells awaiting a drain.
func (g *Grid) CountDirty() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].dirty {
			n++
		}
	}
	return n
}
