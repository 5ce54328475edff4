package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Shape is a piece of vector geometry supplied by the host. Vertices are in
// shape-local space; world-space positions are Position plus each vertex
// rotated by Rotation radians about the local origin.
type Shape struct {
	Position r2.Vec
	Rotation float64
	Vertices []r2.Vec
	Closed   bool
}

// WorldVertices projects the shape's local vertices into world space:
// each vertex is rotated about the local origin and translated by Position.
func (s Shape) WorldVertices() []r2.Vec {
	if len(s.Vertices) == 0 {
		return nil
	}
	sin, cos := math.Sincos(s.Rotation)
	out := make([]r2.Vec, len(s.Vertices))
	for i, v := range s.Vertices {
		out[i] = r2.Vec{
			X: s.Position.X + v.X*cos - v.Y*sin,
			Y: s.Position.Y + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Grid() *Grid
}

// BrushPainter is implemented by sims that accept brush input. Points are in
// world (pixel) space; implementations convert to grid coordinates. StrokeTo
// continues the active paint gesture from the previously reported point, and
// EndStroke terminates the gesture when the pointer is released or the tool
// changes.
type BrushPainter interface {
	Paint(kind Kind, pt r2.Vec)
	StrokeTo(kind Kind, pt r2.Vec)
	EndStroke()
}

// GeometryReceiver is implemented by sims that derive cells from vector
// shapes. The host calls OnGeometryChanged with the complete shape list
// whenever any shape is created, modified or deleted.
type GeometryReceiver interface {
	OnGeometryChanged(shapes []Shape)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
