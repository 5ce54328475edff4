package core

// Kind enumerates the particle variants a cell can hold.
type Kind uint8

const (
	// Air marks an empty cell. Air is a particle in its own right; there is
	// no separate "no particle" state.
	Air Kind = iota
	// Sand is mobile and subject to gravity and lateral spread.
	Sand
	// Solid never moves, regardless of neighbors.
	Solid
)

// Source records where a particle came from. It matters only for Solid:
// shape-derived solids are reverted when geometry changes, brush-painted
// solids are not.
type Source uint8

const (
	// SourceNone is used for Air and Sand.
	SourceNone Source = iota
	// SourceBrush marks particles placed by the brush painter.
	SourceBrush
	// SourceShape marks solids derived from vector geometry.
	SourceShape
)

// Particle is the typed occupant of a cell.
type Particle struct {
	Kind   Kind
	Source Source
}

// AirParticle returns the empty-cell particle.
func AirParticle() Particle { return Particle{Kind: Air} }

// String names the particle kind for logs and test failures.
func (k Kind) String() string {
	switch k {
	case Air:
		return "air"
	case Sand:
		return "sand"
	case Solid:
		return "solid"
	}
	return "unknown"
}
