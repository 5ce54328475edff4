package ui

// Status carries the per-frame values the HUD displays alongside the
// simulation's parameter snapshot.
type Status struct {
	Tool       string
	Paused     bool
	ShapeCount int
	Tick       uint64
}
