package fallingsand

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
)

func TestPaintDiskRadiusTwo(t *testing.T) {
	w := newTestWorld(20)
	w.Paint(core.Sand, r2.Vec{X: 10.5, Y: 10.5})

	// Radius 2 with a strict inequality is the 3×3 block: the corners sit at
	// distance √2 < 2, the axis offsets of 2 are excluded.
	got := sandPositions(w)
	if len(got) != 9 {
		t.Fatalf("expected 9 painted cells, got %d: %v", len(got), got)
	}
	for _, pos := range got {
		dx, dy := pos[0]-10, pos[1]-10
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("cell (%d,%d) outside the 3×3 block", pos[0], pos[1])
		}
	}
	if kindAt(t, w, 12, 10) == core.Sand || kindAt(t, w, 10, 12) == core.Sand {
		t.Fatal("offsets at exactly the radius must stay unpainted")
	}
}

func TestPaintOverwritesAnything(t *testing.T) {
	w := newTestWorld(20)
	w.Grid().Set(10, 10, core.Particle{Kind: core.Solid, Source: core.SourceShape})

	w.Paint(core.Sand, r2.Vec{X: 10.5, Y: 10.5})
	if kindAt(t, w, 10, 10) != core.Sand {
		t.Fatal("the brush must overwrite solids")
	}

	w.Paint(core.Air, r2.Vec{X: 10.5, Y: 10.5})
	if kindAt(t, w, 10, 10) != core.Air {
		t.Fatal("the air brush must erase")
	}
}

func TestPaintClipsAtGridEdge(t *testing.T) {
	w := newTestWorld(20)
	// Center on the corner cell; only the in-bounds quadrant lands.
	w.Paint(core.Sand, r2.Vec{X: 0.5, Y: 0.5})

	got := sandPositions(w)
	if len(got) != 4 {
		t.Fatalf("expected 4 clipped cells, got %d: %v", len(got), got)
	}
	for _, pos := range got {
		if pos[0] > 1 || pos[1] > 1 {
			t.Fatalf("unexpected painted cell (%d,%d)", pos[0], pos[1])
		}
	}
}

func TestPaintStrokeLeavesNoGaps(t *testing.T) {
	w := newTestWorld(20)
	w.PaintStroke(core.Sand, r2.Vec{X: 2.5, Y: 10.5}, r2.Vec{X: 17.5, Y: 10.5})

	for x := 2; x <= 17; x++ {
		if kindAt(t, w, x, 10) != core.Sand {
			t.Fatalf("gap at (%d,10) in painted stroke", x)
		}
	}
}

func TestStrokeToRemembersAndForgets(t *testing.T) {
	w := newTestWorld(40)

	// First point of a gesture paints a single disk.
	w.StrokeTo(core.Sand, r2.Vec{X: 5.5, Y: 20.5})
	// The continuation interpolates from the previous point.
	w.StrokeTo(core.Sand, r2.Vec{X: 15.5, Y: 20.5})
	if kindAt(t, w, 10, 20) != core.Sand {
		t.Fatal("stroke continuation must bridge the pointer movement")
	}

	// After EndStroke the next point starts a fresh gesture: no bridge.
	w.EndStroke()
	w.StrokeTo(core.Sand, r2.Vec{X: 35.5, Y: 20.5})
	if kindAt(t, w, 25, 20) == core.Sand {
		t.Fatal("EndStroke must forget the previous point")
	}
}

func TestBrushRadiusSetterClamps(t *testing.T) {
	w := newTestWorld(20)
	if !w.SetIntParameter("brush_radius", 0) {
		t.Fatal("brush_radius must be settable")
	}
	if got := w.BrushRadius(); got != 1 {
		t.Fatalf("radius must clamp to 1, got %d", got)
	}
	w.SetIntParameter("brush_radius", 1000)
	if got := w.BrushRadius(); got != 64 {
		t.Fatalf("radius must clamp to 64, got %d", got)
	}
	if w.SetIntParameter("no_such_key", 3) {
		t.Fatal("unknown parameter keys must be rejected")
	}
}
