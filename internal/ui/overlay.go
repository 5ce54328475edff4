//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
)

var (
	outlineColor = color.RGBA{R: 90, G: 200, B: 255, A: 200}
	brushColor   = color.RGBA{R: 255, G: 255, B: 255, A: 120}
)

// Overlay draws optional debugging visuals on top of the base simulation:
// wireframes of the current shape list and a ring showing the brush extent.
type Overlay struct {
	showOutlines bool
	showBrush    bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showBrush: true}
}

// Update toggles the overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showOutlines = !o.showOutlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBrush = !o.showBrush
	}
}

// Draw renders the enabled layers. Shapes are drawn from their world-space
// vertices, which line up with screen pixels because the view is scaled by
// the cell size.
func (o *Overlay) Draw(dst *ebiten.Image, shapes []core.Shape, brushAt r2.Vec, brushRadiusPx float64) {
	if o.showOutlines {
		for _, s := range shapes {
			verts := s.WorldVertices()
			if len(verts) < 2 {
				continue
			}
			last := len(verts) - 1
			for i := 0; i < last; i++ {
				strokeSegment(dst, verts[i], verts[i+1])
			}
			if s.Closed {
				strokeSegment(dst, verts[last], verts[0])
			}
		}
	}
	if o.showBrush && brushRadiusPx > 0 {
		vector.StrokeCircle(dst, float32(brushAt.X), float32(brushAt.Y), float32(brushRadiusPx), 1, brushColor, true)
	}
}

func strokeSegment(dst *ebiten.Image, a, b r2.Vec) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, outlineColor, true)
}
