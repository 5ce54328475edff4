//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"sandgrid/internal/core"
	"sandgrid/internal/render"
	"sandgrid/internal/ui"
)

const HUDWidth = 220

type brushRadiusProvider interface {
	BrushRadius() int
}

// Game adapts a core simulation to the ebiten.Game interface. Each frame
// runs the phases in order: pointer input feeds the brush, the automaton
// advances one tick, and Draw drains the dirty cells into the screen.
type Game struct {
	sim     core.Sim
	brush   core.BrushPainter
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	cellSize int
	seed     int64
	paused   bool
	tickOnce bool

	tool      core.Kind
	painting  bool
	paintKind core.Kind

	shapes []core.Shape
	cursor r2.Vec
}

// New constructs a Game for the provided simulation. cellSize is both the
// pixel scale of one cell and the world-space unit the brush and shapes
// operate in.
func New(sim core.Sim, cellSize int, seed int64) *Game {
	if cellSize < 1 {
		cellSize = 1
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Grid()),
		hud:      ui.NewHUD(sim, HUDWidth),
		overlay:  ui.NewOverlay(),
		cellSize: cellSize,
		seed:     seed,
		tool:     core.Sand,
	}
	g.brush, _ = sim.(core.BrushPainter)
	return g
}

// Reset reinitializes the simulation state with the provided seed and
// re-announces the demo geometry, which Reset cleared inside the sim.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.painting = false
	g.announceGeometry()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.updateTool()
	g.updateBrushRadius()
	g.updateShapes()
	if g.overlay != nil {
		g.overlay.Update()
	}

	g.updatePointer()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) updateTool() {
	prev := g.tool
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.tool = core.Sand
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.tool = core.Solid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		g.tool = core.Air
	}
	if g.tool != prev {
		g.endStroke()
	}
}

func (g *Game) updateBrushRadius() {
	setter, ok := g.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	radius := g.brushRadius()
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		setter.SetIntParameter("brush_radius", radius-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		setter.SetIntParameter("brush_radius", radius+1)
	}
}

func (g *Game) updateShapes() {
	changed := false
	cell := float64(g.cellSize)
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.shapes = append(g.shapes, squareShape(g.shapeAnchor(), 12*cell))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.shapes = append(g.shapes, zigzagShape(g.shapeAnchor(), 6*cell))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		for i := range g.shapes {
			g.shapes[i].Rotation += 0.2
		}
		changed = len(g.shapes) > 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		changed = len(g.shapes) > 0
		g.shapes = g.shapes[:0]
	}
	if changed {
		g.announceGeometry()
	}
}

// updatePointer turns the current mouse state into brush gestures. Painting
// happens before the tick so the tick observes the freshly painted cells.
func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	g.cursor = r2.Vec{X: float64(mx), Y: float64(my)}
	if g.brush == nil {
		return
	}

	kind := g.tool
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		kind = core.Air
		pressed = true
	}

	viewPx := g.sim.Size().W * g.cellSize
	inView := mx >= 0 && mx < viewPx && my >= 0 && my < viewPx

	if !pressed || !inView {
		g.endStroke()
		return
	}
	if g.painting && g.paintKind != kind {
		g.endStroke()
	}
	g.brush.StrokeTo(kind, g.cursor)
	g.painting = true
	g.paintKind = kind
}

func (g *Game) endStroke() {
	if g.painting && g.brush != nil {
		g.brush.EndStroke()
	}
	g.painting = false
}

// shapeAnchor places new demo shapes at the cursor when it is over the
// view, otherwise at the view center.
func (g *Game) shapeAnchor() r2.Vec {
	viewPx := float64(g.sim.Size().W * g.cellSize)
	if g.cursor.X >= 0 && g.cursor.X < viewPx && g.cursor.Y >= 0 && g.cursor.Y < viewPx {
		return g.cursor
	}
	return r2.Vec{X: viewPx / 2, Y: viewPx / 2}
}

func (g *Game) announceGeometry() {
	if gr, ok := g.sim.(core.GeometryReceiver); ok {
		gr.OnGeometryChanged(g.shapes)
	}
}

func (g *Game) brushRadius() int {
	if p, ok := g.sim.(brushRadiusProvider); ok {
		return p.BrushRadius()
	}
	return 0
}

// Draw renders the current simulation state, draining the dirty cells.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Sync(g.sim.Grid())
	g.painter.Draw(screen, g.cellSize)
	if g.overlay != nil {
		radiusPx := float64(g.brushRadius() * g.cellSize)
		g.overlay.Draw(screen, g.shapes, g.cursor, radiusPx)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.cellSize, ui.Status{
			Tool:       g.tool.String(),
			Paused:     g.paused,
			ShapeCount: len(g.shapes),
			Tick:       tickOf(g.sim),
		})
	}
}

// Layout returns the logical screen size: the scaled grid plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cellSize + HUDWidth, s.H * g.cellSize
}

type tickProvider interface {
	Tick() uint64
}

func tickOf(sim core.Sim) uint64 {
	if p, ok := sim.(tickProvider); ok {
		return p.Tick()
	}
	return 0
}

func squareShape(center r2.Vec, side float64) core.Shape {
	h := side / 2
	return core.Shape{
		Position: center,
		Vertices: []r2.Vec{
			{X: -h, Y: -h},
			{X: h, Y: -h},
			{X: h, Y: h},
			{X: -h, Y: h},
		},
		Closed: true,
	}
}

func zigzagShape(start r2.Vec, step float64) core.Shape {
	return core.Shape{
		Position: start,
		Vertices: []r2.Vec{
			{X: -2 * step, Y: 0},
			{X: -step, Y: -step},
			{X: 0, Y: 0},
			{X: step, Y: -step},
			{X: 2 * step, Y: 0},
		},
	}
}
