//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sandgrid/internal/core"
)

const lineHeight = 14

var (
	panelColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	labelColor = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	valueColor = color.White
)

// HUD renders the status panel to the right of the simulation view: the
// active tool, the sim's parameter snapshot and the key bindings.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	title string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: "sandgrid — " + sim.Name()}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Draw paints the panel at offsetX on dst.
func (h *HUD) Draw(dst *ebiten.Image, offsetX int, st Status) {
	if h.width <= 0 {
		return
	}
	height := dst.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	y := lineHeight
	y = h.line(h.title, valueColor, y)
	y += lineHeight / 2

	y = h.line(fmt.Sprintf("tool: %s", st.Tool), valueColor, y)
	if st.Paused {
		y = h.line("paused", valueColor, y)
	} else {
		y = h.line(fmt.Sprintf("tick: %d", st.Tick), labelColor, y)
	}
	y = h.line(fmt.Sprintf("shapes: %d", st.ShapeCount), labelColor, y)
	y += lineHeight / 2

	if provider, ok := h.sim.(core.ParametersProvider); ok {
		snapshot := provider.Parameters()
		for _, group := range snapshot.Groups {
			y = h.line(group.Name, valueColor, y)
			for _, p := range group.Params {
				y = h.line(fmt.Sprintf("  %s: %s", p.Label, p.Value), labelColor, y)
			}
			y += lineHeight / 2
		}
	}

	for _, help := range []string{
		"1/2/3 tool  [ ] radius",
		"lmb paint  rmb erase",
		"g square  h path",
		"t rotate  x clear",
		"o outlines  b brush ring",
		"space pause  n step",
		"r reset  q quit",
	} {
		y = h.line(help, labelColor, y)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	dst.DrawImage(h.panel, op)
}

func (h *HUD) line(s string, col color.Color, y int) int {
	text.Draw(h.panel, s, basicfont.Face7x13, 8, y, col)
	return y + lineHeight
}
