//go:build ebiten

package ui

import (
	"image/color"

	"forest-fire/internal/core"
	"forest-fire/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 15
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	params     core.ParameterSnapshot
	lines      []string
}

// NewHUD constructs a HUD showing params in a panel of the given width.
func NewHUD(params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, params: params}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text from the latest generation.
func (h *HUD) Update(snap forest.Snapshot, paused bool) {
	if h == nil {
		return
	}
	h.lines = Lines(snap, h.params, paused)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, hudPadding, y, color.White)
		y += hudLineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
