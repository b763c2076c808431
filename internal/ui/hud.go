//go:build ebiten

package ui

import (
	"image/color"

	"chain-reaction/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the height in pixels of the status bar under the board.
const HUDHeight = 28

// HUD renders the status bar: whose turn it is, or who won, in that player's
// colour.
type HUD struct {
	width   int
	palette []color.RGBA
	panel   *ebiten.Image

	status string
	colour color.Color
}

// NewHUD constructs a HUD for a board width in pixels.
func NewHUD(width int, palette []color.RGBA) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{
		width:   width,
		palette: palette,
		panel:   ebiten.NewImage(width, HUDHeight),
		colour:  color.White,
	}
}

// Update refreshes the cached status from the engine.
func (h *HUD) Update(e core.Engine) {
	h.status = core.Status(e)
	p := core.StatusPlayer(e)
	h.colour = color.White
	if p >= 0 && int(p) < len(h.palette) {
		h.colour = h.palette[p]
	}
}

// Draw paints the status bar with its top edge at y.
func (h *HUD) Draw(screen *ebiten.Image, y int) {
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, h.status, face, 8, HUDHeight/2+face.Ascent/2, h.colour)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
