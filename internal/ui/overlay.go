//go:build ebiten

package ui

import (
	"image/color"

	"chain-reaction/pkg/chain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	atomColor     = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	burstColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// Overlay draws cell borders and the atoms stacked on each cell on top of the
// painted board.
type Overlay struct {
	scale int
}

// NewOverlay constructs an overlay for cells scale pixels wide.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale}
}

// Draw paints the grid lines and atom markers for the snapshot.
func (o *Overlay) Draw(screen *ebiten.Image, cells [][]chain.CellState) {
	s := float32(o.scale)
	radius := s / 9
	for r, row := range cells {
		for c, cell := range row {
			x, y := float32(c)*s, float32(r)*s
			clr := atomColor
			if cell.Kind == chain.CellExploding {
				clr = burstColor
			}
			for _, at := range atomLayout(cell.Atoms) {
				vector.DrawFilledCircle(screen, x+at[0]*s, y+at[1]*s, radius, clr, true)
			}
		}
	}

	if len(cells) == 0 {
		return
	}
	w := float32(len(cells[0])) * s
	h := float32(len(cells)) * s
	for r := 0; r <= len(cells); r++ {
		y := float32(r) * s
		vector.StrokeLine(screen, 0, y, w, y, 1, gridLineColor, false)
	}
	for c := 0; c <= len(cells[0]); c++ {
		x := float32(c) * s
		vector.StrokeLine(screen, x, 0, x, h, 1, gridLineColor, false)
	}
}
