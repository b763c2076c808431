//go:build ebiten

package render

import (
	"image/color"

	"chain-reaction/pkg/chain"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it scaled
// up to the window.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the snapshot into the painter image and draws it at offset
// (x, y) with each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells [][]chain.CellState, palette []color.RGBA, scale int, x, y float64) {
	if len(cells) != gp.rows {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.cols, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}
