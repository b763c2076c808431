package render

import (
	"fmt"
	"image/color"

	"chain-reaction/pkg/chain"

	"github.com/lucasb-eyer/go-colorful"
)

// Colours for cells nobody owns.
var (
	EmptyColor     = color.RGBA{R: 28, G: 28, B: 34, A: 255}
	ExplosionColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// Palette returns one colour per player, hues spaced evenly around the colour
// wheel at half saturation and lightness.
func Palette(players int) []color.RGBA {
	if players <= 0 {
		return nil
	}
	out := make([]color.RGBA, players)
	for p := range out {
		out[p] = HSL(float64(p)*360/float64(players), 0.5, 0.5)
	}
	return out
}

// HSL converts hue (degrees), saturation and lightness (0..1) to an opaque RGBA.
func HSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CellColor picks the fill colour for one cell.
func CellColor(cell chain.CellState, palette []color.RGBA) color.RGBA {
	switch cell.Kind {
	case chain.CellExploding:
		return ExplosionColor
	case chain.CellOwned:
		if int(cell.Owner) < len(palette) && cell.Owner >= 0 {
			return palette[cell.Owner]
		}
	}
	return EmptyColor
}

// fillCellsRGBA converts a board snapshot into RGBA pixels in buf, one pixel
// per cell in row-major order. Rows longer than cols are truncated.
func fillCellsRGBA(buf []byte, cells [][]chain.CellState, cols int, palette []color.RGBA) {
	for r, row := range cells {
		for c, cell := range row {
			if c >= cols {
				break
			}
			base := (r*cols + c) * 4
			if base+3 >= len(buf) {
				return
			}
			col := CellColor(cell, palette)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
