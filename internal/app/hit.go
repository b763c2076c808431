package app

import "chain-reaction/pkg/chain"

// cellAt maps a cursor position to the board cell under it. Positions outside
// the grid, including the HUD strip and anything left of or above the window,
// report false.
func cellAt(x, y, scale, rows, cols int) (chain.Pos, bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return chain.Pos{}, false
	}
	row, col := y/scale, x/scale
	if row >= rows || col >= cols {
		return chain.Pos{}, false
	}
	return chain.Pos{Row: row, Col: col}, true
}
