package soak

import (
	"fmt"

	"chain-reaction/pkg/chain"
)

// CheckInvariants verifies the board's bookkeeping:
//   - a cell holds atoms exactly when it has an owner
//   - a settled board has every cell below critical mass
//   - atoms on the board plus atoms in flight equal the moves played, while
//     the board is Waiting or Exploding
//   - the current player is alive while Waiting
func CheckInvariants(b *chain.Board) error {
	rows, cols := b.Rows(), b.Cols()
	phase := b.Phase()
	_, waiting := phase.(chain.Waiting)

	var total uint64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := chain.Pos{Row: r, Col: c}
			cell, _ := b.Cell(p)
			_, owned := cell.Owner()
			if owned == cell.Empty() {
				return fmt.Errorf("cell %v: %d atoms, owned=%t", p, cell.Atoms(), owned)
			}
			if waiting && cell.Atoms() >= chain.CriticalMass(p, rows, cols) {
				return fmt.Errorf("cell %v: %d atoms at rest, critical mass %d", p, cell.Atoms(), chain.CriticalMass(p, rows, cols))
			}
			total += uint64(cell.Atoms())
		}
	}

	ph, exploding := phase.(chain.Exploding)
	for _, p := range ph.Pending {
		total += uint64(chain.CriticalMass(p, rows, cols))
	}
	if (exploding || waiting) && total != uint64(b.Moves()) {
		return fmt.Errorf("%s: %d atoms for %d moves", phase, total, b.Moves())
	}

	if waiting && !b.Alive(b.CurrentPlayer()) {
		return fmt.Errorf("player %d to move but eliminated", b.CurrentPlayer())
	}
	return nil
}
