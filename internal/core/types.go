package core

import (
	"errors"
	"fmt"

	"chain-reaction/pkg/chain"
)

// Size describes the dimensions of a board.
type Size struct {
	Rows int
	Cols int
}

// Engine is everything a front end may do with a game: read its state, submit
// a move and advance a cascade one wave at a time.
type Engine interface {
	Rows() int
	Cols() int
	Players() int
	CurrentPlayer() chain.Player
	Phase() chain.Phase
	Winner() (chain.Player, bool)
	Snapshot() [][]chain.CellState
	Move(player chain.Player, row, col int) error
	Step() bool
}

var _ Engine = (*chain.Board)(nil)

// SizeOf returns the board dimensions of e.
func SizeOf(e Engine) Size { return Size{Rows: e.Rows(), Cols: e.Cols()} }

// ErrRunaway is returned by Settle when a cascade exceeds its step budget.
var ErrRunaway = errors.New("cascade did not settle")

// Settle calls Step until it reports no more work and returns the number of
// waves processed. A positive limit caps the number of Step calls.
func Settle(e Engine, limit int) (int, error) {
	steps := 0
	for e.Step() {
		steps++
		if limit > 0 && steps >= limit {
			return steps, fmt.Errorf("%w after %d steps (%s)", ErrRunaway, steps, e.Phase())
		}
	}
	return steps, nil
}

// Busy reports whether e is in the middle of resolving a move.
func Busy(e Engine) bool {
	switch e.Phase().(type) {
	case chain.Exploding, chain.CheckingWin:
		return true
	default:
		return false
	}
}
