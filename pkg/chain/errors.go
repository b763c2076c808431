package chain

import "errors"

// Move rejections. Board.Move wraps these with the offending player and
// coordinates, so compare with errors.Is.
var (
	// ErrNotCurrentPlayerMove is returned when a player moves out of turn.
	ErrNotCurrentPlayerMove = errors.New("not the current player's move")
	// ErrMoveOutsideBoard is returned for coordinates off the grid.
	ErrMoveOutsideBoard = errors.New("move outside board")
	// ErrOtherPlayersCell is returned when the target cell belongs to someone else.
	ErrOtherPlayersCell = errors.New("cell owned by another player")
	// ErrMoveNotComplete is returned while a cascade is still being resolved.
	ErrMoveNotComplete = errors.New("previous move not complete")
	// ErrGameOver is returned once a winner has been declared.
	ErrGameOver = errors.New("game over")
)

// Construction failures.
var (
	ErrBoardTooSmall = errors.New("board needs at least 3 rows and 3 columns")
	ErrTooFewPlayers = errors.New("board needs at least 2 players")
)
