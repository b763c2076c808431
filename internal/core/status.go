package core

import (
	"fmt"

	"chain-reaction/pkg/chain"
)

// Status returns a one-line description of whose turn it is, what the board
// is busy with or who won.
func Status(e Engine) string {
	switch ph := e.Phase().(type) {
	case chain.GameOver:
		return fmt.Sprintf("Winner: player %d", ph.Winner)
	case chain.Exploding:
		return fmt.Sprintf("Player %d: %d cells exploding", e.CurrentPlayer(), len(ph.Pending))
	case chain.CheckingWin:
		return fmt.Sprintf("Player %d: cascade settled", e.CurrentPlayer())
	default:
		return fmt.Sprintf("Current player: %d", e.CurrentPlayer())
	}
}

// StatusPlayer returns the player the status line is about.
func StatusPlayer(e Engine) chain.Player {
	if w, ok := e.Winner(); ok {
		return w
	}
	return e.CurrentPlayer()
}
