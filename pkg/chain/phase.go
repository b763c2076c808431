package chain

import "fmt"

// Phase is the board's state machine value. It is one of Waiting, Exploding,
// CheckingWin or GameOver; switch on the concrete type.
type Phase interface {
	fmt.Stringer
	isPhase()
}

// Waiting means the current player may move.
type Waiting struct{}

// Exploding holds the cells that reached critical mass and will push their
// atoms outward on the next Step.
type Exploding struct {
	Pending []Pos
}

// CheckingWin means the cascade settled and liveness is recomputed on the next
// Step.
type CheckingWin struct{}

// GameOver is terminal.
type GameOver struct {
	Winner Player
}

func (Waiting) isPhase()     {}
func (Exploding) isPhase()   {}
func (CheckingWin) isPhase() {}
func (GameOver) isPhase()    {}

func (Waiting) String() string     { return "waiting" }
func (e Exploding) String() string { return fmt.Sprintf("exploding(%d)", len(e.Pending)) }
func (CheckingWin) String() string { return "checking-win" }
func (g GameOver) String() string  { return fmt.Sprintf("game-over(player %d)", g.Winner) }

func unknownPhase(p Phase) string { return fmt.Sprintf("chain: unknown phase %T", p) }
