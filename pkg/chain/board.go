package chain

import (
	"fmt"
	"strings"
)

// Minimum board dimensions and seat count accepted by NewBoard.
const (
	MinRows    = 3
	MinCols    = 3
	MinPlayers = 2
)

// Board is a chain reaction game: the grid, whose turn it is, who is still in
// and the phase of the move currently being resolved.
//
// A Board is not safe for concurrent use. Callers serialise Move and Step.
type Board struct {
	grid    *grid
	players int

	current Player
	alive   []bool
	moved   []bool
	phase   Phase

	elimination Elimination

	moves int
	waves int
}

// NewBoard returns an empty rows x cols board for the given number of players.
// Player 0 moves first.
func NewBoard(rows, cols, players int, opts ...Option) (*Board, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, rows, cols)
	}
	if players < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, players)
	}
	b := &Board{
		grid:    newGrid(rows, cols),
		players: players,
		alive:   make([]bool, players),
		moved:   make([]bool, players),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Reset()
	return b, nil
}

// MustNewBoard is like NewBoard but panics on invalid dimensions.
func MustNewBoard(rows, cols, players int, opts ...Option) *Board {
	b, err := NewBoard(rows, cols, players, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Reset clears the grid and starts a new game with the same dimensions.
func (b *Board) Reset() {
	b.grid.clear()
	for i := range b.alive {
		b.alive[i] = true
		b.moved[i] = false
	}
	b.current = 0
	b.phase = Waiting{}
	b.moves = 0
	b.waves = 0
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.grid.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.grid.cols }

// Players returns the number of seats, eliminated ones included.
func (b *Board) Players() int { return b.players }

// CurrentPlayer returns the player to move, or the player whose move is being
// resolved.
func (b *Board) CurrentPlayer() Player { return b.current }

// Elimination returns the board's elimination policy.
func (b *Board) Elimination() Elimination { return b.elimination }

// Moves returns the number of accepted moves since the game started.
func (b *Board) Moves() int { return b.moves }

// Waves returns the number of explosion waves processed for the latest move.
// A cascade that leaves the mover as the only owner stops there, so the count
// and the final grid can be smaller than a cascade run to exhaustion.
func (b *Board) Waves() int { return b.waves }

// Alive reports whether p is still in the game.
func (b *Board) Alive(p Player) bool {
	if p < 0 || int(p) >= b.players {
		return false
	}
	return b.alive[p]
}

// Phase returns the current phase. An Exploding phase carries a copy of the
// pending cells.
func (b *Board) Phase() Phase {
	if e, ok := b.phase.(Exploding); ok {
		return Exploding{Pending: append([]Pos(nil), e.Pending...)}
	}
	return b.phase
}

// Winner returns the winning player once the game is over.
func (b *Board) Winner() (Player, bool) {
	if g, ok := b.phase.(GameOver); ok {
		return g.Winner, true
	}
	return NoPlayer, false
}

// Cell returns a copy of the cell at p and whether p lies on the board.
func (b *Board) Cell(p Pos) (Cell, bool) {
	if !b.grid.contains(p) {
		return Cell{}, false
	}
	return *b.grid.at(p), true
}

// Move places one atom of player on (row, col). It fails without touching the
// board when the game is over, a cascade is unresolved, it is not player's
// turn, the cell is off the board or the cell belongs to another player.
//
// A move that sets off an explosion leaves the board Exploding; call Step until
// it returns false to resolve it.
func (b *Board) Move(player Player, row, col int) error {
	switch ph := b.phase.(type) {
	case GameOver:
		return fmt.Errorf("%w: player %d won", ErrGameOver, ph.Winner)
	case Exploding, CheckingWin:
		return fmt.Errorf("%w: player %d's cascade is %s", ErrMoveNotComplete, b.current, ph)
	case Waiting:
	default:
		panic(unknownPhase(ph))
	}

	if player != b.current {
		return fmt.Errorf("%w: player %d moved, player %d to play", ErrNotCurrentPlayerMove, player, b.current)
	}
	p := Pos{Row: row, Col: col}
	if !b.grid.contains(p) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrMoveOutsideBoard, row, col, b.grid.rows, b.grid.cols)
	}
	cell := b.grid.at(p)
	if owner, ok := cell.Owner(); ok && owner != player {
		return fmt.Errorf("%w: (%d, %d) belongs to player %d", ErrOtherPlayersCell, row, col, owner)
	}

	b.moves++
	b.waves = 0
	b.moved[player] = true
	if cell.AddAtoms(1, player, p, b.grid.rows, b.grid.cols) {
		b.phase = Exploding{Pending: []Pos{p}}
		return nil
	}
	b.nextPlayer()
	return nil
}

// Step advances the simulation by one stage and reports whether another Step
// is needed. While Exploding it processes one wave; once the cascade settles
// it checks for a winner and hands the turn on.
func (b *Board) Step() bool {
	switch ph := b.phase.(type) {
	case Exploding:
		b.phase = b.explode(ph.Pending)
		b.waves++
		return true
	case CheckingWin:
		b.checkWin()
		return false
	case Waiting, GameOver:
		return false
	default:
		panic(unknownPhase(ph))
	}
}

// explode pushes one atom from every pending cell into each of its
// neighbours, on behalf of the current player, and returns the next phase.
// A cell hit by several explosions takes one atom per hit but is queued once.
//
// The cascade is cut short once the current player holds every owned cell:
// nothing is left to capture and an overfull board would otherwise never
// settle.
func (b *Board) explode(pending []Pos) Phase {
	rows, cols := b.grid.rows, b.grid.cols
	var next []Pos
	queued := make(map[Pos]struct{})
	for _, p := range pending {
		for _, n := range Neighbors(p, rows, cols) {
			if !b.grid.at(n).AddAtoms(1, b.current, n, rows, cols) {
				continue
			}
			if _, ok := queued[n]; ok {
				continue
			}
			queued[n] = struct{}{}
			next = append(next, n)
		}
	}
	if len(next) == 0 || b.unopposed() {
		return CheckingWin{}
	}
	return Exploding{Pending: next}
}

// unopposed reports whether the current player owns at least one cell and
// every other player would be eliminated.
func (b *Board) unopposed() bool {
	owns := b.ownership()
	if !owns[b.current] {
		return false
	}
	for p := range owns {
		if Player(p) != b.current && b.survives(Player(p), owns) {
			return false
		}
	}
	return true
}

func (b *Board) ownership() []bool {
	owns := make([]bool, b.players)
	for _, c := range b.grid.cells {
		if owner, ok := c.Owner(); ok {
			owns[owner] = true
		}
	}
	return owns
}

func (b *Board) survives(p Player, owns []bool) bool {
	if owns[p] {
		return true
	}
	return b.elimination == ProtectUnmoved && !b.moved[p]
}

func (b *Board) checkWin() {
	owns := b.ownership()
	alive := 0
	last := NoPlayer
	for p := range b.alive {
		b.alive[p] = b.survives(Player(p), owns)
		if b.alive[p] {
			alive++
			last = Player(p)
		}
	}
	if alive == 1 {
		b.phase = GameOver{Winner: last}
		return
	}
	b.nextPlayer()
}

// nextPlayer hands the turn to the first alive player after the current one,
// wrapping around, and returns the board to Waiting.
func (b *Board) nextPlayer() {
	for i := 1; i <= b.players; i++ {
		p := Player((int(b.current) + i) % b.players)
		if b.alive[p] {
			b.current = p
			break
		}
	}
	b.phase = Waiting{}
}

// CellKind tags a CellState.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellOwned
	CellExploding
)

// CellState is the rendering view of one cell. Owner is NoPlayer unless Kind
// is CellOwned.
type CellState struct {
	Kind  CellKind
	Owner Player
	Atoms uint32
}

// Snapshot returns the board as rows of CellState. Cells queued to explode are
// reported as CellExploding with whatever atoms they kept.
func (b *Board) Snapshot() [][]CellState {
	exploding := make(map[Pos]struct{})
	if e, ok := b.phase.(Exploding); ok {
		for _, p := range e.Pending {
			exploding[p] = struct{}{}
		}
	}
	out := make([][]CellState, b.grid.rows)
	for r := range out {
		out[r] = make([]CellState, b.grid.cols)
		for c := range out[r] {
			p := Pos{Row: r, Col: c}
			cell := b.grid.at(p)
			state := CellState{Kind: CellEmpty, Owner: NoPlayer, Atoms: cell.atoms}
			if _, ok := exploding[p]; ok {
				state.Kind = CellExploding
			} else if owner, ok := cell.Owner(); ok {
				state.Kind = CellOwned
				state.Owner = owner
			}
			out[r][c] = state
		}
	}
	return out
}

// String draws the board one row per line: |+n| for an exploding cell, |pn|
// for player p holding n atoms and |  | for an empty cell.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Snapshot() {
		for _, cell := range row {
			switch cell.Kind {
			case CellExploding:
				fmt.Fprintf(&sb, "|+%d|", cell.Atoms)
			case CellOwned:
				fmt.Fprintf(&sb, "|%d%d|", cell.Owner, cell.Atoms)
			default:
				sb.WriteString("|  |")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
