package chain

// Player identifies a seat at the board. Seats are numbered from zero.
type Player int

// NoPlayer is reported as the owner of cells nobody holds.
const NoPlayer Player = -1

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Cell is one square of the board: the atoms stacked on it and the player who
// placed or captured them. The zero value is an empty cell.
type Cell struct {
	owner Player
	owned bool
	atoms uint32
}

// Owner returns the owning player and whether the cell is owned at all.
func (c Cell) Owner() (Player, bool) {
	if !c.owned {
		return NoPlayer, false
	}
	return c.owner, true
}

// Atoms returns the number of atoms on the cell.
func (c Cell) Atoms() uint32 { return c.atoms }

// Empty reports whether the cell holds no atoms.
func (c Cell) Empty() bool { return c.atoms == 0 }

// CriticalMass returns the atom count at which the cell at p explodes on a
// rows x cols board: 2 in a corner, 3 on an edge, 4 inside. It always equals the
// number of neighbours the cell has.
func CriticalMass(p Pos, rows, cols int) uint32 {
	mass := uint32(4)
	if p.Row == 0 || p.Row == rows-1 {
		mass--
	}
	if p.Col == 0 || p.Col == cols-1 {
		mass--
	}
	return mass
}

// AddAtoms drops n atoms of player onto the cell at p and reports whether the
// cell reached critical mass. The cell is captured by player whatever its
// previous owner. On explosion the critical mass is subtracted, leftovers stay
// with player and a cell left with no atoms loses its owner.
//
// Legality (bounds, ownership) is the caller's concern. Adding zero atoms is a
// no-op so that an owned cell can never hold zero atoms.
func (c *Cell) AddAtoms(n uint32, player Player, p Pos, rows, cols int) bool {
	if n == 0 {
		return false
	}
	c.owner, c.owned = player, true
	c.atoms += n

	mass := CriticalMass(p, rows, cols)
	if c.atoms < mass {
		return false
	}
	c.atoms -= mass
	if c.atoms == 0 {
		c.reset()
	}
	return true
}

func (c *Cell) reset() { *c = Cell{} }

// Neighbors returns the in-bounds orthogonal neighbours of p in the order up,
// down, left, right.
func Neighbors(p Pos, rows, cols int) []Pos {
	out := make([]Pos, 0, 4)
	if p.Row > 0 {
		out = append(out, Pos{Row: p.Row - 1, Col: p.Col})
	}
	if p.Row+1 < rows {
		out = append(out, Pos{Row: p.Row + 1, Col: p.Col})
	}
	if p.Col > 0 {
		out = append(out, Pos{Row: p.Row, Col: p.Col - 1})
	}
	if p.Col+1 < cols {
		out = append(out, Pos{Row: p.Row, Col: p.Col + 1})
	}
	return out
}
