package game

import (
	"fmt"
	"math"
	"strings"
)

// Board is an N×N grid of cells stored in row-major order. Cell values are fixed
// at construction, only ownership changes.
type Board struct {
	size   int      // Side length N
	values []int    // Value per cell, indexed by cell
	owners []Player // Owner per cell, indexed by cell (Empty if unoccupied)
}

// Snapshot is a saved copy of a board's ownership, used to undo speculative moves.
type Snapshot []Player

// NewBoard initializes a board from row-major values and owners.
func NewBoard(values []int, owners []Player) (*Board, error) {
	if len(values) != len(owners) {
		return nil, fmt.Errorf("board has %d values but %d owners", len(values), len(owners))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("board has no cells")
	}
	size := int(math.Sqrt(float64(len(values))))
	if size*size != len(values) {
		return nil, fmt.Errorf("board has %d cells which is not a square", len(values))
	}
	for i, owner := range owners {
		if owner != Empty && owner != X && owner != O {
			return nil, fmt.Errorf("cell %d has unknown owner %q", i, byte(owner))
		}
	}

	b := &Board{
		size:   size,
		values: make([]int, len(values)),
		owners: make([]Player, len(owners)),
	}
	copy(b.values, values)
	copy(b.owners, owners)
	return b, nil
}

// EmptyBoard returns a board with the given values and no occupied cells.
func EmptyBoard(values []int) (*Board, error) {
	owners := make([]Player, len(values))
	for i := range owners {
		owners[i] = Empty
	}
	return NewBoard(values, owners)
}

func (b *Board) Size() int {
	return b.size
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.owners)
}

func (b *Board) Value(cell int) int {
	return b.values[cell]
}

func (b *Board) Owner(cell int) Player {
	return b.owners[cell]
}

func (b *Board) Occupy(cell int, p Player) {
	b.owners[cell] = p
}

func (b *Board) Clear(cell int) {
	b.owners[cell] = Empty
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, owner := range b.owners {
		if owner == Empty {
			return false
		}
	}
	return true
}

// Neighbor returns the cell one step from cell in direction d. Left and right
// never wrap onto another row.
func (b *Board) Neighbor(cell int, d Direction) (int, bool) {
	switch d {
	case Left:
		if cell%b.size == 0 {
			return -1, false
		}
		return cell - 1, true
	case Right:
		if (cell+1)%b.size == 0 {
			return -1, false
		}
		return cell + 1, true
	case Up:
		if cell-b.size < 0 {
			return -1, false
		}
		return cell - b.size, true
	case Down:
		if cell+b.size >= len(b.owners) {
			return -1, false
		}
		return cell + b.size, true
	}
	return -1, false
}

func (b *Board) Snapshot() Snapshot {
	s := make(Snapshot, len(b.owners))
	copy(s, b.owners)
	return s
}

func (b *Board) Restore(s Snapshot) {
	copy(b.owners, s)
}

// Copy returns a deep copy of the board. Values are shared since they never change.
func (b *Board) Copy() *Board {
	return &Board{
		size:   b.size,
		values: b.values,
		owners: b.Snapshot(),
	}
}

// Equal reports whether both boards have the same values and owners cell for cell.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || len(b.owners) != len(other.owners) {
		return false
	}
	for i := range b.owners {
		if b.owners[i] != other.owners[i] || b.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Bound is the largest magnitude a score on this board can reach.
func (b *Board) Bound() int {
	bound := 0
	for _, v := range b.values {
		if v < 0 {
			v = -v
		}
		bound += v
	}
	return bound
}

// Count returns how many cells p owns.
func (b *Board) Count(p Player) int {
	n := 0
	for _, owner := range b.owners {
		if owner == p {
			n++
		}
	}
	return n
}

// Coordinates converts a cell into its 1-indexed column letter and row number.
func (b *Board) Coordinates(cell int) (column byte, row int) {
	return 'A' + byte(cell%b.size), cell/b.size + 1
}

// Rows renders ownership one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, 0, b.size)
	for r := 0; r < b.size; r++ {
		row := make([]byte, b.size)
		for c := 0; c < b.size; c++ {
			row[c] = byte(b.owners[r*b.size+c])
		}
		rows = append(rows, string(row))
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
