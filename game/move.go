package game

import (
	"errors"
	"fmt"
)

const (
	StakeKind = "Stake"
	RaidKind  = "Raid"
)

var ErrIllegalMove = errors.New("illegal move")

// Move is either a Stake or a Raid.
type Move interface {
	// Kind returns StakeKind or RaidKind
	Kind() string
	// Target returns the cell the new piece lands on, or false if the move leaves the board
	Target(b *Board) (int, bool)
	isMove()
}

// Stake places a piece on an unoccupied cell.
type Stake struct {
	Cell int
}

func (Stake) Kind() string { return StakeKind }

func (s Stake) Target(b *Board) (int, bool) {
	if s.Cell < 0 || s.Cell >= b.Len() {
		return -1, false
	}
	return s.Cell, true
}

func (s Stake) String() string {
	return fmt.Sprintf("Stake(%d)", s.Cell)
}

func (Stake) isMove() {}

// Raid places a piece next to an owned cell and conquers the enemy neighbors of
// the new piece.
type Raid struct {
	Origin    int
	Direction Direction
}

func (Raid) Kind() string { return RaidKind }

func (r Raid) Target(b *Board) (int, bool) {
	if r.Origin < 0 || r.Origin >= b.Len() {
		return -1, false
	}
	return b.Neighbor(r.Origin, r.Direction)
}

func (r Raid) String() string {
	return fmt.Sprintf("Raid(%d, %s)", r.Origin, r.Direction)
}

func (Raid) isMove() {}

// Apply plays move for mover on the board.
func Apply(b *Board, mover Player, move Move) error {
	target, ok := move.Target(b)
	if !ok {
		return fmt.Errorf("%v leaves the board: %w", move, ErrIllegalMove)
	}
	if b.Owner(target) != Empty {
		return fmt.Errorf("%v lands on occupied cell %d: %w", move, target, ErrIllegalMove)
	}

	switch m := move.(type) {
	case Stake:
		b.Occupy(target, mover)
	case Raid:
		if b.Owner(m.Origin) != mover {
			return fmt.Errorf("%v starts from a cell %s does not own: %w", move, mover, ErrIllegalMove)
		}
		b.Occupy(target, mover)
		b.Conquer(target, mover)
	default:
		panic("unexpected move type")
	}
	return nil
}

// LegalMoves returns every stake and raid available to p, in cell order.
func LegalMoves(b *Board, p Player) []Move {
	moves := []Move{}
	for i, owner := range b.owners {
		switch owner {
		case Empty:
			moves = append(moves, Stake{Cell: i})
		case p:
			for _, d := range Directions {
				if n, ok := b.Neighbor(i, d); ok && b.owners[n] == Empty {
					moves = append(moves, Raid{Origin: i, Direction: d})
				}
			}
		}
	}
	return moves
}
