package game

import "fmt"

// Player is the symbol a cell is owned by. Empty marks an unoccupied cell.
type Player byte

const (
	Empty Player = '.'
	X     Player = 'X'
	O     Player = 'O'
)

// Opponent returns the other side. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (p Player) String() string {
	return string(p)
}

// ParsePlayer accepts the single-character tokens used by problem files.
func ParsePlayer(token string) (Player, error) {
	if len(token) != 1 {
		return Empty, fmt.Errorf("invalid player %q", token)
	}
	switch p := Player(token[0]); p {
	case X, O, Empty:
		return p, nil
	default:
		return Empty, fmt.Errorf("invalid player %q", token)
	}
}

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists raid directions in the order they are explored.
var Directions = [...]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
