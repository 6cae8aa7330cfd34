package searcher

import (
	"conquest/game"
	"math"
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

// ParseAlgorithm maps "MINIMAX" to Minimax. Every other name selects AlphaBeta.
func ParseAlgorithm(name string) Algorithm {
	if name == "MINIMAX" {
		return Minimax
	}
	return AlphaBeta
}

func (a Algorithm) String() string {
	if a == Minimax {
		return "MINIMAX"
	}
	return "ALPHABETA"
}

// Recording decides which nodes may replace the move reported by a search.
type Recording int

const (
	// RecordRoot keeps the best move among the root's own children.
	RecordRoot Recording = iota
	// RecordEveryMax lets every maximizing node in the tree overwrite the best move
	// whenever it finds a value above the best seen anywhere so far, including a raid
	// direction found by any maximizing raid.
	RecordEveryMax
)

// ParseRecording accepts "root" and "every-max".
func ParseRecording(name string) (Recording, bool) {
	switch name {
	case "root", "":
		return RecordRoot, true
	case "every-max":
		return RecordEveryMax, true
	default:
		return RecordRoot, false
	}
}

func (r Recording) String() string {
	if r == RecordEveryMax {
		return "every-max"
	}
	return "root"
}

// Outcome is the result of one search. Move is nil when no move was recorded.
type Outcome struct {
	Move  game.Move
	Value int
}

func (o Outcome) Found() bool {
	return o.Move != nil
}

// Unset running values. Real scores never reach them.
const (
	worstMax = math.MinInt
	worstMin = math.MaxInt
)

func worst(maximizing bool) int {
	if maximizing {
		return worstMax
	}
	return worstMin
}

// better reports whether a is strictly preferable to b for the given role.
func better(maximizing bool, a, b int) bool {
	if maximizing {
		return a > b
	}
	return a < b
}
