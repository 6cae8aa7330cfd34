package searcher

import (
	"conquest/experiments/metrics"
	"conquest/game"
)

// search holds the state shared by one tree walk. The board is mutated in place;
// every simulated move is undone before control returns to the caller.
type search struct {
	board      *game.Board
	mover      game.Player
	opponent   game.Player
	depthLimit int
	recording  Recording
	metrics    metrics.Collector

	// RecordRoot
	root struct {
		move  game.Move
		value int
	}

	// RecordEveryMax
	global struct {
		kind      string
		cell      int
		value     int
		direction game.Direction
		raidValue int
		hasDir    bool
	}
}

func newSearch(board *game.Board, mover game.Player, depthLimit int, recording Recording, collector metrics.Collector) *search {
	s := &search{
		board:      board,
		mover:      mover,
		opponent:   mover.Opponent(),
		depthLimit: depthLimit,
		recording:  recording,
		metrics:    collector,
	}
	s.root.value = worstMax
	s.global.cell = -1
	s.global.value = worstMax
	s.global.raidValue = worstMax
	return s
}

// actor is the player moving at a node: the root mover maximizes, its opponent minimizes.
func (s *search) actor(maximizing bool) game.Player {
	if maximizing {
		return s.mover
	}
	return s.opponent
}

// terminal reports whether the walk stops at this depth.
func (s *search) terminal(depth int) bool {
	return depth >= s.depthLimit || s.board.IsFull()
}

func (s *search) leaf() int {
	s.metrics.AddLeaf()
	return game.Score(s.board, s.mover)
}

// window carries alpha-beta bounds. A nil window means plain minimax.
type window struct {
	alpha int
	beta  int
}

// child evaluates the position after the acting side has moved.
func (s *search) child(depth int, maximizing bool, w *window) int {
	if w == nil {
		return s.minimax(depth+1, !maximizing)
	}
	return s.alphabeta(depth+1, !maximizing, w.alpha, w.beta)
}

// stake simulates occupying an empty cell, evaluates the reply and clears it again.
func (s *search) stake(cell, depth int, maximizing bool, w *window) int {
	s.metrics.AddStake()
	s.board.Occupy(cell, s.actor(maximizing))
	value := s.child(depth, maximizing, w)
	s.board.Clear(cell)
	return value
}

// fold accumulates a node's running stake and raid values and the node value.
type fold struct {
	maximizing bool
	stake      int
	raid       int
	value      int
}

func newFold(maximizing bool) fold {
	w := worst(maximizing)
	return fold{maximizing: maximizing, stake: w, raid: w, value: w}
}

func (f *fold) addStake(v int) {
	if better(f.maximizing, v, f.stake) {
		f.stake = v
	}
}

func (f *fold) addRaid(v int) {
	if better(f.maximizing, v, f.raid) {
		f.raid = v
	}
}

// settle folds whichever running value is strictly better into the node value and
// returns its kind. Tied running values leave the node value untouched.
func (f *fold) settle() (string, bool) {
	switch {
	case better(f.maximizing, f.stake, f.raid):
		if better(f.maximizing, f.stake, f.value) {
			f.value = f.stake
		}
		return game.StakeKind, true
	case better(f.maximizing, f.raid, f.stake):
		if better(f.maximizing, f.raid, f.value) {
			f.value = f.raid
		}
		return game.RaidKind, true
	}
	return "", false
}

// expand walks every cell of a non-terminal node and returns its value. With a
// window it prunes as alpha-beta does.
func (s *search) expand(depth int, maximizing bool, w *window) int {
	actor := s.actor(maximizing)
	f := newFold(maximizing)

	for cell := 0; cell < s.board.Len(); cell++ {
		var (
			candidate game.Move
			value     int
			moved     bool
		)
		switch s.board.Owner(cell) {
		case game.Empty:
			value = s.stake(cell, depth, maximizing, w)
			f.addStake(value)
			candidate, moved = game.Stake{Cell: cell}, true
		case actor:
			var dir game.Direction
			value, dir, moved = s.raid(cell, depth, maximizing, w)
			f.addRaid(value)
			candidate = game.Raid{Origin: cell, Direction: dir}
		}

		kind, settled := f.settle()
		if maximizing {
			if settled {
				s.recordEveryMax(kind, cell, f.value)
			}
			if moved && depth == 0 {
				s.recordRoot(candidate, value)
			}
		}

		if w == nil {
			continue
		}
		if maximizing {
			if f.value >= w.beta {
				s.metrics.AddCutoff()
				return f.value
			}
			w.alpha = max(w.alpha, f.value)
		} else {
			if f.value <= w.alpha {
				s.metrics.AddCutoff()
				return f.value
			}
			w.beta = min(w.beta, f.value)
		}
	}
	return f.value
}

func (s *search) recordRoot(move game.Move, value int) {
	if s.recording != RecordRoot {
		return
	}
	if value > s.root.value {
		s.root.move = move
		s.root.value = value
	}
}

func (s *search) recordEveryMax(kind string, cell, value int) {
	if s.recording != RecordEveryMax {
		return
	}
	if value > s.global.value {
		s.global.kind = kind
		s.global.cell = cell
		s.global.value = value
	}
}

func (s *search) recordRaidDirection(dir game.Direction, value int) {
	if s.recording != RecordEveryMax {
		return
	}
	if value > s.global.raidValue {
		s.global.raidValue = value
		s.global.direction = dir
		s.global.hasDir = true
	}
}

// bestMove returns the move recorded by the walk, or nil if none was.
func (s *search) bestMove() game.Move {
	if s.recording == RecordRoot {
		return s.root.move
	}

	switch s.global.kind {
	case game.StakeKind:
		return game.Stake{Cell: s.global.cell}
	case game.RaidKind:
		// A raid recorded before any raid direction was reported falls back to Left.
		dir := game.Left
		if s.global.hasDir {
			dir = s.global.direction
		}
		return game.Raid{Origin: s.global.cell, Direction: dir}
	}
	return nil
}
