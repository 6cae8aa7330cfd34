package problem

import (
	"bufio"
	"conquest/game"
	"fmt"
	"io"
	"os"
)

// Report is a chosen move together with the board after playing it.
type Report struct {
	Move  game.Move // nil when there was nothing to play
	Board *game.Board
}

// Solve applies the outcome of a search to a copy of the problem's board.
func Solve(p *Problem, move game.Move) (Report, error) {
	board := p.Board.Copy()
	if move == nil {
		return Report{Board: board}, nil
	}
	if err := game.Apply(board, p.Mover, move); err != nil {
		return Report{}, err
	}
	return Report{Move: move, Board: board}, nil
}

// WriteReport prints the landing cell and kind of the move, e.g. "B3 Raid",
// followed by the board one row per line. A missing move prints "pass".
func WriteReport(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	if r.Move == nil {
		fmt.Fprintln(bw, "pass")
	} else {
		target, ok := r.Move.Target(r.Board)
		if !ok {
			return fmt.Errorf("%v lands outside the board: %w", r.Move, game.ErrIllegalMove)
		}
		column, row := r.Board.Coordinates(target)
		fmt.Fprintf(bw, "%c%d %s\n", column, row, r.Move.Kind())
	}
	for _, row := range r.Board.Rows() {
		fmt.Fprintln(bw, row)
	}
	return bw.Flush()
}

// Save writes a report to a file, replacing it.
func Save(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := WriteReport(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
