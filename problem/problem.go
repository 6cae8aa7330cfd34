package problem

import (
	"bufio"
	"conquest/game"
	"conquest/searcher"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Problem is one parsed input: a board, who moves, and how to search.
type Problem struct {
	Algorithm  searcher.Algorithm
	Mover      game.Player
	DepthLimit int
	Board      *game.Board
}

// Load reads a problem from a file.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return p, nil
}

// Parse reads whitespace separated tokens: board size, algorithm, mover, depth
// limit, size² cell values and size rows of ownership characters.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("failed to read %s: %w", what, err)
			}
			return "", fmt.Errorf("missing %s: %w", what, io.ErrUnexpectedEOF)
		}
		return sc.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		token, err := next(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", what, token, err)
		}
		return n, nil
	}

	size, err := nextInt("board size")
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", size)
	}

	name, err := next("algorithm")
	if err != nil {
		return nil, err
	}

	token, err := next("player")
	if err != nil {
		return nil, err
	}
	mover, err := game.ParsePlayer(token)
	if err != nil || mover == game.Empty {
		return nil, fmt.Errorf("invalid player %q, expected X or O", token)
	}

	depth, err := nextInt("depth limit")
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, fmt.Errorf("depth limit cannot be negative, got %d", depth)
	}

	values := make([]int, 0, size*size)
	for i := 0; i < size*size; i++ {
		v, err := nextInt(fmt.Sprintf("value of cell %d", i))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	owners := make([]game.Player, 0, size*size)
	for row := 0; row < size; row++ {
		line, err := next(fmt.Sprintf("row %d", row+1))
		if err != nil {
			return nil, err
		}
		if len(line) != size {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", row+1, len(line), size)
		}
		for col := 0; col < size; col++ {
			p, err := game.ParsePlayer(line[col : col+1])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", row+1, col+1, err)
			}
			owners = append(owners, p)
		}
	}

	board, err := game.NewBoard(values, owners)
	if err != nil {
		return nil, err
	}

	return &Problem{
		Algorithm:  searcher.ParseAlgorithm(name),
		Mover:      mover,
		DepthLimit: depth,
		Board:      board,
	}, nil
}
