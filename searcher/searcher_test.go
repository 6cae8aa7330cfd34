package searcher

import (
	"conquest/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Properties:
- alpha-beta returns the minimax value (and the same move when recording at the root)
- the board is handed back unchanged
- every-max recording lets interior nodes overwrite the answer
*/

func newTestBoard(t *testing.T, values []int, rows ...string) *game.Board {
	t.Helper()
	owners := []game.Player{}
	for _, row := range rows {
		for _, c := range []byte(row) {
			owners = append(owners, game.Player(c))
		}
	}
	b, err := game.NewBoard(values, owners)
	require.NoError(t, err)
	return b
}

func ones(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = 1
	}
	return values
}

var algorithms = []Algorithm{Minimax, AlphaBeta}

func TestSearchScenarios(t *testing.T) {
	t.Run("staking on an empty board", func(t *testing.T) {
		for _, recording := range []Recording{RecordRoot, RecordEveryMax} {
			board := newTestBoard(t, ones(4), "..", "..")
			s := New(WithAlgorithm(Minimax), WithDepthLimit(1), WithRecording(recording))

			outcome, _ := s.Search(board, game.X)

			require.True(t, outcome.Found(), "Should record a move (%s)", recording)
			require.Equal(t, game.StakeKind, outcome.Move.Kind())
			require.Equal(t, game.Stake{Cell: 0}, outcome.Move, "First of the symmetric cells should win")
			require.Equal(t, 1, outcome.Value)
		}
	})

	t.Run("terminating on a full board", func(t *testing.T) {
		for _, algorithm := range algorithms {
			board := newTestBoard(t, []int{5}, "X")
			s := New(WithAlgorithm(algorithm), WithDepthLimit(3), WithMetrics())

			outcome, metric := s.Search(board, game.X)

			require.False(t, outcome.Found(), "Should not record a move (%s)", algorithm)
			require.Equal(t, 5, outcome.Value)
			require.Equal(t, 1, metric.Nodes, "Should not examine any move")
			require.Zero(t, metric.Stakes+metric.Raids)
		}
	})

	t.Run("raiding flips enemies next to the destination", func(t *testing.T) {
		for _, algorithm := range algorithms {
			board := newTestBoard(t, ones(9), ".OO", "OX.", ".OO")
			s := New(WithAlgorithm(algorithm), WithDepthLimit(1))

			outcome, _ := s.Search(board, game.X)

			require.Equal(t, game.Raid{Origin: 4, Direction: game.Right}, outcome.Move, "(%s)", algorithm)
			require.Equal(t, 4-3, outcome.Value)

			require.NoError(t, game.Apply(board, game.X, outcome.Move))
			require.Equal(t, []string{".OX", "OXX", ".OX"}, board.Rows())
		}
	})

	t.Run("scoring statically at a depth limit of zero", func(t *testing.T) {
		for _, algorithm := range algorithms {
			board := newTestBoard(t, []int{1, 2, 3, 4}, "X.", ".O")
			before := board.Copy()
			s := New(WithAlgorithm(algorithm), WithDepthLimit(0))

			outcome, _ := s.Search(board, game.X)

			require.False(t, outcome.Found(), "(%s)", algorithm)
			require.Equal(t, 1-4, outcome.Value)
			require.True(t, board.Equal(before))
		}
	})

	t.Run("no move without empty cells or owned cells at the root", func(t *testing.T) {
		board := newTestBoard(t, ones(4), "OO", "OO")
		s := New(WithDepthLimit(2))

		outcome, _ := s.Search(board, game.X)

		require.False(t, outcome.Found())
		require.Equal(t, -4, outcome.Value)
	})
}

func TestSearchMetrics(t *testing.T) {
	board := newTestBoard(t, ones(4), "..", "..")
	s := New(WithAlgorithm(Minimax), WithDepthLimit(1), WithMetrics())

	_, metric := s.Search(board, game.X)

	require.Equal(t, "MINIMAX", metric.Algorithm)
	require.Equal(t, 1, metric.DepthLimit)
	require.Equal(t, 5, metric.Nodes, "Root plus one leaf per stake")
	require.Equal(t, 4, metric.Leaves)
	require.Equal(t, 4, metric.Stakes)
	require.Zero(t, metric.Raids)
	require.Zero(t, metric.Cutoffs)
}

func TestPruningPreservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 25; i++ {
		size := 2 + rng.Intn(3)
		depth := 1 + rng.Intn(3)
		if size == 4 && depth == 3 {
			depth = 2
		}
		board := game.RandomBoard(rng, size, 9, 0.4)
		mover := game.X
		if i%2 == 1 {
			mover = game.O
		}
		before := board.Copy()

		full, fullMetric := New(WithAlgorithm(Minimax), WithDepthLimit(depth), WithMetrics()).Search(board, mover)
		require.True(t, board.Equal(before), "Minimax should restore the board (case %d)", i)

		pruned, prunedMetric := New(WithAlgorithm(AlphaBeta), WithDepthLimit(depth), WithMetrics()).Search(board, mover)
		require.True(t, board.Equal(before), "Alpha-beta should restore the board (case %d)", i)

		require.Equal(t, full.Value, pruned.Value, "Pruning should not change the root value (case %d)\n%s", i, before)
		require.Equal(t, full.Move, pruned.Move, "Pruning should not change the root move (case %d)\n%s", i, before)
		require.LessOrEqual(t, prunedMetric.Nodes, fullMetric.Nodes, "Pruning should not visit more nodes (case %d)", i)
	}
}

func TestRootMoveIsLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		board := game.RandomBoard(rng, 3, 5, 0.5)
		if board.IsFull() {
			continue
		}

		outcome, _ := New(WithDepthLimit(2)).Search(board, game.X)

		require.True(t, outcome.Found(), "A non-full board always has a stake (case %d)", i)
		require.NoError(t, game.Apply(board.Copy(), game.X, outcome.Move), "case %d: %v\n%s", i, outcome.Move, board)
	}
}

func TestEveryMaxRecording(t *testing.T) {
	t.Run("interior maximizing nodes overwrite the root's move", func(t *testing.T) {
		// X stakes, O stakes cell 3, then X raids from 0 and flips it: that interior
		// value of 3 beats every root candidate (worth 1) and is kept as the answer.
		board := newTestBoard(t, ones(4), "..", "..")

		root, _ := New(WithAlgorithm(Minimax), WithDepthLimit(3), WithRecording(RecordRoot)).Search(board, game.X)
		literal, _ := New(WithAlgorithm(Minimax), WithDepthLimit(3), WithRecording(RecordEveryMax)).Search(board, game.X)

		require.Equal(t, 1, root.Value)
		require.Equal(t, 1, literal.Value, "Recording should not change the value")
		require.Equal(t, game.Stake{Cell: 0}, root.Move)
		require.Equal(t, game.Raid{Origin: 0, Direction: game.Right}, literal.Move,
			"Every-max recording keeps the deep raid")
		require.ErrorIs(t, game.Apply(board.Copy(), game.X, literal.Move), game.ErrIllegalMove,
			"The deep raid does not start from a cell X owns at the root")
	})

	t.Run("forgetting records made below a simulated raid", func(t *testing.T) {
		// Replies inside raid subtrees out-score the root, but undoing a raid also
		// undoes whatever they recorded. Only cells X owns can be reported as raids.
		board := newTestBoard(t, []int{4, 1, 5, 9, 3, 8, 3, 6, 3}, "..O", ".OX", "..X")
		before := board.Copy()

		root, _ := New(WithAlgorithm(Minimax), WithDepthLimit(3)).Search(board, game.X)
		literal, _ := New(WithAlgorithm(Minimax), WithDepthLimit(3), WithRecording(RecordEveryMax)).Search(board, game.X)

		require.Equal(t, game.Raid{Origin: 8, Direction: game.Left}, literal.Move)
		require.Equal(t, root.Value, literal.Value, "Recording should not change the value")
		require.NoError(t, game.Apply(board.Copy(), game.X, literal.Move))
		require.True(t, board.Equal(before))
	})

	t.Run("matching root recording at depth one", func(t *testing.T) {
		board := newTestBoard(t, ones(9), ".OO", "OX.", ".OO")

		outcome, _ := New(WithAlgorithm(Minimax), WithDepthLimit(1), WithRecording(RecordEveryMax)).Search(board, game.X)

		require.Equal(t, game.Raid{Origin: 4, Direction: game.Right}, outcome.Move)
	})
}

func TestParseAlgorithm(t *testing.T) {
	require.Equal(t, Minimax, ParseAlgorithm("MINIMAX"))
	require.Equal(t, AlphaBeta, ParseAlgorithm("ALPHABETA"))
	require.Equal(t, AlphaBeta, ParseAlgorithm("minimax"), "Only the exact name selects minimax")
	require.Equal(t, AlphaBeta, ParseAlgorithm(""))
	require.Equal(t, "MINIMAX", Minimax.String())
}

func TestParseRecording(t *testing.T) {
	r, ok := ParseRecording("every-max")
	require.True(t, ok)
	require.Equal(t, RecordEveryMax, r)

	r, ok = ParseRecording("")
	require.True(t, ok)
	require.Equal(t, RecordRoot, r)

	_, ok = ParseRecording("sometimes")
	require.False(t, ok)
}

func TestNewOptions(t *testing.T) {
	s := New()
	require.Equal(t, AlphaBeta, s.Algorithm())
	require.Equal(t, DefaultDepthLimit, s.DepthLimit())

	require.Panics(t, func() {
		New(WithDepthLimit(-1))
	})
}
