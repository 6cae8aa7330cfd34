package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestScore(t *testing.T) {
	t.Run("scoring owned minus enemy values", func(t *testing.T) {
		b := newTestBoard(t, []int{1, 2, 3, 4}, "XO", ".X")

		require.Equal(t, 1-2+4, Score(b, X))
		require.Equal(t, 2-1-4, Score(b, O))
	})

	t.Run("scoring an empty board", func(t *testing.T) {
		b := newTestBoard(t, []int{5, 5, 5, 5}, "..", "..")

		require.Zero(t, Score(b, X))
	})

	t.Run("zero-sum between the two players", func(t *testing.T) {
		b := RandomBoard(rand.New(rand.NewSource(7)), 4, 9, 0.6)

		require.Equal(t, -Score(b, X), Score(b, O))
	})
}

func TestApply(t *testing.T) {
	t.Run("staking an empty cell", func(t *testing.T) {
		b := newTestBoard(t, ones(4), "O.", "..")

		require.NoError(t, Apply(b, X, Stake{Cell: 1}))
		require.Equal(t, []string{"OX", ".."}, b.Rows(), "Stakes should not conquer")
	})

	t.Run("raiding from an owned cell", func(t *testing.T) {
		b := newTestBoard(t, ones(4), "X.", ".O")

		require.NoError(t, Apply(b, X, Raid{Origin: 0, Direction: Right}))
		require.Equal(t, []string{"XX", ".X"}, b.Rows())
	})

	t.Run("rejecting occupied targets", func(t *testing.T) {
		b := newTestBoard(t, ones(4), "XO", "..")

		err := Apply(b, X, Stake{Cell: 1})
		require.ErrorIs(t, err, ErrIllegalMove)
		err = Apply(b, X, Raid{Origin: 0, Direction: Right})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting moves off the board", func(t *testing.T) {
		b := newTestBoard(t, ones(4), "X.", "..")

		require.ErrorIs(t, Apply(b, X, Stake{Cell: 4}), ErrIllegalMove)
		require.ErrorIs(t, Apply(b, X, Raid{Origin: 0, Direction: Left}), ErrIllegalMove)
		require.ErrorIs(t, Apply(b, X, Raid{Origin: -1, Direction: Down}), ErrIllegalMove)
	})

	t.Run("rejecting raids from foreign cells", func(t *testing.T) {
		b := newTestBoard(t, ones(4), "O.", "..")

		require.ErrorIs(t, Apply(b, X, Raid{Origin: 0, Direction: Right}), ErrIllegalMove)
		require.Equal(t, []string{"O.", ".."}, b.Rows(), "Board should not change on error")
	})
}

func TestLegalMoves(t *testing.T) {
	b := newTestBoard(t, ones(4), "X.", "O.")

	moves := LegalMoves(b, X)

	require.Equal(t, []Move{
		Raid{Origin: 0, Direction: Right},
		Stake{Cell: 1},
		Stake{Cell: 3},
	}, moves)
	for _, m := range moves {
		target, ok := m.Target(b)
		require.True(t, ok)
		require.Equal(t, Empty, b.Owner(target))
	}
	require.Equal(t, "Raid", moves[0].Kind())
	require.Equal(t, "Stake", moves[1].Kind())
}

func TestRandomBoard(t *testing.T) {
	t.Run("reproducing boards from a seed", func(t *testing.T) {
		b1 := RandomBoard(rand.New(rand.NewSource(42)), 5, 10, 0.5)
		b2 := RandomBoard(rand.New(rand.NewSource(42)), 5, 10, 0.5)

		require.True(t, b1.Equal(b2))
	})

	t.Run("keeping values in range", func(t *testing.T) {
		b := RandomBoard(rand.New(rand.NewSource(1)), 6, 3, 1)

		require.Equal(t, 36, b.Len())
		require.True(t, b.IsFull(), "Fill of 1 should occupy every cell")
		for i := 0; i < b.Len(); i++ {
			require.GreaterOrEqual(t, b.Value(i), 1)
			require.LessOrEqual(t, b.Value(i), 3)
		}
	})

	t.Run("leaving the board empty without fill", func(t *testing.T) {
		b := RandomBoard(rand.New(rand.NewSource(1)), 3, 3, 0)

		require.Zero(t, b.Count(X)+b.Count(O))
	})

	t.Run("panicking on bad sizes", func(t *testing.T) {
		require.Panics(t, func() {
			RandomBoard(rand.New(rand.NewSource(1)), 0, 3, 0)
		})
	})
}
