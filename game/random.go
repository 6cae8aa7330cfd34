package game

import "golang.org/x/exp/rand"

// RandomBoard generates a size×size board with values in [1, maxValue]. Each cell is
// occupied with probability fill, by X or O with equal chance.
func RandomBoard(rng *rand.Rand, size, maxValue int, fill float64) *Board {
	if size <= 0 || maxValue <= 0 {
		panic("board size and max value must be positive")
	}

	n := size * size
	values := make([]int, n)
	owners := make([]Player, n)
	for i := 0; i < n; i++ {
		values[i] = 1 + rng.Intn(maxValue)
		owners[i] = Empty
		if rng.Float64() < fill {
			owners[i] = X
			if rng.Intn(2) == 1 {
				owners[i] = O
			}
		}
	}

	b, err := NewBoard(values, owners)
	if err != nil {
		panic(err)
	}
	return b
}
