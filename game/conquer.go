package game

// Conquer flips the orthogonal neighbors of cell that belong to another player
// over to owner and returns the flipped cells. Only the four direct neighbors of
// cell are inspected: empty cells stay empty and flipped cells do not spread.
func (b *Board) Conquer(cell int, owner Player) []int {
	var flipped []int
	for _, d := range Directions {
		n, ok := b.Neighbor(cell, d)
		if !ok {
			continue
		}
		if other := b.owners[n]; other != owner && other != Empty {
			b.owners[n] = owner
			flipped = append(flipped, n)
		}
	}
	return flipped
}

// Capture flips the same cells as Conquer and returns how many it flipped.
func (b *Board) Capture(cell int, owner Player) int {
	n := 0
	for _, d := range Directions {
		next, ok := b.Neighbor(cell, d)
		if !ok {
			continue
		}
		if other := b.owners[next]; other != owner && other != Empty {
			b.owners[next] = owner
			n++
		}
	}
	return n
}
