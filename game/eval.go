package game

// Score is the sum of the values of the cells mover owns minus the sum of the
// values of the cells any other player owns. Empty cells count for nobody.
func Score(b *Board, mover Player) int {
	score := 0
	for i, owner := range b.owners {
		switch owner {
		case Empty:
		case mover:
			score += b.values[i]
		default:
			score -= b.values[i]
		}
	}
	return score
}
