package searcher

// minimax returns the value of the current board for the root mover, looking
// ahead until the depth limit or a full board. The maximizer moves for the root
// mover and the minimizer for its opponent, both scored from the root's side.
func (s *search) minimax(depth int, maximizing bool) int {
	s.metrics.AddNode()
	if s.terminal(depth) {
		return s.leaf()
	}
	return s.expand(depth, maximizing, nil)
}
