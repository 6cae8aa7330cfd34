package searcher

// alphabeta returns the same value as minimax while skipping cells that cannot
// change it. A maximizing node stops once its value reaches beta, a minimizing
// node once its value drops to alpha. Bounds are passed down to stakes and raids.
func (s *search) alphabeta(depth int, maximizing bool, alpha, beta int) int {
	s.metrics.AddNode()
	if s.terminal(depth) {
		return s.leaf()
	}
	return s.expand(depth, maximizing, &window{alpha: alpha, beta: beta})
}
