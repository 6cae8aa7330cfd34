package searcher

import (
	"conquest/experiments/metrics"
	"conquest/game"
)

const DefaultDepthLimit = 2

type Option func(s *Searcher)

// Searcher picks a move for a player with depth-limited minimax or alpha-beta.
type Searcher struct {
	algorithm  Algorithm
	depthLimit int
	recording  Recording
	metrics    metrics.Collector
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

func WithDepthLimit(depth int) Option {
	return func(s *Searcher) {
		if depth < 0 {
			panic("depth limit cannot be negative")
		}
		s.depthLimit = depth
	}
}

func WithRecording(recording Recording) Option {
	return func(s *Searcher) {
		s.recording = recording
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		algorithm:  AlphaBeta,
		depthLimit: DefaultDepthLimit,
		recording:  RecordRoot,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm {
	return s.algorithm
}

func (s *Searcher) DepthLimit() int {
	return s.depthLimit
}

// Search runs the configured algorithm from the root with mover as the maximizer.
// The board is searched in place and handed back unchanged.
func (s *Searcher) Search(board *game.Board, mover game.Player) (Outcome, metrics.SearchMetric) {
	st := newSearch(board, mover, s.depthLimit, s.recording, s.metrics)

	s.metrics.Start(s.algorithm.String(), s.depthLimit)
	var value int
	switch s.algorithm {
	case Minimax:
		value = st.minimax(0, true)
	default:
		bound := board.Bound()
		value = st.alphabeta(0, true, -bound, bound)
	}
	metric := s.metrics.Complete()

	return Outcome{Move: st.bestMove(), Value: value}, metric
}
