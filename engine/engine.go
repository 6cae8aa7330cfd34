package engine

import (
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/searcher"

	"github.com/rs/zerolog/log"
)

type Agent interface {
	// FindMove returns the move to play for player and the metrics of the search that found it
	FindMove(board *game.Board, player game.Player) (game.Move, int, metrics.SearchMetric)
}

// SearchAgent plays the moves a Searcher finds.
type SearchAgent struct {
	Searcher *searcher.Searcher
}

func (a SearchAgent) FindMove(board *game.Board, player game.Player) (game.Move, int, metrics.SearchMetric) {
	outcome, metric := a.Searcher.Search(board, player)
	if outcome.Found() && isLegal(board, player, outcome.Move) {
		return outcome.Move, outcome.Value, metric
	}

	fallback := game.LegalMoves(board, player)
	if len(fallback) == 0 {
		return nil, outcome.Value, metric
	}
	log.Warn().Msgf("search for %s returned %v which cannot be played, falling back to %v", player, outcome.Move, fallback[0])
	return fallback[0], outcome.Value, metric
}

func isLegal(board *game.Board, player game.Player, move game.Move) bool {
	return game.Apply(board.Copy(), player, move) == nil
}
