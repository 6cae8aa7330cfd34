package engine

import (
	"conquest/experiments/metrics"
	"conquest/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board   *game.Board
	Players [2]game.Player
	Agents  [2]Agent
}

// LocalEngine sets up a game on board where first moves first.
func LocalEngine(board *game.Board, first game.Player, agents [2]Agent) *Engine {
	if first != game.X && first != game.O {
		panic("first player must be X or O")
	}
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	return &Engine{
		Board:   board,
		Players: [2]game.Player{first, first.Opponent()},
		Agents:  agents,
	}
}

// Run plays alternating moves until the board is full or neither side can move.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Players[0].String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting on a %dx%d board", e.Players[0], e.Board.Size(), e.Board.Size())

	turn := 0
	passes := 0
	for !e.Board.IsFull() && passes < len(e.Players) {
		i := turn % len(e.Players)
		player := e.Players[i]
		turn++

		move, value, searchMetric := e.Agents[i].FindMove(e.Board, player)
		if move == nil {
			log.Info().Msgf("turn %d: %s has no move and passes", turn, player)
			passes++
			continue
		}
		passes = 0

		if err := game.Apply(e.Board, player, move); err != nil {
			panic(fmt.Sprintf("agent for %s chose an illegal move: %v", player, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         describe(e.Board, move),
			Value:        value,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s plays %s (value %d)\n%s", turn, player, describe(e.Board, move), value, e.Board)
	}

	score := game.Score(e.Board, e.Players[0])
	winner := ""
	switch {
	case score > 0:
		winner = e.Players[0].String()
	case score < 0:
		winner = e.Players[1].String()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.FinalScore = score
	gameMetric.Winner = winner

	if winner == "" {
		log.Info().Msgf("game over after %d moves: draw", len(moveMetrics))
	} else {
		log.Info().Msgf("game over after %d moves: %s wins by %d", len(moveMetrics), winner, abs(score))
	}

	return winner, gameMetric, moveMetrics
}

// describe renders a move by its landing cell, e.g. "B2 Raid".
func describe(board *game.Board, move game.Move) string {
	target, ok := move.Target(board)
	if !ok {
		return fmt.Sprint(move)
	}
	column, row := board.Coordinates(target)
	return fmt.Sprintf("%c%d %s", column, row, move.Kind())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
