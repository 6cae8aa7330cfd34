package experiments

import (
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// AgentConfig describes the searcher behind one side of a game.
type AgentConfig struct {
	ID         int
	Algorithm  searcher.Algorithm
	DepthLimit int
	Recording  searcher.Recording
}

// GameSetup describes a series of self-play games on random boards.
type GameSetup struct {
	Games    int           `json:"games"`
	Size     int           `json:"size"`
	MaxValue int           `json:"maxValue"`
	Fill     float64       `json:"fill"`
	Seed     uint64        `json:"seed"`
	Agents   []AgentConfig `json:"agents"` // Agents[0] always moves first
}

// PlayGames runs setup.Games games between the first two agents of setup and returns
// the records of every game and move.
func PlayGames(setup GameSetup) ([]metrics.GameRecord, []metrics.MoveRecord) {
	if len(setup.Agents) != 2 {
		panic("need exactly two agent configs")
	}

	rng := rand.New(rand.NewSource(setup.Seed))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting matchup between agent1=%+v and agent2=%+v...", setup.Agents[0], setup.Agents[1])

	for i := 0; i < setup.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, setup.Games)

		board := game.RandomBoard(rng, setup.Size, setup.MaxValue, setup.Fill)
		winner, gameMetric, moveMetrics := RunGame(board, setup.Agents[0], setup.Agents[1])
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		if winner == "" {
			log.Info().Msgf("completed game %d in a draw", i+1)
		} else {
			log.Info().Msgf("completed game %d with winner: %s", i+1, winner)
		}
	}
	log.Info().Msg("completed matchup")

	return gameRecords, moveRecords
}

// RunGame plays a single game on board, with X driven by config1 and O by config2.
func RunGame(board *game.Board, config1, config2 AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]engine.Agent{
		engine.SearchAgent{Searcher: createSearcher(config1)},
		engine.SearchAgent{Searcher: createSearcher(config2)},
	}
	e := engine.LocalEngine(board, game.X, agents)

	return e.Run()
}

// RunGameExperiment plays the games of setup and stores the records under root.
func RunGameExperiment(setup GameSetup, root string) (string, error) {
	gameRecords, moveRecords := PlayGames(setup)

	writer, err := metrics.NewWriter(root, "games")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func createSearcher(config AgentConfig) *searcher.Searcher {
	return searcher.New(
		searcher.WithAlgorithm(config.Algorithm),
		searcher.WithDepthLimit(config.DepthLimit),
		searcher.WithRecording(config.Recording),
		searcher.WithMetrics(),
	)
}
