package experiments

import (
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/searcher"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// PruningSetup describes a run of the pruning experiment.
type PruningSetup struct {
	Boards    int       `json:"boards"`
	Size      int       `json:"size"`
	MaxValue  int       `json:"maxValue"`
	Fill      float64   `json:"fill"`
	Depth     int       `json:"depth"`
	Seed      uint64    `json:"seed"`
	Workers   int       `json:"workers"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	// OnBoard is called after each board is searched by both algorithms.
	OnBoard func(done, total int) `json:"-"`
}

type task struct {
	id    int
	board *game.Board
	mover game.Player
}

// ComparePruning searches the same random boards with minimax and alpha-beta and
// records the value, move and work of each.
func ComparePruning(setup PruningSetup) []metrics.PruningRecord {
	if setup.Boards <= 0 || setup.Workers <= 0 {
		panic("need at least one board and one worker")
	}

	// Boards are generated up front so results do not depend on scheduling
	rng := rand.New(rand.NewSource(setup.Seed))
	tasks := make(chan task, setup.Boards)
	for i := 0; i < setup.Boards; i++ {
		mover := game.X
		if rng.Intn(2) == 1 {
			mover = game.O
		}
		tasks <- task{id: i + 1, board: game.RandomBoard(rng, setup.Size, setup.MaxValue, setup.Fill), mover: mover}
	}
	close(tasks)

	records := make([]metrics.PruningRecord, setup.Boards)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	for i := 0; i < setup.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				records[t.id-1] = compare(t, setup.Depth)

				mu.Lock()
				done++
				if setup.OnBoard != nil {
					setup.OnBoard(done, setup.Boards)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return records
}

func compare(t task, depth int) metrics.PruningRecord {
	full, fullMetric := searcher.New(
		searcher.WithAlgorithm(searcher.Minimax),
		searcher.WithDepthLimit(depth),
		searcher.WithMetrics(),
	).Search(t.board, t.mover)

	pruned, prunedMetric := searcher.New(
		searcher.WithAlgorithm(searcher.AlphaBeta),
		searcher.WithDepthLimit(depth),
		searcher.WithMetrics(),
	).Search(t.board, t.mover)

	if full.Value != pruned.Value {
		log.Error().Msgf("board %d: minimax value %d differs from alpha-beta value %d", t.id, full.Value, pruned.Value)
	}

	return metrics.PruningRecord{
		Board:     t.id,
		Size:      t.board.Size(),
		Mover:     t.mover.String(),
		Minimax:   fullMetric,
		AlphaBeta: prunedMetric,
		Value:     full.Value,
		SameValue: full.Value == pruned.Value,
		SameMove:  full.Move == pruned.Move,
	}
}

// RunPruningExperiment runs ComparePruning and stores the setup and records under
// root. It returns the directory written to.
func RunPruningExperiment(setup PruningSetup, root string) (string, error) {
	log.Info().Msgf("starting pruning experiment with %d boards of size %d at depth %d...", setup.Boards, setup.Size, setup.Depth)

	setup.StartTime = time.Now()
	records := ComparePruning(setup)
	setup.EndTime = time.Now()

	summary := Summarize(records)
	log.Info().Msgf("completed pruning experiment in %s: alpha-beta visited %.1f%% of minimax nodes, %d value mismatches",
		setup.EndTime.Sub(setup.StartTime), 100*summary.NodeRatio, summary.Mismatches)

	writer, err := metrics.NewWriter(root, "pruning")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	log.Info().Msg("stored experiment setup")
	if err := writer.WritePruningRecords(records); err != nil {
		return "", err
	}
	log.Info().Msgf("stored pruning records in %s", writer.Dir())

	return writer.Dir(), nil
}

type Summary struct {
	MinimaxNodes   int
	AlphaBetaNodes int
	NodeRatio      float64 // AlphaBetaNodes / MinimaxNodes
	Mismatches     int     // Boards where the values differ
}

func Summarize(records []metrics.PruningRecord) Summary {
	var s Summary
	for _, r := range records {
		s.MinimaxNodes += r.Minimax.Nodes
		s.AlphaBetaNodes += r.AlphaBeta.Nodes
		if !r.SameValue {
			s.Mismatches++
		}
	}
	if s.MinimaxNodes > 0 {
		s.NodeRatio = float64(s.AlphaBetaNodes) / float64(s.MinimaxNodes)
	}
	return s
}
