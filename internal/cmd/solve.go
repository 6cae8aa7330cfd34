package cmd

import (
	"conquest/problem"
	"conquest/searcher"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Solve(s *settings) *cobra.Command {
	var (
		output    string
		algorithm string
		depth     int
		record    string
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Find the best move for a problem file",
		Long: heredoc.Doc(`solve reads a problem file, searches for the best move of the
			player to move and writes the move followed by the resulting
			board to the output file.

			The problem file holds the board size, the algorithm (MINIMAX
			or anything else for alpha-beta), the player to move, the depth
			limit, the cell values and one row of X, O or . per line.`),
		Example: heredoc.Doc(`
			conquest solve
			conquest solve problem.txt -o answer.txt --algorithm MINIMAX`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			input := "input.txt"
			if len(args) == 1 {
				input = args[0]
			}

			p, err := problem.Load(input)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algorithm") {
				p.Algorithm = searcher.ParseAlgorithm(algorithm)
			}
			if cmd.Flags().Changed("depth") {
				p.DepthLimit = depth
			}
			if !cmd.Flags().Changed("record") {
				record = s.config.Recording
			}
			recording, ok := searcher.ParseRecording(record)
			if !ok {
				return fmt.Errorf("unknown recording mode %q, expected root or every-max", record)
			}
			if p.DepthLimit < 0 {
				return fmt.Errorf("depth limit cannot be negative, got %d", p.DepthLimit)
			}

			options := []searcher.Option{
				searcher.WithAlgorithm(p.Algorithm),
				searcher.WithDepthLimit(p.DepthLimit),
				searcher.WithRecording(recording),
			}
			if stats {
				options = append(options, searcher.WithMetrics())
			}

			log.Debug().Msgf("searching for %s with %s to depth %d\n%s", p.Mover, p.Algorithm, p.DepthLimit, p.Board)
			outcome, metric := searcher.New(options...).Search(p.Board, p.Mover)
			if stats {
				log.Info().Msgf("searched %d nodes (%d leaves, %d cutoffs) in %s", metric.Nodes, metric.Leaves, metric.Cutoffs, metric.Duration)
			}
			if !outcome.Found() {
				log.Warn().Msgf("%s has no move to play", p.Mover)
			}

			report, err := problem.Solve(p, outcome.Move)
			if err != nil {
				return fmt.Errorf("search for %s returned %v: %w", p.Mover, outcome.Move, err)
			}
			if err := problem.Save(output, report); err != nil {
				return err
			}
			log.Info().Msgf("%s plays %v with value %d, written to %s", p.Mover, outcome.Move, outcome.Value, output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "output.txt", "File to write the move and board to")
	flags.StringVar(&algorithm, "algorithm", "", "Override the algorithm of the problem file")
	flags.IntVar(&depth, "depth", 0, "Override the depth limit of the problem file")
	flags.StringVar(&record, "record", "root", "Move recording mode: root or every-max")
	flags.BoolVar(&stats, "stats", false, "Log search statistics")

	return cmd
}
