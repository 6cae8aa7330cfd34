package cmd

import (
	"conquest/experiments"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const spin = 14

func Experiment(s *settings) *cobra.Command {
	var (
		boards  int
		size    int
		depth   int
		seed    uint64
		workers int
		out     string
	)

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Compare minimax and alpha-beta on random boards",
		Long: heredoc.Doc(`experiment searches the same random boards with minimax and
			alpha-beta, checks that both agree on the value and the move,
			and records how much work each did.

			The setup is written to setup.json and the per board results
			to pruning_records.csv in a timestamped directory under --out.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.config.Experiment
			flags := cmd.Flags()
			if !flags.Changed("boards") {
				boards = cfg.Boards
			}
			if !flags.Changed("size") {
				size = cfg.Size
			}
			if !flags.Changed("depth") {
				depth = cfg.Depth
			}
			if !flags.Changed("seed") {
				seed = s.config.Play.Seed
			}
			if !flags.Changed("workers") {
				workers = cfg.Workers
			}
			if !flags.Changed("out") {
				out = cfg.Out
			}
			if boards <= 0 || size <= 0 || depth < 0 || workers <= 0 {
				return fmt.Errorf("invalid experiment: %d boards of size %d at depth %d with %d workers", boards, size, depth, workers)
			}

			sp := spinner.New(spinner.CharSets[spin], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			sp.Suffix = fmt.Sprintf(" 0/%d boards", boards)
			sp.Start()
			defer sp.Stop()

			setup := experiments.PruningSetup{
				Boards:   boards,
				Size:     size,
				MaxValue: s.config.Play.MaxValue,
				Fill:     s.config.Play.Fill,
				Depth:    depth,
				Seed:     seed,
				Workers:  workers,
				OnBoard: func(done, total int) {
					sp.Lock()
					sp.Suffix = fmt.Sprintf(" %d/%d boards", done, total)
					sp.Unlock()
				},
			}

			dir, err := experiments.RunPruningExperiment(setup, out)
			sp.Stop()
			if err != nil {
				return err
			}
			log.Info().Msgf("wrote pruning records to %s", dir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&boards, "boards", 0, "Number of random boards (default from config)")
	flags.IntVar(&size, "size", 0, "Board size (default from config)")
	flags.IntVar(&depth, "depth", 0, "Search depth limit (default from config)")
	flags.Uint64Var(&seed, "seed", 0, "Seed for the random boards (default from config)")
	flags.IntVar(&workers, "workers", 0, "Boards searched concurrently (default from config)")
	flags.StringVar(&out, "out", "", "Directory to write results to (default from config)")

	return cmd
}
