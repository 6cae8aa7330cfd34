package cmd

import (
	"conquest/experiments"
	"conquest/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Play(s *settings) *cobra.Command {
	var (
		size  int
		depth int
		seed  uint64
		games int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Let two searchers play each other on random boards",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.config
			if !cmd.Flags().Changed("size") {
				size = cfg.Play.Size
			}
			if !cmd.Flags().Changed("depth") {
				depth = cfg.DepthLimit
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Play.Seed
			}
			if size <= 0 || depth < 0 || games <= 0 {
				return fmt.Errorf("need a positive size and game count and a non-negative depth, got size %d, depth %d, games %d", size, depth, games)
			}

			recording, ok := searcher.ParseRecording(cfg.Recording)
			if !ok {
				return fmt.Errorf("unknown recording mode %q", cfg.Recording)
			}
			agent := experiments.AgentConfig{
				Algorithm:  searcher.ParseAlgorithm(cfg.Algorithm),
				DepthLimit: depth,
				Recording:  recording,
			}
			first, second := agent, agent
			first.ID, second.ID = 1, 2

			setup := experiments.GameSetup{
				Games:    games,
				Size:     size,
				MaxValue: cfg.Play.MaxValue,
				Fill:     cfg.Play.Fill,
				Seed:     seed,
				Agents:   []experiments.AgentConfig{first, second},
			}

			if out == "" {
				experiments.PlayGames(setup)
				return nil
			}
			dir, err := experiments.RunGameExperiment(setup, out)
			if err != nil {
				return err
			}
			log.Info().Msgf("wrote game records to %s", dir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&size, "size", 0, "Board size (default from config)")
	flags.IntVar(&depth, "depth", 0, "Search depth limit of both players (default from config)")
	flags.Uint64Var(&seed, "seed", 0, "Seed for the random boards (default from config)")
	flags.IntVar(&games, "games", 1, "Number of games to play")
	flags.StringVar(&out, "out", "", "Directory to write game and move records to")

	return cmd
}
