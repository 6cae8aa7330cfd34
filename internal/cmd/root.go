package cmd

import (
	"conquest/config"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// settings carries what the root command resolves before any subcommand runs.
type settings struct {
	config config.Config
}

func Root() *cobra.Command {
	s := &settings{config: config.Default()}

	var (
		configPath string
		level      string
	)

	root := &cobra.Command{
		Use:   "conquest",
		Short: "Search for the best move on a territory board",
		Long: heredoc.Doc(`conquest plays a two player territory game on a square grid
			of valued cells. Players stake empty cells or raid out of cells
			they own, flipping the opponent's neighbors of the landing cell.

			Moves are chosen with depth limited minimax or alpha-beta search.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			s.config = cfg

			if !cmd.Flags().Changed("level") {
				level = cfg.Level
			}
			parsed, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				parsed = zerolog.TraceLevel
			}
			zerolog.SetGlobalLevel(parsed)
			return nil
		},
	}

	// global flags
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $XDG_CONFIG_HOME/"+config.RelativePath+")")
	root.PersistentFlags().StringVar(&level, "level", "info", "Log level")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Solve(s))
	root.AddCommand(Play(s))
	root.AddCommand(Experiment(s))

	return root
}
