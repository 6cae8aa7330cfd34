package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `3
MINIMAX
X
1
1 1 1
1 9 1
1 1 1
.OO
OX.
.O.
`

// run executes the root command with a config file of its own so a user config
// never leaks into the result.
func run(t *testing.T, config string, args ...string) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	root := Root()
	root.SetArgs(append([]string{"--config", path}, args...))
	return root.Execute()
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0644))

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"solving with the problem settings", nil, "C2 Raid\n.OX\nOXX\n.O.\n"},
		{"overriding the algorithm", []string{"--algorithm", "ALPHABETA", "--stats"}, "C2 Raid\n.OX\nOXX\n.O.\n"},
		{"passing at depth zero", []string{"--depth", "0"}, "pass\n.OO\nOX.\n.O.\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "output.txt")

			err := run(t, "level: error\n", append([]string{"solve", input, "-o", output}, c.args...)...)

			require.NoError(t, err)
			got, err := os.ReadFile(output)
			require.NoError(t, err)
			require.Equal(t, c.want, string(got))
		})
	}

	t.Run("failing on a missing problem file", func(t *testing.T) {
		err := run(t, "", "solve", filepath.Join(dir, "nope.txt"), "-o", filepath.Join(dir, "out.txt"))
		require.Error(t, err)
	})

	t.Run("failing on an unknown recording mode", func(t *testing.T) {
		err := run(t, "", "solve", input, "-o", filepath.Join(dir, "out.txt"), "--record", "sometimes")
		require.ErrorContains(t, err, "sometimes")
	})
}

func TestRootConfig(t *testing.T) {
	t.Run("rejecting an invalid config", func(t *testing.T) {
		err := run(t, "depth: -1\n", "play")
		require.Error(t, err)
	})

	t.Run("rejecting an unknown log level", func(t *testing.T) {
		err := run(t, "level: loud\n", "play")
		require.ErrorContains(t, err, "loud")
	})
}

func TestPlay(t *testing.T) {
	out := t.TempDir()

	err := run(t, "level: error\n", "play", "--size", "2", "--depth", "1", "--games", "2", "--out", out)

	require.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(out, "games", "*", "game_records.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestExperiment(t *testing.T) {
	out := t.TempDir()

	err := run(t, "level: error\n", "experiment", "--boards", "3", "--size", "2", "--depth", "2", "--workers", "2", "--out", out)

	require.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(out, "pruning", "*", "pruning_records.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	t.Run("rejecting a bad setup", func(t *testing.T) {
		err := run(t, "", "experiment", "--workers", "0", "--out", out)
		require.Error(t, err)
	})
}
