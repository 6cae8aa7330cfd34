package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelativePath is where the configuration lives under the XDG config directories.
const RelativePath = "conquest/config.yaml"

type Config struct {
	// Logging
	Level string `yaml:"level"`

	// Search defaults, overridden by problem files and flags
	Algorithm  string `yaml:"algorithm"`
	DepthLimit int    `yaml:"depth"`
	Recording  string `yaml:"recording"`

	Play       Play       `yaml:"play"`
	Experiment Experiment `yaml:"experiment"`
}

type Play struct {
	Size     int     `yaml:"size"`
	MaxValue int     `yaml:"max-value"`
	Fill     float64 `yaml:"fill"`
	Seed     uint64  `yaml:"seed"`
}

type Experiment struct {
	Boards  int    `yaml:"boards"`
	Size    int    `yaml:"size"`
	Depth   int    `yaml:"depth"`
	Workers int    `yaml:"workers"`
	Out     string `yaml:"out"`
}

func Default() Config {
	return Config{
		Level:      "info",
		Algorithm:  "ALPHABETA",
		DepthLimit: 2,
		Recording:  "root",
		Play: Play{
			Size:     4,
			MaxValue: 9,
			Fill:     0,
			Seed:     1,
		},
		Experiment: Experiment{
			Boards:  50,
			Size:    3,
			Depth:   3,
			Workers: 4,
			Out:     "experiments",
		},
	}
}

// Load reads path on top of the defaults. An empty path looks the file up in the
// XDG config directories and falls back to the defaults when there is none.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(RelativePath)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid value")

func (c Config) Validate() error {
	switch {
	case c.DepthLimit < 0:
		return fmt.Errorf("depth %d: %w", c.DepthLimit, ErrInvalid)
	case c.Recording != "root" && c.Recording != "every-max":
		return fmt.Errorf("recording %q: %w", c.Recording, ErrInvalid)
	case c.Play.Size <= 0 || c.Play.MaxValue <= 0:
		return fmt.Errorf("play board %dx%d with max value %d: %w", c.Play.Size, c.Play.Size, c.Play.MaxValue, ErrInvalid)
	case c.Play.Fill < 0 || c.Play.Fill > 1:
		return fmt.Errorf("play fill %v: %w", c.Play.Fill, ErrInvalid)
	case c.Experiment.Boards <= 0 || c.Experiment.Size <= 0 || c.Experiment.Depth < 0:
		return fmt.Errorf("experiment %d boards of size %d at depth %d: %w", c.Experiment.Boards, c.Experiment.Size, c.Experiment.Depth, ErrInvalid)
	case c.Experiment.Workers <= 0:
		return fmt.Errorf("experiment workers %d: %w", c.Experiment.Workers, ErrInvalid)
	}
	return nil
}
