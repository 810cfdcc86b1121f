// Package config loads perft run settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/uttt-perft/pkg/perft"
	"github.com/IlikeChooros/uttt-perft/pkg/uttt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	MinDepth   int    `yaml:"min_depth"`
	MaxDepth   int    `yaml:"max_depth"`
	Threads    int    `yaml:"threads"`
	SplitDepth int    `yaml:"split_depth"`
	MovetimeMs int    `yaml:"movetime_ms"`
	Cumulative bool   `yaml:"cumulative"`
	Divide     bool   `yaml:"divide"`
	Progress   bool   `yaml:"progress"`
	Position   string `yaml:"position"`
	Moves      string `yaml:"moves"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		MinDepth:   1,
		MaxDepth:   perft.DefaultDepthLimit,
		Threads:    1,
		SplitDepth: perft.DefaultSplitDepth,
		MovetimeMs: perft.DefaultMovetimeLimit,
		Position:   "startpos",
		LogLevel:   "info",
	}
}

// Read the YAML file at path, keys missing from the file keep their defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.MinDepth < 0:
		return fmt.Errorf("%w: min_depth %d is negative", ErrInvalidConfig, c.MinDepth)
	case c.MaxDepth < c.MinDepth:
		return fmt.Errorf("%w: max_depth %d below min_depth %d", ErrInvalidConfig, c.MaxDepth, c.MinDepth)
	case c.Threads < 1:
		return fmt.Errorf("%w: threads must be at least 1", ErrInvalidConfig)
	case c.SplitDepth < 0:
		return fmt.Errorf("%w: split_depth %d is negative", ErrInvalidConfig, c.SplitDepth)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if _, err := c.State(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Starting state, the position notation with the moves played on top of it
func (c Config) State() (uttt.State, error) {
	position := c.Position
	if position == "" {
		position = "startpos"
	}

	s, err := uttt.ParseNotation(position)
	if err != nil {
		return s, err
	}

	moves, err := uttt.ParseMoves(c.Moves)
	if err != nil {
		return s, err
	}
	for i, m := range moves {
		if s, err = s.Play(m); err != nil {
			return s, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Counter limits for a single depth
func (c Config) Limits(depth int) *perft.Limits {
	return perft.DefaultLimits().
		SetDepth(depth).
		SetThreads(c.Threads).
		SetSplitDepth(c.SplitDepth).
		SetMovetime(c.MovetimeMs)
}
