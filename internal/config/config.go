// Package config provides configuration for the chess match engine and the
// chessmatch command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// MaxVerbosity is the most detailed logging level.
const MaxVerbosity = 2

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=match events, 2=every move

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Path the log is written to when loaded from a file ("" = LogFile as set)
	LogPath string

	Engine *EngineConfig
	Replay *ReplayConfig

	// Custom starting position (nil = standard position)
	Setup *SetupConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  0,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Engine:     NewEngineConfig(),
		Replay:     NewReplayConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d outside 0..%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	if c.Setup != nil {
		return c.Setup.Validate()
	}
	return nil
}
