package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// fileConfig is the YAML layout of a configuration file. Pointer fields
// distinguish "absent" from zero values.
type fileConfig struct {
	Verbosity        *int         `yaml:"verbosity"`
	LogFile          string       `yaml:"log_file"`
	DefaultPromotion string       `yaml:"default_promotion"`
	Workers          *int         `yaml:"workers"`
	StopOnError      *bool        `yaml:"stop_on_error"`
	Setup            *SetupConfig `yaml:"setup"`
}

// Load reads a YAML configuration on top of the defaults and validates it.
// An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding config: %v: %w", err, errors.ErrInvalidConfig)
	}

	cfg := NewConfig()
	if fc.Verbosity != nil {
		cfg.Verbosity = *fc.Verbosity
	}
	cfg.LogPath = fc.LogFile
	if fc.DefaultPromotion != "" {
		cfg.Engine.DefaultPromotion = fc.DefaultPromotion
	}
	if fc.Workers != nil {
		cfg.Replay.Workers = *fc.Workers
	}
	if fc.StopOnError != nil {
		cfg.Replay.StopOnError = *fc.StopOnError
	}
	cfg.Setup = fc.Setup

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the YAML configuration at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}
