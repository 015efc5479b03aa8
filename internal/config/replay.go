package config

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	Workers     int  // Scripts replayed in parallel
	StopOnError bool // Skip remaining scripts after the first failure
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{Workers: 1}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
