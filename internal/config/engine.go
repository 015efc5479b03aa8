package config

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// EngineConfig holds settings for the rules engine.
type EngineConfig struct {
	// Promotion letter applied before the player chooses (B, C/N, T/R, Q).
	DefaultPromotion string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{DefaultPromotion: "Q"}
}

// PromotionKind returns the kind named by DefaultPromotion.
func (e *EngineConfig) PromotionKind() (chess.Kind, bool) {
	return chess.KindFromCode(e.DefaultPromotion)
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if _, ok := e.PromotionKind(); !ok {
		return fmt.Errorf("default promotion %q is not one of B, C, N, T, R, Q: %w", e.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
