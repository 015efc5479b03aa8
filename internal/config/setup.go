package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// SetupConfig describes a custom starting position, either as a FEN string
// or as a list of pieces with the side to move.
type SetupConfig struct {
	FEN    string        `yaml:"fen"`
	ToMove string        `yaml:"to_move"`
	Pieces []PieceConfig `yaml:"pieces"`
}

// PieceConfig places one piece, e.g. {square: e1, piece: K, colour: white}.
type PieceConfig struct {
	Square string `yaml:"square"`
	Piece  string `yaml:"piece"`
	Colour string `yaml:"colour"`
	Moves  int    `yaml:"moves"`
}

// Validate checks the fields that can be judged without parsing squares.
func (s *SetupConfig) Validate() error {
	if s.FEN != "" {
		if len(s.Pieces) > 0 {
			return fmt.Errorf("setup gives both fen and pieces: %w", errors.ErrInvalidConfig)
		}
		return nil
	}
	switch strings.ToLower(s.ToMove) {
	case "", "white", "w", "black", "b":
	default:
		return fmt.Errorf("setup to_move %q: %w", s.ToMove, errors.ErrInvalidConfig)
	}
	if len(s.Pieces) == 0 {
		return fmt.Errorf("setup has no pieces: %w", errors.ErrInvalidConfig)
	}
	for i, p := range s.Pieces {
		if p.Square == "" || p.Piece == "" || p.Colour == "" {
			return fmt.Errorf("setup piece %d needs square, piece and colour: %w", i, errors.ErrInvalidConfig)
		}
		if p.Moves < 0 {
			return fmt.Errorf("setup piece %d has negative moves: %w", i, errors.ErrInvalidConfig)
		}
	}
	return nil
}
