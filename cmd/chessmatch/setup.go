package main

import (
	"fmt"
	"log"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/notation"
)

// newMatch creates the match a script is replayed on: the configured
// setup if there is one, otherwise the standard position.
func newMatch(cfg *config.Config, logger *log.Logger) (*engine.Match, error) {
	opts := []engine.Option{engine.WithConfig(cfg), engine.WithLogger(logger)}

	switch {
	case cfg.Setup == nil:
		return engine.NewMatch(opts...), nil
	case cfg.Setup.FEN != "":
		return engine.NewMatchFromFEN(cfg.Setup.FEN, opts...)
	default:
		placements, toMove, err := setupPlacements(cfg.Setup)
		if err != nil {
			return nil, err
		}
		return engine.NewMatchFromSetup(placements, toMove, opts...)
	}
}

// setupPlacements converts a configured piece list to engine placements.
func setupPlacements(sc *config.SetupConfig) ([]engine.Placement, chess.Colour, error) {
	toMove := chess.White
	if sc.ToMove != "" {
		c, err := notation.ParseColour(sc.ToMove)
		if err != nil {
			return nil, toMove, err
		}
		toMove = c
	}

	placements := make([]engine.Placement, 0, len(sc.Pieces))
	for i, pc := range sc.Pieces {
		pos, err := notation.ParseSquare(pc.Square)
		if err != nil {
			return nil, toMove, fmt.Errorf("setup piece %d: %w", i, err)
		}
		kind, err := notation.ParseKind(pc.Piece)
		if err != nil {
			return nil, toMove, fmt.Errorf("setup piece %d: %w", i, err)
		}
		colour, err := notation.ParseColour(pc.Colour)
		if err != nil {
			return nil, toMove, fmt.Errorf("setup piece %d: %w", i, err)
		}
		placements = append(placements, engine.Placement{Kind: kind, Colour: colour, Pos: pos, Moves: pc.Moves})
	}
	return placements, toMove, nil
}
