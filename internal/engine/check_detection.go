package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// king returns the in-play king of the given colour.
func (m *Match) king(colour chess.Colour) (*chess.Piece, error) {
	for _, p := range m.inPlay {
		if p.Kind() == chess.King && p.Colour() == colour {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: there is no %v king on the board", errors.ErrInvariantViolation, colour)
}

// isInCheck returns true if the given colour's king is reachable by any
// opposing piece in play.
func (m *Match) isInCheck(colour chess.Colour) (bool, error) {
	king, err := m.king(colour)
	if err != nil {
		return false, err
	}
	kingPos, _ := king.Position()

	for _, p := range m.inPlay {
		if p.Colour() == colour {
			continue
		}
		if m.reachable(p).At(kingPos) {
			return true, nil
		}
	}
	return false, nil
}

// reachable returns the pseudo-legal destinations of p in the current position.
func (m *Match) reachable(p *chess.Piece) chess.Matrix {
	return ReachableSquares(m.board, p, m.enPassant)
}
