package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Verify checks the structural invariants of the match: every square holds
// at most one piece whose cached position is that square, the pieces on the
// board are exactly the pieces in play, and the in-play, captured and retired
// lists partition every piece the match has created.
func (m *Match) Verify() error {
	where := make(map[*chess.Piece]string, m.created)
	for name, list := range map[string][]*chess.Piece{"in play": m.inPlay, "captured": m.captured, "retired": m.retired} {
		for _, p := range list {
			if prev, dup := where[p]; dup {
				return violation("%v is both %s and %s", p, prev, name)
			}
			where[p] = name
		}
	}
	if len(where) != m.created {
		return violation("%d pieces tracked, %d created", len(where), m.created)
	}

	onBoard := 0
	for r := 0; r < m.board.Rows(); r++ {
		for c := 0; c < m.board.Cols(); c++ {
			sq := chess.Pos(r, c)
			p, err := m.board.PieceAt(sq)
			if err != nil {
				return violation("%v", err)
			}
			if p == nil {
				continue
			}
			onBoard++
			if where[p] != "in play" {
				return violation("%v on %v is not in play", p, sq)
			}
			if pos, on := p.Position(); !on || pos != sq {
				return violation("%v stands on %v but caches %v", p, sq, pos)
			}
		}
	}
	if onBoard != len(m.inPlay) {
		return violation("%d pieces on the board, %d in play", onBoard, len(m.inPlay))
	}
	for _, p := range append(m.CapturedPieces(), m.retired...) {
		if _, on := p.Position(); on {
			return violation("%v is off play but marked on the board", p)
		}
	}
	return nil
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errors.ErrInvariantViolation, fmt.Sprintf(format, args...))
}
