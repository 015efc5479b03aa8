package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Placement puts one piece on the board when building a match from a custom
// position. Moves presets the piece's move counter, which decides pawn
// double steps and castling rights.
type Placement struct {
	Kind   chess.Kind
	Colour chess.Colour
	Pos    chess.Position
	Moves  int
}

var backRank = []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

// NewMatch creates a match in the standard starting position with white to move.
func NewMatch(opts ...Option) *Match {
	m := newMatch(opts...)
	last := chess.BoardSize - 1
	for col, kind := range backRank {
		m.mustPlace(kind, chess.White, chess.Pos(last, col))
		m.mustPlace(chess.Pawn, chess.White, chess.Pos(last-1, col))
		m.mustPlace(chess.Pawn, chess.Black, chess.Pos(1, col))
		m.mustPlace(kind, chess.Black, chess.Pos(0, col))
	}
	m.logf(1, "new match")
	return m
}

// NewMatchFromSetup creates a match from explicit placements with toMove to
// play. Each colour needs exactly one king, and the side not to move must not
// be in check.
func NewMatchFromSetup(placements []Placement, toMove chess.Colour, opts ...Option) (*Match, error) {
	m := newMatch(opts...)
	m.active = toMove

	kings := make(map[chess.Colour]int)
	for i, pl := range placements {
		if pl.Kind <= chess.Empty || pl.Kind >= chess.NumKinds {
			return nil, fmt.Errorf("placement %d: unknown kind %d: %w", i, pl.Kind, errors.ErrInvalidState)
		}
		p, err := m.place(pl.Kind, pl.Colour, pl.Pos)
		if err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		for n := 0; n < pl.Moves; n++ {
			p.IncrementMoves()
		}
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if kings[c] != 1 {
			return nil, fmt.Errorf("%v has %d kings, want 1: %w", c, kings[c], errors.ErrInvalidState)
		}
	}

	waiting, err := m.isInCheck(toMove.Opposite())
	if err != nil {
		return nil, err
	}
	if waiting {
		return nil, fmt.Errorf("%v is in check but it is %v's move: %w", toMove.Opposite(), toMove, errors.ErrInvalidState)
	}

	if m.check, err = m.isInCheck(toMove); err != nil {
		return nil, err
	}
	if m.check {
		if m.checkmate, err = m.isCheckmate(toMove); err != nil {
			return nil, err
		}
	}
	m.logf(1, "new match from %d placements, %v to move", len(placements), toMove)
	return m, nil
}

// place creates a piece and puts it on the board and in play.
func (m *Match) place(kind chess.Kind, colour chess.Colour, pos chess.Position) (*chess.Piece, error) {
	p := chess.NewPiece(kind, colour)
	if err := m.board.Place(p, pos); err != nil {
		return nil, err
	}
	m.created++
	m.inPlay = append(m.inPlay, p)
	return p, nil
}

// mustPlace is place for the standard setup, where a failure means the
// setup tables themselves are wrong.
func (m *Match) mustPlace(kind chess.Kind, colour chess.Colour, pos chess.Position) {
	if _, err := m.place(kind, colour, pos); err != nil {
		panic(fmt.Sprintf("standard setup: %v", err))
	}
}
