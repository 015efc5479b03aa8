package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// PendingPromotion returns the pawn waiting for a promotion choice, or nil.
// The pawn has left the board; its position is the promotion square, which is
// held by the default piece until ChoosePromotion is called.
func (m *Match) PendingPromotion() *chess.Piece {
	return m.promoted
}

// ChoosePromotion replaces the default piece standing on the promotion square
// with a new piece of the given kind. A kind a pawn cannot become keeps the
// default. Check and checkmate are re-evaluated for the new piece.
func (m *Match) ChoosePromotion(kind chess.Kind) error {
	if m.aborted != nil {
		return m.aborted
	}
	if m.promoted == nil {
		return fmt.Errorf("no promotion is pending: %w", errors.ErrInvalidState)
	}
	provisional := m.provisional
	m.promoted, m.provisional = nil, nil

	if !kind.Promotable() || kind == provisional.Kind() {
		m.logf(1, "promotion to %v stands", provisional.Kind())
		return nil
	}

	mover := provisional.Colour()
	m.reopenTurn(mover)
	if _, err := m.replace(provisional, kind); err != nil {
		return m.abort(err)
	}
	if err := m.finishTurn(mover); err != nil {
		return m.abort(err)
	}
	m.logf(1, "promotion changed to %v", kind)
	return nil
}

// ChoosePromotionCode is ChoosePromotion for a promotion letter (B, C/N, T/R, Q).
// Unknown letters keep the default.
func (m *Match) ChoosePromotionCode(code string) error {
	kind, _ := chess.KindFromCode(code)
	return m.ChoosePromotion(kind)
}

// promote swaps the pawn that reached the last rank for a piece of the
// given kind and marks the promotion as pending.
func (m *Match) promote(pawn *chess.Piece, kind chess.Kind) error {
	np, err := m.replace(pawn, kind)
	if err != nil {
		return err
	}
	m.promoted = pawn
	m.provisional = np
	m.logf(1, "%v pawn promoted to %v, awaiting choice", pawn.Colour(), kind)
	return nil
}

// replace retires old and puts a fresh piece of the given kind and the same
// colour on its square, keeping its place in the in-play order.
func (m *Match) replace(old *chess.Piece, kind chess.Kind) (*chess.Piece, error) {
	pos, onBoard := old.Position()
	idx := slices.Index(m.inPlay, old)
	if !onBoard || idx < 0 {
		return nil, fmt.Errorf("%w: %v is not in play", errors.ErrInvariantViolation, old)
	}
	if _, err := m.board.Remove(pos); err != nil {
		return nil, err
	}
	np := chess.NewPiece(kind, old.Colour())
	if err := m.board.Place(np, pos); err != nil {
		return nil, err
	}
	m.created++
	m.inPlay[idx] = np
	m.retired = append(m.retired, old)
	return np, nil
}
