package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// isCheckmate returns true if colour is in check and no move of any of its
// pieces gets the king out of check.
func (m *Match) isCheckmate(colour chess.Colour) (bool, error) {
	inCheck, err := m.isInCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}
	escape, err := m.hasSafeMove(colour)
	if err != nil {
		return false, err
	}
	return !escape, nil
}

// finishTurn evaluates check and checkmate for the opponent of mover and
// hands the move to the opponent unless the match has ended.
func (m *Match) finishTurn(mover chess.Colour) error {
	opponent := mover.Opposite()

	check, err := m.isInCheck(opponent)
	if err != nil {
		return err
	}
	mate := false
	if check {
		escape, err := m.hasSafeMove(opponent)
		if err != nil {
			return err
		}
		mate = !escape
	}

	m.check = check
	m.checkmate = mate
	if mate {
		m.logf(1, "checkmate on turn %d, %v wins", m.turn, mover)
		return nil
	}
	m.turn++
	m.active = opponent
	return nil
}

// reopenTurn reverses the turn hand-over done by finishTurn.
func (m *Match) reopenTurn(mover chess.Colour) {
	if !m.checkmate {
		m.turn--
	}
	m.active = mover
	m.check = false
	m.checkmate = false
}
