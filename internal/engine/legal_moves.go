package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// hasSafeMove returns true if colour has at least one move that does not
// leave its king in check. Every candidate is made and undone in turn.
func (m *Match) hasSafeMove(colour chess.Colour) (bool, error) {
	found := false
	err := m.forEachSafeMove(colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found, err
}

// forEachSafeMove calls fn for each move of colour that does not leave its
// king in check, stopping early when fn returns false. The position is
// restored before each call to fn.
func (m *Match) forEachSafeMove(colour chess.Colour, fn func(chess.Move) bool) error {
	// makeMove edits the in-play list, so iterate over a copy.
	pieces := make([]*chess.Piece, 0, len(m.inPlay))
	for _, p := range m.inPlay {
		if p.Colour() == colour {
			pieces = append(pieces, p)
		}
	}

	for _, p := range pieces {
		from, _ := p.Position()
		for _, to := range m.reachable(p).Positions() {
			safe, err := m.tryMove(from, to, colour)
			if err != nil {
				return err
			}
			if safe && !fn(chess.Move{From: from, To: to}) {
				return nil
			}
		}
	}
	return nil
}

// LegalMoves lists every move of the active colour that does not leave its
// own king in check, grouped by piece in in-play order. It returns nothing
// once the match has ended or while a promotion choice is pending.
func (m *Match) LegalMoves() ([]chess.Move, error) {
	if m.aborted != nil {
		return nil, m.aborted
	}
	if m.checkmate || m.promoted != nil {
		return nil, nil
	}

	var moves []chess.Move
	err := m.forEachSafeMove(m.active, func(mv chess.Move) bool {
		moves = append(moves, mv)
		return true
	})
	if err != nil {
		return nil, m.abort(err)
	}
	return moves, nil
}
