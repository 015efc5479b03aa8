package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// moveRecord holds everything undoMove needs to reverse makeMove exactly.
type moveRecord struct {
	class chess.MoveClass
	from  chess.Position
	to    chess.Position
	piece *chess.Piece

	// Captured piece, the square it was taken from (differs from to for
	// en passant) and its former index in the in-play list.
	captured    *chess.Piece
	capturedAt  chess.Position
	capturedIdx int

	// Rook squares for castling moves.
	rookFrom chess.Position
	rookTo   chess.Position
}

// classify determines the class of a move before it is made.
func classify(board chess.BoardReader, piece *chess.Piece, from, to chess.Position) chess.MoveClass {
	switch piece.Kind() {
	case chess.King:
		switch to.Col - from.Col {
		case 2:
			return chess.KingsideCastle
		case -2:
			return chess.QueensideCastle
		}
	case chess.Pawn:
		if from.Col != to.Col && occupant(board, to) == nil {
			return chess.EnPassantPawnMove
		}
		if to.Row == promotionRow(piece.Colour(), board.Rows()) {
			return chess.PawnMoveWithPromotion
		}
		return chess.PawnMove
	}
	return chess.PieceMove
}

// makeMove moves the piece on from to to, applying captures and the side
// effects of castling and en passant. The move is assumed to be reachable.
// Promotion is not applied here.
func (m *Match) makeMove(from, to chess.Position) (*moveRecord, error) {
	piece, err := m.board.PieceAt(from)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, fmt.Errorf("%w: no piece to move on %v", errors.ErrInvariantViolation, from)
	}

	rec := &moveRecord{
		class: classify(m.board, piece, from, to),
		from:  from,
		to:    to,
		piece: piece,
	}

	if _, err := m.board.Remove(from); err != nil {
		return nil, err
	}
	piece.IncrementMoves()

	captured, err := m.board.Remove(to)
	if err != nil {
		return nil, err
	}
	if err := m.board.Place(piece, to); err != nil {
		return nil, err
	}
	if captured != nil {
		rec.captured = captured
		rec.capturedAt = to
		rec.capturedIdx = m.capture(captured)
	}

	switch rec.class {
	case chess.KingsideCastle, chess.QueensideCastle:
		rec.rookFrom, rec.rookTo = castleRookSquares(rec.class, from)
		rook, err := m.board.Remove(rec.rookFrom)
		if err != nil {
			return nil, err
		}
		if rook == nil {
			return nil, fmt.Errorf("%w: no rook to castle with on %v", errors.ErrInvariantViolation, rec.rookFrom)
		}
		if err := m.board.Place(rook, rec.rookTo); err != nil {
			return nil, err
		}
		rook.IncrementMoves()

	case chess.EnPassantPawnMove:
		// The captured pawn sits beside the origin, behind the destination.
		at := chess.Pos(from.Row, to.Col)
		victim, err := m.board.Remove(at)
		if err != nil {
			return nil, err
		}
		if victim == nil {
			return nil, fmt.Errorf("%w: no pawn to capture en passant on %v", errors.ErrInvariantViolation, at)
		}
		rec.captured = victim
		rec.capturedAt = at
		rec.capturedIdx = m.capture(victim)
	}

	return rec, nil
}

// undoMove reverses makeMove, restoring the board, move counters and piece lists.
func (m *Match) undoMove(rec *moveRecord) error {
	piece, err := m.board.Remove(rec.to)
	if err != nil || piece != rec.piece {
		return undoError(rec, err)
	}
	piece.DecrementMoves()
	if err := m.board.Place(piece, rec.from); err != nil {
		return undoError(rec, err)
	}

	if rec.class == chess.KingsideCastle || rec.class == chess.QueensideCastle {
		rook, err := m.board.Remove(rec.rookTo)
		if err != nil || rook == nil {
			return undoError(rec, err)
		}
		rook.DecrementMoves()
		if err := m.board.Place(rook, rec.rookFrom); err != nil {
			return undoError(rec, err)
		}
	}

	if rec.captured != nil {
		if err := m.board.Place(rec.captured, rec.capturedAt); err != nil {
			return undoError(rec, err)
		}
		if err := m.uncapture(rec.captured, rec.capturedIdx); err != nil {
			return undoError(rec, err)
		}
	}
	return nil
}

func undoError(rec *moveRecord, err error) error {
	if err == nil {
		return fmt.Errorf("%w: cannot undo %v %v->%v", errors.ErrInvariantViolation, rec.class, rec.from, rec.to)
	}
	return fmt.Errorf("%w: cannot undo %v %v->%v: %v", errors.ErrInvariantViolation, rec.class, rec.from, rec.to, err)
}

// capture moves piece from the in-play list to the captured list and
// returns its former in-play index.
func (m *Match) capture(piece *chess.Piece) int {
	idx := slices.Index(m.inPlay, piece)
	if idx >= 0 {
		m.inPlay = slices.Delete(m.inPlay, idx, idx+1)
	}
	m.captured = append(m.captured, piece)
	return idx
}

// uncapture reverses capture. piece must be the most recent capture.
func (m *Match) uncapture(piece *chess.Piece, idx int) error {
	n := len(m.captured)
	if n == 0 || m.captured[n-1] != piece {
		return fmt.Errorf("%v is not the latest capture", piece)
	}
	m.captured = m.captured[:n-1]
	if idx < 0 || idx > len(m.inPlay) {
		idx = len(m.inPlay)
	}
	m.inPlay = slices.Insert(m.inPlay, idx, piece)
	return nil
}

// tryMove makes a move, tests whether colour's king is left in check and
// undoes the move. It returns true if the king is safe afterwards.
func (m *Match) tryMove(from, to chess.Position, colour chess.Colour) (bool, error) {
	rec, err := m.makeMove(from, to)
	if err != nil {
		return false, err
	}
	inCheck, checkErr := m.isInCheck(colour)
	if err := m.undoMove(rec); err != nil {
		return false, err
	}
	if checkErr != nil {
		return false, checkErr
	}
	return !inCheck, nil
}
