package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// markPawn marks the pawn's forward advances, diagonal captures and
// en passant capture.
func markPawn(board chess.BoardReader, pawn *chess.Piece, from chess.Position, enPassant *chess.Piece, m chess.Matrix) {
	dir := chess.PawnDirection(pawn.Colour())

	one := from.Offset(dir, 0)
	if isVacant(board, one) {
		m.Set(one)
		// Double step for a pawn that has never moved
		two := from.Offset(2*dir, 0)
		if pawn.MoveCount() == 0 && isVacant(board, two) {
			m.Set(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Offset(dir, dc)
		if pawn.IsOpponent(occupant(board, diag)) {
			m.Set(diag)
		}
	}

	if enPassant == nil || from.Row != enPassantRow(pawn.Colour(), board.Rows()) {
		return
	}
	for _, dc := range []int{-1, 1} {
		side := from.Offset(0, dc)
		target := occupant(board, side)
		behind := side.Offset(dir, 0)
		if target == enPassant && pawn.IsOpponent(target) && isVacant(board, behind) {
			m.Set(behind)
		}
	}
}

// enPassantRow returns the row a pawn must stand on to capture en passant:
// its fifth rank counted in its own direction of advance.
func enPassantRow(colour chess.Colour, rows int) int {
	if colour == chess.White {
		return rows - 5
	}
	return 4
}

// promotionRow returns the last row in the pawn's direction of advance.
func promotionRow(colour chess.Colour, rows int) int {
	if colour == chess.White {
		return 0
	}
	return rows - 1
}
