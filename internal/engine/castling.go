package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// markCastling marks the king's castling destinations. Castling needs an
// unmoved king, an unmoved rook of the same colour on its home square and
// empty squares between them. Whether the king passes through an attacked
// square is not examined.
func markCastling(board chess.BoardReader, king *chess.Piece, from chess.Position, m chess.Matrix) {
	if king.MoveCount() != 0 {
		return
	}

	// Kingside: rook three columns right, two empty squares between.
	if rookCanCastle(board, king, from.Offset(0, 3)) &&
		isVacant(board, from.Offset(0, 1)) && isVacant(board, from.Offset(0, 2)) {
		m.Set(from.Offset(0, 2))
	}

	// Queenside: rook four columns left, three empty squares between.
	if rookCanCastle(board, king, from.Offset(0, -4)) &&
		isVacant(board, from.Offset(0, -1)) && isVacant(board, from.Offset(0, -2)) &&
		isVacant(board, from.Offset(0, -3)) {
		m.Set(from.Offset(0, -2))
	}
}

// rookCanCastle returns true if pos holds an unmoved rook of the king's colour.
func rookCanCastle(board chess.BoardReader, king *chess.Piece, pos chess.Position) bool {
	rook := occupant(board, pos)
	return rook != nil && rook.Kind() == chess.Rook && rook.Colour() == king.Colour() && rook.MoveCount() == 0
}

// castleRookSquares returns where the rook starts and lands for a castling
// move whose king started on kingFrom.
func castleRookSquares(class chess.MoveClass, kingFrom chess.Position) (from, to chess.Position) {
	if class == chess.KingsideCastle {
		return kingFrom.Offset(0, 3), kingFrom.Offset(0, 1)
	}
	return kingFrom.Offset(0, -4), kingFrom.Offset(0, -1)
}
