package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// ReachableSquares returns the squares piece could move to on board,
// ignoring whether the move would leave its own king in check. enPassant is
// the pawn currently vulnerable to en passant capture, or nil.
//
// A piece that is not on the board reaches nothing.
func ReachableSquares(board chess.BoardReader, piece *chess.Piece, enPassant *chess.Piece) chess.Matrix {
	m := chess.NewMatrix(board.Rows(), board.Cols())
	from, onBoard := piece.Position()
	if !onBoard {
		return m
	}

	switch piece.Kind() {
	case chess.Pawn:
		markPawn(board, piece, from, enPassant, m)
	case chess.Knight:
		markSteps(board, piece, from, knightOffsets, m)
	case chess.Bishop:
		markRays(board, piece, from, diagonalDirs, m)
	case chess.Rook:
		markRays(board, piece, from, straightDirs, m)
	case chess.Queen:
		markRays(board, piece, from, diagonalDirs, m)
		markRays(board, piece, from, straightDirs, m)
	case chess.King:
		markSteps(board, piece, from, kingOffsets, m)
		markCastling(board, piece, from, m)
	}
	return m
}

// HasAnyMove returns true if piece reaches at least one square.
func HasAnyMove(board chess.BoardReader, piece *chess.Piece, enPassant *chess.Piece) bool {
	return ReachableSquares(board, piece, enPassant).Any()
}

// CanReach returns true if piece reaches dest.
func CanReach(board chess.BoardReader, piece *chess.Piece, enPassant *chess.Piece, dest chess.Position) bool {
	return ReachableSquares(board, piece, enPassant).At(dest)
}
