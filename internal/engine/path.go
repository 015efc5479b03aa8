package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

var (
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// occupant returns the piece on pos, or nil if pos is empty or off the board.
func occupant(board chess.BoardReader, pos chess.Position) *chess.Piece {
	if !board.Exists(pos) {
		return nil
	}
	p, err := board.PieceAt(pos)
	if err != nil {
		return nil
	}
	return p
}

// isVacant returns true if pos is on the board and empty.
func isVacant(board chess.BoardReader, pos chess.Position) bool {
	return board.Exists(pos) && occupant(board, pos) == nil
}

// markRays marks every square along each direction until the edge of the
// board or the first occupied square, which is included only when it holds
// an opposing piece.
func markRays(board chess.BoardReader, piece *chess.Piece, from chess.Position, dirs [][2]int, m chess.Matrix) {
	for _, dir := range dirs {
		pos := from.Offset(dir[0], dir[1])
		for board.Exists(pos) {
			target := occupant(board, pos)
			if target != nil {
				if piece.IsOpponent(target) {
					m.Set(pos)
				}
				break // Blocked
			}
			m.Set(pos)
			pos = pos.Offset(dir[0], dir[1])
		}
	}
}

// markSteps marks each single-step target that is on the board and not
// held by a piece of the same colour.
func markSteps(board chess.BoardReader, piece *chess.Piece, from chess.Position, offsets [][2]int, m chess.Matrix) {
	for _, offset := range offsets {
		pos := from.Offset(offset[0], offset[1])
		if !board.Exists(pos) {
			continue
		}
		target := occupant(board, pos)
		if target == nil || piece.IsOpponent(target) {
			m.Set(pos)
		}
	}
}
