package chess

import "fmt"

// Position addresses a board square by 0-indexed row and column.
// Row 0 is the eighth rank on the standard board.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the (row,col) form of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
