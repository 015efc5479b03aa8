package chess

import "fmt"

// Piece is a single chess man. Identity matters: the match tracks pieces by
// pointer (en passant target, pending promotion), so pieces are never copied.
//
// The position is a cache maintained by Board.Place and Board.Remove; the board
// is the source of truth for occupancy. After removal the piece keeps its last
// known square.
type Piece struct {
	kind      Kind
	colour    Colour
	moveCount int
	pos       Position
	onBoard   bool
}

// NewPiece creates a piece with no move history that is not yet on a board.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Colour returns the owning colour.
func (p *Piece) Colour() Colour {
	return p.colour
}

// Coloured returns the coloured kind encoding of the piece.
func (p *Piece) Coloured() Kind {
	return MakeColouredKind(p.colour, p.kind)
}

// MoveCount returns how many times the piece has moved.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// IncrementMoves records a move.
func (p *Piece) IncrementMoves() {
	p.moveCount++
}

// DecrementMoves reverts a recorded move.
func (p *Piece) DecrementMoves() {
	p.moveCount--
}

// Position returns the last known square and whether the piece is currently on the board.
func (p *Piece) Position() (Position, bool) {
	return p.pos, p.onBoard
}

// IsOpponent reports whether other is a piece of the other colour.
func (p *Piece) IsOpponent(other *Piece) bool {
	return other != nil && other.colour != p.colour
}

// String returns e.g. "White Knight (7,1)".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.colour, p.kind, p.pos)
}
