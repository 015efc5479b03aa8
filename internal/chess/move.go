package chess

import "fmt"

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"PawnMove", "PawnMoveWithPromotion", "EnPassantPawnMove", "PieceMove", "KingsideCastle", "QueensideCastle"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is an origin/destination pair.
type Move struct {
	From Position
	To   Position
}

// String returns e.g. "(6,4)->(4,4)".
func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}
