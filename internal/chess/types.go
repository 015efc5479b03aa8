// Package chess provides core chess types and operations.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to this kind.
func (k Kind) Promotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// KindFromCode maps a promotion code to a kind. Both the traditional
// B/C/T/Q letters (bishop, knight, rook, queen) and the English N and R
// are accepted, case-insensitively.
func KindFromCode(code string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "B":
		return Bishop, true
	case "C", "N":
		return Knight, true
	case "T", "R":
		return Rook, true
	case "Q":
		return Queen, true
	}
	return Empty, false
}

// KindShift is used for encoding coloured kinds.
const KindShift = 3

// MakeColouredKind creates a coloured kind value.
func MakeColouredKind(colour Colour, kind Kind) Kind {
	return Kind((int(kind) << KindShift) | int(colour))
}

// W creates a white kind.
func W(kind Kind) Kind {
	return MakeColouredKind(White, kind)
}

// B creates a black kind.
func B(kind Kind) Kind {
	return MakeColouredKind(Black, kind)
}

// ExtractColour extracts the colour from a coloured kind.
func ExtractColour(coloured Kind) Colour {
	return Colour(coloured & 0x01)
}

// ExtractKind extracts the kind from a coloured kind.
func ExtractKind(coloured Kind) Kind {
	return Kind(coloured >> KindShift)
}

// Constants for the standard board.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// PawnDirection returns the row delta of a pawn advance: white moves
// toward row 0, black toward the last row.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
