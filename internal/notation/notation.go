// Package notation converts between the engine's row/column positions and
// the algebraic square names players type ("e4"), and parses move text.
// It only knows the standard 8x8 board.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ParseSquare converts a square name such as "e4" to a position.
func ParseSquare(s string) (chess.Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return chess.Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col, rank := s[0], s[1]
	if col < chess.ColBase || col >= chess.ColBase+chess.BoardSize ||
		rank < chess.RankBase || rank >= chess.RankBase+chess.BoardSize {
		return chess.Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return chess.Position{
		Row: chess.BoardSize - 1 - int(rank-chess.RankBase),
		Col: int(col - chess.ColBase),
	}, nil
}

// FormatSquare converts a position to its square name. Positions off the
// standard board are shown as (row,col).
func FormatSquare(p chess.Position) string {
	if p.Row < 0 || p.Row >= chess.BoardSize || p.Col < 0 || p.Col >= chess.BoardSize {
		return p.String()
	}
	return string([]byte{
		byte(chess.ColBase + p.Col),
		byte(chess.RankBase + chess.BoardSize - 1 - p.Row),
	})
}

// MoveText is a parsed move: origin, destination and an optional promotion letter.
type MoveText struct {
	From      chess.Position
	To        chess.Position
	Promotion string
}

// ParseMove parses "e2e4", "e2-e4" or "e2 e4", optionally followed by a
// promotion letter ("e7e8C", "e7-e8 q").
func ParseMove(text string) (MoveText, error) {
	compact := strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(strings.TrimSpace(text))
	if len(compact) != 4 && len(compact) != 5 {
		return MoveText{}, fmt.Errorf("move %q: expected origin and destination squares: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(compact[0:2])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q origin", text)
	}
	to, err := ParseSquare(compact[2:4])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q destination", text)
	}
	mv := MoveText{From: from, To: to}
	if len(compact) == 5 {
		mv.Promotion = strings.ToUpper(compact[4:])
	}
	return mv, nil
}

// ParseKind converts a piece letter (P, N, B, R, Q, K) to a kind.
func ParseKind(s string) (chess.Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 {
		for k := chess.Pawn; k < chess.NumKinds; k++ {
			if k.Letter() == s[0] {
				return k, nil
			}
		}
	}
	return chess.Empty, fmt.Errorf("unknown piece letter %q", s)
}

// ParseColour converts "white"/"w" or "black"/"b" to a colour.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown colour %q", s)
}
