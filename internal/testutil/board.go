package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/notation"
)

// Sq converts a square name such as "e4" to a position.
// It calls t.Fatal if the name is not a square of the standard board.
func Sq(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := notation.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square in test: %v", err)
	}
	return pos
}

// Squares converts several square names at once.
func Squares(t *testing.T, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, 0, len(names))
	for _, n := range names {
		out = append(out, Sq(t, n))
	}
	return out
}

// Diagram renders a board snapshot one string per row, rank 8 first.
// White pieces are upper case, black lower case and empty squares '.'.
func Diagram(snapshot [][]chess.Kind) []string {
	rows := make([]string, len(snapshot))
	for r, row := range snapshot {
		var sb strings.Builder
		for _, ck := range row {
			if ck == chess.Empty {
				sb.WriteByte('.')
				continue
			}
			letter := chess.ExtractKind(ck).Letter()
			if chess.ExtractColour(ck) == chess.Black {
				letter = letter - 'A' + 'a'
			}
			sb.WriteByte(letter)
		}
		rows[r] = sb.String()
	}
	return rows
}
