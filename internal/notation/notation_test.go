package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want chess.Position
	}{
		{"a8", chess.Pos(0, 0)},
		{"h8", chess.Pos(0, 7)},
		{"a1", chess.Pos(7, 0)},
		{"h1", chess.Pos(7, 7)},
		{"e4", chess.Pos(4, 4)},
		{"E2", chess.Pos(6, 4)},
		{" d5 ", chess.Pos(3, 3)},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e9", "i1", "a0", "e44", "44"} {
		if _, err := ParseSquare(in); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", in, err)
		}
	}
}

// TestSquareRoundTrip checks the transform is a bijection over the board.
func TestSquareRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for r := 0; r < chess.BoardSize; r++ {
		for c := 0; c < chess.BoardSize; c++ {
			name := FormatSquare(chess.Pos(r, c))
			if seen[name] {
				t.Fatalf("FormatSquare produced %q twice", name)
			}
			seen[name] = true
			back, err := ParseSquare(name)
			if err != nil || back != chess.Pos(r, c) {
				t.Errorf("ParseSquare(FormatSquare(%d,%d)) = %v, %v", r, c, back, err)
			}
		}
	}
	if got := FormatSquare(chess.Pos(9, 1)); got != "(9,1)" {
		t.Errorf("FormatSquare(off board) = %q, want (9,1)", got)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want MoveText
	}{
		{"e2e4", MoveText{From: chess.Pos(6, 4), To: chess.Pos(4, 4)}},
		{"e2-e4", MoveText{From: chess.Pos(6, 4), To: chess.Pos(4, 4)}},
		{"g8 f6", MoveText{From: chess.Pos(0, 6), To: chess.Pos(2, 5)}},
		{"a7a8c", MoveText{From: chess.Pos(1, 0), To: chess.Pos(0, 0), Promotion: "C"}},
		{"b2-b1 q", MoveText{From: chess.Pos(6, 1), To: chess.Pos(7, 1), Promotion: "Q"}},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseMove(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	for _, bad := range []string{"", "e2", "e2e", "e2e4e5", "z2e4", "e2e9"} {
		if _, err := ParseMove(bad); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestParseKindAndColour(t *testing.T) {
	if k, err := ParseKind("n"); err != nil || k != chess.Knight {
		t.Errorf("ParseKind(n) = %v, %v", k, err)
	}
	if k, err := ParseKind("K"); err != nil || k != chess.King {
		t.Errorf("ParseKind(K) = %v, %v", k, err)
	}
	if _, err := ParseKind("X"); err == nil {
		t.Error("ParseKind(X) should fail")
	}
	if c, err := ParseColour("B"); err != nil || c != chess.Black {
		t.Errorf("ParseColour(B) = %v, %v", c, err)
	}
	if c, err := ParseColour("white"); err != nil || c != chess.White {
		t.Errorf("ParseColour(white) = %v, %v", c, err)
	}
	if _, err := ParseColour("red"); err == nil {
		t.Error("ParseColour(red) should fail")
	}
}
