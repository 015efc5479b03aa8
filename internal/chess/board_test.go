package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewStandardBoard()

	t.Run("dimensions", func(t *testing.T) {
		if b.Rows() != BoardSize || b.Cols() != BoardSize {
			t.Errorf("size = %dx%d; want %dx%d", b.Rows(), b.Cols(), BoardSize, BoardSize)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				occupied, err := b.IsOccupied(Pos(r, c))
				if err != nil {
					t.Fatalf("IsOccupied(%d,%d) error: %v", r, c, err)
				}
				if occupied {
					t.Errorf("IsOccupied(%d,%d) = true; want false", r, c)
				}
			}
		}
	})
}

func TestNewBoard_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 8},
		{"zero cols", 8, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows, tt.cols)
			if !errors.Is(err, chesserrors.ErrInvalidBoard) {
				t.Errorf("NewBoard(%d, %d) error = %v; want ErrInvalidBoard", tt.rows, tt.cols, err)
			}
		})
	}

	b, err := NewBoard(3, 5)
	if err != nil {
		t.Fatalf("NewBoard(3, 5) error: %v", err)
	}
	if !b.Exists(Pos(2, 4)) || b.Exists(Pos(3, 0)) || b.Exists(Pos(0, 5)) {
		t.Error("Exists does not respect a 3x5 grid")
	}
}

func TestBoard_Exists(t *testing.T) {
	b := NewStandardBoard()
	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(7, 7), true},
		{Pos(3, 4), true},
		{Pos(-1, 0), false},
		{Pos(0, -1), false},
		{Pos(8, 0), false},
		{Pos(0, 8), false},
	}
	for _, tt := range tests {
		if got := b.Exists(tt.pos); got != tt.want {
			t.Errorf("Exists(%v) = %v; want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBoard_PlaceAndRemove(t *testing.T) {
	b := NewStandardBoard()
	knight := NewPiece(Knight, White)

	if err := b.Place(knight, Pos(7, 1)); err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	got, err := b.PieceAt(Pos(7, 1))
	if err != nil {
		t.Fatalf("PieceAt() error: %v", err)
	}
	if got != knight {
		t.Errorf("PieceAt(7,1) = %v; want the placed knight", got)
	}
	if pos, on := knight.Position(); !on || pos != Pos(7, 1) {
		t.Errorf("knight.Position() = %v, %v; want (7,1), true", pos, on)
	}

	removed, err := b.Remove(Pos(7, 1))
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if removed != knight {
		t.Errorf("Remove(7,1) = %v; want the knight", removed)
	}
	if pos, on := knight.Position(); on || pos != Pos(7, 1) {
		t.Errorf("after removal Position() = %v, %v; want last square (7,1), false", pos, on)
	}
	if occupied, _ := b.IsOccupied(Pos(7, 1)); occupied {
		t.Error("square still occupied after Remove")
	}
}

func TestBoard_PlaceOccupied(t *testing.T) {
	b := NewStandardBoard()
	if err := b.Place(NewPiece(Rook, Black), Pos(0, 0)); err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	intruder := NewPiece(Queen, White)
	err := b.Place(intruder, Pos(0, 0))
	if !errors.Is(err, chesserrors.ErrOccupiedSquare) {
		t.Fatalf("Place() on occupied square error = %v; want ErrOccupiedSquare", err)
	}
	if _, on := intruder.Position(); on {
		t.Error("rejected piece reports itself on the board")
	}
	var sqErr *chesserrors.SquareError
	if !errors.As(err, &sqErr) || sqErr.Row != 0 || sqErr.Col != 0 {
		t.Errorf("error %v does not carry the square", err)
	}
}

func TestBoard_RemoveEmpty(t *testing.T) {
	b := NewStandardBoard()
	p, err := b.Remove(Pos(4, 4))
	if err != nil {
		t.Errorf("Remove(empty) error = %v; want nil", err)
	}
	if p != nil {
		t.Errorf("Remove(empty) = %v; want nil", p)
	}
}

func TestBoard_OutOfBounds(t *testing.T) {
	b := NewStandardBoard()
	off := Pos(8, 3)

	if _, err := b.PieceAt(off); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("PieceAt(off) error = %v; want ErrOutOfBounds", err)
	}
	if _, err := b.Remove(off); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("Remove(off) error = %v; want ErrOutOfBounds", err)
	}
	if _, err := b.IsOccupied(off); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("IsOccupied(off) error = %v; want ErrOutOfBounds", err)
	}
	if err := b.Place(NewPiece(Pawn, White), off); !errors.Is(err, chesserrors.ErrOutOfBounds) {
		t.Errorf("Place(off) error = %v; want ErrOutOfBounds", err)
	}
}

func TestBoard_Snapshot(t *testing.T) {
	b, err := NewBoard(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Place(NewPiece(King, Black), Pos(0, 1)); err != nil {
		t.Fatal(err)
	}
	if err := b.Place(NewPiece(Pawn, White), Pos(1, 2)); err != nil {
		t.Fatal(err)
	}

	want := [][]Kind{
		{Empty, B(King), Empty},
		{Empty, Empty, W(Pawn)},
	}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestPiece_MoveCount(t *testing.T) {
	p := NewPiece(Rook, White)
	p.IncrementMoves()
	p.IncrementMoves()
	p.DecrementMoves()
	if p.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d; want 1", p.MoveCount())
	}
	if !p.IsOpponent(NewPiece(Pawn, Black)) || p.IsOpponent(NewPiece(Pawn, White)) || p.IsOpponent(nil) {
		t.Error("IsOpponent() gives wrong answers")
	}
}
