package testutil

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

func TestSq(t *testing.T) {
	AssertEqual(t, Sq(t, "a8"), chess.Pos(0, 0))
	AssertEqual(t, Sq(t, "h1"), chess.Pos(7, 7))
	AssertEqual(t, Squares(t, "e2", "e4"), []chess.Position{chess.Pos(6, 4), chess.Pos(4, 4)})
}

func TestDiagram(t *testing.T) {
	board := chess.NewStandardBoard()
	AssertNoError(t, board.Place(chess.NewPiece(chess.King, chess.White), Sq(t, "e1")))
	AssertNoError(t, board.Place(chess.NewPiece(chess.Queen, chess.Black), Sq(t, "d8")))

	want := []string{
		"...q....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	}
	AssertEqual(t, Diagram(board.Snapshot()), want)
}
