package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// BoardReader is the read-only view of a board handed to move generation
// and to presentation code.
type BoardReader interface {
	Rows() int
	Cols() int
	Exists(pos Position) bool
	PieceAt(pos Position) (*Piece, error)
	IsOccupied(pos Position) (bool, error)
}

// Board is a rows x cols grid where every square holds at most one piece.
type Board struct {
	rows    int
	cols    int
	squares [][]*Piece
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: at least one row and one column are needed: %w", rows, cols, errors.ErrInvalidBoard)
	}
	squares := make([][]*Piece, rows)
	for r := range squares {
		squares[r] = make([]*Piece, cols)
	}
	return &Board{rows: rows, cols: cols, squares: squares}, nil
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	b, _ := NewBoard(BoardSize, BoardSize)
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Exists reports whether pos lies on the grid. It never fails.
func (b *Board) Exists(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// PieceAt returns the occupant of pos, or nil if the square is empty.
func (b *Board) PieceAt(pos Position) (*Piece, error) {
	if !b.Exists(pos) {
		return nil, boundsError("piece", pos)
	}
	return b.squares[pos.Row][pos.Col], nil
}

// IsOccupied reports whether pos holds a piece. Unlike Exists it requires
// a coordinate on the grid.
func (b *Board) IsOccupied(pos Position) (bool, error) {
	p, err := b.PieceAt(pos)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// Place puts piece on pos and updates its cached position.
func (b *Board) Place(piece *Piece, pos Position) error {
	occupied, err := b.IsOccupied(pos)
	if err != nil {
		return err
	}
	if occupied {
		return &errors.SquareError{Err: errors.ErrOccupiedSquare, Op: "place", Row: pos.Row, Col: pos.Col}
	}
	b.squares[pos.Row][pos.Col] = piece
	piece.pos = pos
	piece.onBoard = true
	return nil
}

// Remove takes the occupant off pos and returns it. Removing from an empty
// square returns nil without error.
func (b *Board) Remove(pos Position) (*Piece, error) {
	if !b.Exists(pos) {
		return nil, boundsError("remove", pos)
	}
	p := b.squares[pos.Row][pos.Col]
	if p == nil {
		return nil, nil
	}
	b.squares[pos.Row][pos.Col] = nil
	p.onBoard = false
	return p, nil
}

// Snapshot returns the coloured kind on every square, Empty where vacant.
func (b *Board) Snapshot() [][]Kind {
	grid := make([][]Kind, b.rows)
	for r := range grid {
		grid[r] = make([]Kind, b.cols)
		for c, p := range b.squares[r] {
			if p != nil {
				grid[r][c] = p.Coloured()
			}
		}
	}
	return grid
}

func boundsError(op string, pos Position) error {
	return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: op, Row: pos.Row, Col: pos.Col}
}
