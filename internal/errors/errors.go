// Package errors provides sentinel errors and error types for the chess match engine.
// It defines the failure classes the engine can report and structured error types
// that preserve board and move context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the board grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrOccupiedSquare indicates a placement onto a square that already holds a piece.
	ErrOccupiedSquare = errors.New("square already occupied")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidState indicates an operation that the match cannot accept right now.
	ErrInvalidState = errors.New("invalid match state")

	// ErrInvariantViolation indicates corrupted internal state. The match cannot continue.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidBoard indicates unusable board dimensions.
	ErrInvalidBoard = errors.New("invalid board dimensions")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSquare indicates square text that cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")
)

// MoveReason says why a move was rejected.
type MoveReason int

const (
	NoPiece MoveReason = iota
	WrongOwner
	NoLegalMoves
	Unreachable
	SelfCheck
	GameOver
	PromotionPending
)

// String returns a human readable description of the reason.
func (r MoveReason) String() string {
	switch r {
	case NoPiece:
		return "there is no piece on the origin square"
	case WrongOwner:
		return "the chosen piece is not yours"
	case NoLegalMoves:
		return "the chosen piece has no possible moves"
	case Unreachable:
		return "the chosen piece cannot move to the destination square"
	case SelfCheck:
		return "you cannot put yourself in check"
	case GameOver:
		return "the match is over"
	case PromotionPending:
		return "a promotion choice is pending"
	}
	return "unknown reason"
}

// MoveError describes a rejected move. Err is ErrIllegalMove for mistakes the
// player can correct by choosing another move and ErrInvalidState when the match
// cannot accept moves at all.
type MoveError struct {
	Err    error      // The underlying error
	Reason MoveReason // Why the move was rejected
	From   string     // Origin square (if known)
	To     string     // Destination square (if known)
	Turn   int        // Turn number at the time of the attempt
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	}

	msg := e.Reason.String()
	if e.Err != nil {
		msg = fmt.Sprintf("%v: %s", e.Err, msg)
	}
	if len(parts) == 0 {
		return msg
	}
	return strings.Join(parts, ", ") + ": " + msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SquareError reports a board operation that failed on a specific square.
type SquareError struct {
	Err error  // The underlying error
	Op  string // Board operation ("place", "remove", "piece")
	Row int
	Col int
}

// Error returns a formatted error message with the square and operation.
func (e *SquareError) Error() string {
	loc := fmt.Sprintf("(%d,%d)", e.Row, e.Col)
	if e.Op != "" {
		loc = e.Op + " " + loc
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
