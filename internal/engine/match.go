// Package engine provides chess move validation and the match controller.
//
// A Match owns its board and every piece on it and is the only code that
// mutates them. It is not safe for concurrent use.
package engine

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match is a two-player game in progress.
type Match struct {
	id    uuid.UUID
	board *chess.Board

	turn      int
	active    chess.Colour
	check     bool
	checkmate bool

	// The pawn that may be captured en passant on this turn.
	enPassant *chess.Piece

	// The pawn that reached the last rank and the default piece standing
	// in for it until ChoosePromotion is called.
	promoted    *chess.Piece
	provisional *chess.Piece

	// Every piece created belongs to exactly one of these. Retired pieces
	// were replaced through promotion.
	inPlay   []*chess.Piece
	captured []*chess.Piece
	retired  []*chess.Piece
	created  int

	defaultPromotion chess.Kind
	logger           *log.Logger
	verbosity        int

	// Set once an invariant violation is detected.
	aborted error
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for match events.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithVerbosity sets how much is logged: 0 nothing, 1 match events,
// 2 every move.
func WithVerbosity(level int) Option {
	return func(m *Match) {
		m.verbosity = level
	}
}

// WithDefaultPromotion sets the kind a pawn is promoted to before the
// player's choice arrives. Kinds a pawn cannot become are ignored.
func WithDefaultPromotion(kind chess.Kind) Option {
	return func(m *Match) {
		if kind.Promotable() {
			m.defaultPromotion = kind
		}
	}
}

// WithConfig applies the engine settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(m *Match) {
		if cfg == nil {
			return
		}
		m.verbosity = cfg.Verbosity
		if cfg.LogFile != nil {
			m.logger = log.New(cfg.LogFile, "", log.LstdFlags)
		}
		if cfg.Engine != nil {
			if kind, ok := cfg.Engine.PromotionKind(); ok {
				m.defaultPromotion = kind
			}
		}
	}
}

// newMatch creates a match with an empty standard board.
func newMatch(opts ...Option) *Match {
	m := &Match{
		id:               uuid.New(),
		board:            chess.NewStandardBoard(),
		turn:             1,
		active:           chess.White,
		defaultPromotion: chess.Queen,
		logger:           log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the identifier used to tag this match in logs.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Board returns a read-only view of the board.
func (m *Match) Board() chess.BoardReader {
	return m.board
}

// BoardSnapshot returns the coloured kind on every square, chess.Empty where vacant.
func (m *Match) BoardSnapshot() [][]chess.Kind {
	return m.board.Snapshot()
}

// ActiveColour returns the colour to move.
func (m *Match) ActiveColour() chess.Colour {
	return m.active
}

// TurnNumber returns the current turn, starting at 1.
func (m *Match) TurnNumber() int {
	return m.turn
}

// IsCheck reports whether the last move put the opponent in check.
func (m *Match) IsCheck() bool {
	return m.check
}

// IsCheckmate reports whether the match has ended in checkmate.
func (m *Match) IsCheckmate() bool {
	return m.checkmate
}

// EnPassantVulnerable returns the pawn that may be captured en passant, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	return m.enPassant
}

// CapturedPieces returns the captured pieces in capture order.
func (m *Match) CapturedPieces() []*chess.Piece {
	return append([]*chess.Piece(nil), m.captured...)
}

// PiecesInPlay returns the pieces on the board.
func (m *Match) PiecesInPlay() []*chess.Piece {
	return append([]*chess.Piece(nil), m.inPlay...)
}

// Err returns the invariant violation that aborted the match, if any.
func (m *Match) Err() error {
	return m.aborted
}

// LegalDestinations returns the squares the piece on pos can reach. It fails
// if pos does not hold a piece of the active colour with at least one move,
// and like ExecuteMove once the match is over or a promotion is pending.
func (m *Match) LegalDestinations(pos chess.Position) (chess.Matrix, error) {
	if err := m.acceptingMoves(); err != nil {
		return nil, err
	}
	piece, err := m.validateOrigin(pos)
	if err != nil {
		return nil, err
	}
	return m.reachable(piece), nil
}

// ExecuteMove moves the active colour's piece from origin to destination and
// returns the captured piece, or nil. A rejected move leaves the match
// exactly as it was.
func (m *Match) ExecuteMove(origin, destination chess.Position) (*chess.Piece, error) {
	if err := m.acceptingMoves(); err != nil {
		return nil, err
	}
	piece, err := m.validateOrigin(origin)
	if err != nil {
		return nil, err
	}
	if err := m.validateDestination(piece, origin, destination); err != nil {
		return nil, err
	}

	mover := m.active
	rec, err := m.makeMove(origin, destination)
	if err != nil {
		return nil, m.abort(err)
	}

	selfCheck, err := m.isInCheck(mover)
	if err != nil {
		return nil, m.abort(err)
	}
	if selfCheck {
		if err := m.undoMove(rec); err != nil {
			return nil, m.abort(err)
		}
		m.logf(2, "rejected %v->%v: leaves %v king in check", origin, destination, mover)
		return nil, m.moveError(errors.SelfCheck, origin, destination)
	}

	if rec.class == chess.PawnMoveWithPromotion {
		if err := m.promote(rec.piece, m.defaultPromotion); err != nil {
			return nil, m.abort(err)
		}
	}

	m.enPassant = nil
	if rec.piece.Kind() == chess.Pawn && abs(destination.Row-origin.Row) == 2 {
		m.enPassant = rec.piece
	}

	if err := m.finishTurn(mover); err != nil {
		return nil, m.abort(err)
	}

	if rec.captured != nil {
		m.logf(2, "%v %v %v->%v takes %v", mover, rec.piece.Kind(), origin, destination, rec.captured.Kind())
	} else {
		m.logf(2, "%v %v %v->%v", mover, rec.piece.Kind(), origin, destination)
	}
	return rec.captured, nil
}

// acceptingMoves returns an error if the match cannot take a move now.
func (m *Match) acceptingMoves() error {
	switch {
	case m.aborted != nil:
		return m.aborted
	case m.checkmate:
		return &errors.MoveError{Err: errors.ErrInvalidState, Reason: errors.GameOver, Turn: m.turn}
	case m.promoted != nil:
		return &errors.MoveError{Err: errors.ErrInvalidState, Reason: errors.PromotionPending, Turn: m.turn}
	}
	return nil
}

// validateOrigin returns the piece on pos if it belongs to the active colour
// and can move somewhere.
func (m *Match) validateOrigin(pos chess.Position) (*chess.Piece, error) {
	piece, err := m.board.PieceAt(pos)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, m.moveError(errors.NoPiece, pos, chess.Position{})
	}
	if piece.Colour() != m.active {
		return nil, m.moveError(errors.WrongOwner, pos, chess.Position{})
	}
	if !m.reachable(piece).Any() {
		return nil, m.moveError(errors.NoLegalMoves, pos, chess.Position{})
	}
	return piece, nil
}

// validateDestination checks that piece can reach to.
func (m *Match) validateDestination(piece *chess.Piece, from, to chess.Position) error {
	if !m.board.Exists(to) {
		return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: "move", Row: to.Row, Col: to.Col}
	}
	if !m.reachable(piece).At(to) {
		return m.moveError(errors.Unreachable, from, to)
	}
	return nil
}

// moveError builds an illegal move error. A zero destination is omitted.
func (m *Match) moveError(reason errors.MoveReason, from, to chess.Position) error {
	e := &errors.MoveError{Err: errors.ErrIllegalMove, Reason: reason, From: from.String(), Turn: m.turn}
	if reason == errors.Unreachable || reason == errors.SelfCheck {
		e.To = to.String()
	}
	return e
}

// abort records an invariant violation; every later mutation fails with it.
func (m *Match) abort(err error) error {
	if m.aborted == nil {
		m.aborted = fmt.Errorf("match aborted: %w", err)
		m.logf(1, "%v", m.aborted)
	}
	return m.aborted
}

// logf writes a log line tagged with the match ID when verbosity allows.
func (m *Match) logf(level int, format string, args ...interface{}) {
	if m.verbosity < level {
		return
	}
	m.logger.Printf("match %s: %s", m.id, fmt.Sprintf(format, args...))
}
