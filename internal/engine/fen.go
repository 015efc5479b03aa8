package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKind converts a FEN piece character to a kind and colour.
func fenKind(c rune) (chess.Kind, chess.Colour, bool) {
	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	upper := byte(unicode.ToUpper(c))
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		if k.Letter() == upper {
			return k, colour, true
		}
	}
	return chess.Empty, colour, false
}

// fenLetter returns the FEN character of a piece.
func fenLetter(p *chess.Piece) byte {
	letter := p.Kind().Letter()
	if p.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewMatchFromFEN creates a match on a standard board from a FEN string.
// Move counters are derived from the position: pawns off their start rank
// have moved, and a king or rook without the matching castling right has
// moved. The halfmove clock is ignored.
func NewMatchFromFEN(fen string, opts ...Option) (*Match, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("FEN %q: need placement and side to move: %w", fen, errors.ErrInvalidState)
	}

	placements, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	var toMove chess.Colour
	switch parts[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return nil, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidState)
	}

	rights := "-"
	if len(parts) > 2 {
		rights = parts[2]
	}
	applyMoveHistory(placements, rights)

	m, err := NewMatchFromSetup(placements, toMove, opts...)
	if err != nil {
		return nil, err
	}

	if len(parts) > 5 {
		if full, err := strconv.Atoi(parts[5]); err == nil && full > 0 {
			m.turn = 2*(full-1) + 1
			if toMove == chess.Black {
				m.turn++
			}
		}
	}

	if len(parts) > 3 && parts[3] != "-" {
		if err := m.setEnPassantTarget(parts[3]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(field string) ([]Placement, error) {
	var placements []Placement
	row, col := 0, 0
	for _, c := range field {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind, colour, ok := fenKind(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidState)
			}
			if row >= chess.BoardSize || col >= chess.BoardSize {
				return nil, fmt.Errorf("piece %q off the board: %w", c, errors.ErrInvalidState)
			}
			placements = append(placements, Placement{Kind: kind, Colour: colour, Pos: chess.Pos(row, col)})
			col++
		}
	}
	if row != chess.BoardSize-1 {
		return nil, fmt.Errorf("placement %q has %d ranks: %w", field, row+1, errors.ErrInvalidState)
	}
	return placements, nil
}

// applyMoveHistory presets move counters so that double steps and castling
// match the position and its castling rights.
func applyMoveHistory(placements []Placement, rights string) {
	last := chess.BoardSize - 1
	homeRow := map[chess.Colour]int{chess.White: last, chess.Black: 0}
	kingside := map[chess.Colour]bool{chess.White: strings.ContainsRune(rights, 'K'), chess.Black: strings.ContainsRune(rights, 'k')}
	queenside := map[chess.Colour]bool{chess.White: strings.ContainsRune(rights, 'Q'), chess.Black: strings.ContainsRune(rights, 'q')}

	for i := range placements {
		pl := &placements[i]
		home := homeRow[pl.Colour]
		switch pl.Kind {
		case chess.Pawn:
			if pl.Pos.Row != home+chess.PawnDirection(pl.Colour) {
				pl.Moves = 1
			}
		case chess.King:
			if pl.Pos != chess.Pos(home, 4) || (!kingside[pl.Colour] && !queenside[pl.Colour]) {
				pl.Moves = 1
			}
		case chess.Rook:
			switch pl.Pos {
			case chess.Pos(home, last):
				if !kingside[pl.Colour] {
					pl.Moves = 1
				}
			case chess.Pos(home, 0):
				if !queenside[pl.Colour] {
					pl.Moves = 1
				}
			default:
				pl.Moves = 1
			}
		}
	}
}

// setEnPassantTarget marks the pawn that just passed over target as
// capturable en passant.
func (m *Match) setEnPassantTarget(target string) error {
	if len(target) != 2 {
		return fmt.Errorf("invalid en passant square %q: %w", target, errors.ErrInvalidState)
	}
	sq := chess.Pos(chess.BoardSize-1-int(target[1]-chess.RankBase), int(target[0]-chess.ColBase))
	if !m.board.Exists(sq) {
		return fmt.Errorf("invalid en passant square %q: %w", target, errors.ErrInvalidState)
	}
	if !isVacant(m.board, sq) {
		return fmt.Errorf("en passant square %q is not empty: %w", target, errors.ErrInvalidState)
	}
	victimColour := m.active.Opposite()
	at := sq.Offset(chess.PawnDirection(victimColour), 0)
	pawn := occupant(m.board, at)
	if pawn == nil || pawn.Kind() != chess.Pawn || pawn.Colour() != victimColour {
		return fmt.Errorf("no %v pawn behind en passant square %q: %w", victimColour, target, errors.ErrInvalidState)
	}
	if at.Row != enPassantRow(m.active, m.board.Rows()) {
		return fmt.Errorf("%v pawn on %v cannot have just advanced two squares: %w", victimColour, at, errors.ErrInvalidState)
	}
	m.enPassant = pawn
	if m.check {
		var err error
		if m.checkmate, err = m.isCheckmate(m.active); err != nil {
			return err
		}
	}
	return nil
}

// FEN returns the position in Forsyth-Edwards Notation. Castling rights are
// reported for unmoved kings and rooks on their home squares; the halfmove
// clock is always 0.
func (m *Match) FEN() string {
	var sb strings.Builder

	for r := 0; r < m.board.Rows(); r++ {
		empty := 0
		for c := 0; c < m.board.Cols(); c++ {
			p := occupant(m.board, chess.Pos(r, c))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < m.board.Rows()-1 {
			sb.WriteByte('/')
		}
	}

	if m.active == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(m.castlingRights())
	sb.WriteByte(' ')

	if m.enPassant != nil {
		pos, _ := m.enPassant.Position()
		behind := pos.Offset(-chess.PawnDirection(m.enPassant.Colour()), 0)
		sb.WriteByte(byte(chess.ColBase + behind.Col))
		sb.WriteByte(byte(chess.RankBase + chess.BoardSize - 1 - behind.Row))
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", (m.turn+1)/2)
	return sb.String()
}

// castlingRights returns the FEN castling field.
func (m *Match) castlingRights() string {
	last := chess.BoardSize - 1
	var sb strings.Builder
	for _, side := range []struct {
		colour  chess.Colour
		row     int
		letters string
	}{
		{chess.White, last, "KQ"},
		{chess.Black, 0, "kq"},
	} {
		king := occupant(m.board, chess.Pos(side.row, 4))
		if king == nil || king.Kind() != chess.King || king.Colour() != side.colour || king.MoveCount() != 0 {
			continue
		}
		if rookCanCastle(m.board, king, chess.Pos(side.row, last)) {
			sb.WriteByte(side.letters[0])
		}
		if rookCanCastle(m.board, king, chess.Pos(side.row, 0)) {
			sb.WriteByte(side.letters[1])
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
