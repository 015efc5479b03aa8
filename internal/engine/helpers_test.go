package engine

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/notation"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

// play executes moves given as "e2e4" and checks the invariants after each.
func play(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.ExecuteMove(testutil.Sq(t, mv[:2]), testutil.Sq(t, mv[2:4])); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
		if err := m.Verify(); err != nil {
			t.Fatalf("after %s: %v", mv, err)
		}
	}
}

// mustFEN builds a match from a FEN string.
func mustFEN(t *testing.T, fen string, opts ...Option) *Match {
	t.Helper()
	m, err := NewMatchFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewMatchFromFEN(%q): %v", fen, err)
	}
	return m
}

// names converts a reachability matrix to sorted square names.
func names(m chess.Matrix) []string {
	var out []string
	for _, p := range m.Positions() {
		out = append(out, notation.FormatSquare(p))
	}
	sort.Strings(out)
	return out
}

// matchState is everything observable about a match, in comparable form.
type matchState struct {
	FEN       string
	Turn      int
	InPlay    []string
	Captured  []string
	Check     bool
	Checkmate bool
	EnPassant string
}

func describe(pieces []*chess.Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		pos, on := p.Position()
		out[i] = fmt.Sprintf("%v %v %v on=%v moves=%d", p.Colour(), p.Kind(), pos, on, p.MoveCount())
	}
	return out
}

func stateOf(m *Match) matchState {
	s := matchState{
		FEN:       m.FEN(),
		Turn:      m.TurnNumber(),
		InPlay:    describe(m.PiecesInPlay()),
		Captured:  describe(m.CapturedPieces()),
		Check:     m.IsCheck(),
		Checkmate: m.IsCheckmate(),
	}
	if ep := m.EnPassantVulnerable(); ep != nil {
		s.EnPassant = ep.String()
	}
	return s
}
