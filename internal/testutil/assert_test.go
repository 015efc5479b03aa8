package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

// Failing assertions cannot be observed without a fake *testing.T, so these
// exercise the passing paths and the message formatting.

func TestAssertions_Pass(t *testing.T) {
	AssertEqual(t, chess.Pos(4, 4), chess.Pos(4, 4))
	AssertEqual(t, []chess.Kind{chess.Rook, chess.King}, []chess.Kind{chess.Rook, chess.King}, "back rank %d", 1)
	AssertNoError(t, nil, "move")
	AssertErrorIs(t, fmt.Errorf("turn 3: %w", chesserrors.ErrIllegalMove), chesserrors.ErrIllegalMove)
	AssertContains(t, "White Queen (0,3)", "Queen")
	AssertTrue(t, chess.Queen.Promotable())
	AssertFalse(t, chess.King.Promotable())
	AssertNil(t, (*chess.Piece)(nil))
	AssertNotNil(t, chess.NewPiece(chess.Pawn, chess.Black))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"e2e4"}, "e2e4"},
		{"single value", []interface{}{chess.Knight}, "Knight"},
		{"format", []interface{}{"turn %d, %s", 7, "black"}, "turn 7, black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
