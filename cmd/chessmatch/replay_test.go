package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

var quietLog = log.New(io.Discard, "", 0)

func lines(script string) []string {
	l, _ := readScript(strings.NewReader(script))
	return l
}

func TestReplayScript(t *testing.T) {
	script := `# fool's mate
f2f3
e7-e5   # open the diagonal

g2 g4
d8h4
`
	r, err := replayScript("fools.txt", lines(script), config.NewConfig(), quietLog)
	if err != nil {
		t.Fatalf("replayScript() error: %v", err)
	}
	if r.Applied != 4 {
		t.Errorf("Applied = %d; want 4", r.Applied)
	}
	if !r.Match.IsCheckmate() {
		t.Error("expected checkmate")
	}
}

func TestReplayScript_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantLine int
		wantErr  error
		applied  int
	}{
		{"illegal move", "e2e4\ne7e5\ne1e3\n", 3, chesserrors.ErrIllegalMove, 2},
		{"bad square", "e2e4\n\nz9z8\n", 3, chesserrors.ErrInvalidSquare, 1},
		{"after mate", "f2f3\ne7e5\ng2g4\nd8h4\na2a3\n", 5, chesserrors.ErrInvalidState, 4},
		{"wrong colour", "e7e5\n", 1, chesserrors.ErrIllegalMove, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := replayScript(tt.name, lines(tt.script), config.NewConfig(), quietLog)
			var se *ScriptError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v; want *ScriptError", err)
			}
			if se.Line != tt.wantLine {
				t.Errorf("Line = %d; want %d", se.Line, tt.wantLine)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v; want %v", err, tt.wantErr)
			}
			if r == nil || r.Applied != tt.applied {
				t.Errorf("replay = %+v; want %d applied", r, tt.applied)
			}
		})
	}
}

func TestReplayScript_Promotion(t *testing.T) {
	tests := []struct {
		suffix string
		want   chess.Kind
	}{
		{"", chess.Queen},
		{"C", chess.Knight},
		{"b", chess.Bishop},
		{"T", chess.Rook},
	}
	for _, tt := range tests {
		t.Run("suffix "+tt.suffix, func(t *testing.T) {
			cfg := config.NewConfigBuilder().
				WithSetup(&config.SetupConfig{FEN: "8/P6k/8/8/8/8/8/K7 w - - 0 1"}).
				Build()
			r, err := replayScript("promo", []string{"a7a8" + tt.suffix, "h7g6"}, cfg, quietLog)
			if err != nil {
				t.Fatalf("replayScript() error: %v", err)
			}
			p, _ := r.Match.Board().PieceAt(chess.Pos(0, 0))
			if p == nil || p.Kind() != tt.want {
				t.Errorf("a8 holds %v; want %v", p, tt.want)
			}
		})
	}
}

func TestReplayScript_SetupFromPieces(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSetup(&config.SetupConfig{
		ToMove: "black",
		Pieces: []config.PieceConfig{
			{Square: "e1", Piece: "K", Colour: "white"},
			{Square: "e8", Piece: "K", Colour: "black"},
			{Square: "a7", Piece: "P", Colour: "black"},
		},
	}).Build()

	r, err := replayScript("setup", []string{"a7a5", "e1d2"}, cfg, quietLog)
	if err != nil {
		t.Fatalf("replayScript() error: %v", err)
	}
	if r.Match.TurnNumber() != 3 || r.Match.ActiveColour() != chess.Black {
		t.Errorf("turn %d, %v to move", r.Match.TurnNumber(), r.Match.ActiveColour())
	}
}

func TestReplayScript_BadSetup(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSetup(&config.SetupConfig{FEN: "8/8/8/8/8/8/8/8 w - - 0 1"}).Build()
	r, err := replayScript("empty", nil, cfg, quietLog)
	if err == nil || r != nil {
		t.Fatalf("replayScript() = %v, %v; want setup error", r, err)
	}
	if !errors.Is(err, chesserrors.ErrInvalidState) {
		t.Errorf("error = %v; want ErrInvalidState", err)
	}
}

func TestReplayAll(t *testing.T) {
	items := []worker.WorkItem{
		{Name: "a", Lines: []string{"e2e4", "e7e5"}, Index: 0},
		{Name: "b", Lines: []string{"e2e5"}, Index: 1},
		{Name: "c", Lines: []string{"g1f3"}, Index: 2},
	}
	cfg := config.NewConfigBuilder().WithWorkers(3).Build()

	var logBuf bytes.Buffer
	results := replayAll(items, cfg, log.New(&logBuf, "", 0))
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}
	for i, r := range results {
		if r.Index != i || r.Name != items[i].Name {
			t.Errorf("result %d = %s/%d; out of order", i, r.Name, r.Index)
		}
	}
	if results[0].Error != nil || results[1].Error == nil || results[2].Error != nil {
		t.Errorf("errors = %v, %v, %v; want only b to fail", results[0].Error, results[1].Error, results[2].Error)
	}
}

func TestReplayAll_StopOnError(t *testing.T) {
	var items []worker.WorkItem
	items = append(items, worker.WorkItem{Name: "bad", Lines: []string{"a1a8"}, Index: 0})
	for i := 1; i < 300; i++ {
		items = append(items, worker.WorkItem{Name: "good", Lines: []string{"e2e4"}, Index: i})
	}
	cfg := config.NewConfigBuilder().WithWorkers(1).WithStopOnError(true).Build()

	results := replayAll(items, cfg, quietLog)
	if len(results) == 0 || results[0].Error == nil {
		t.Fatal("the failing script should be reported")
	}
	if len(results) == len(items) {
		t.Errorf("all %d scripts replayed despite stop on error", len(items))
	}
}
