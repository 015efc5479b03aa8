package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// renderBoard writes the board with rank 8 at the top. White pieces are
// upper case, black lower case.
func renderBoard(w io.Writer, snapshot [][]chess.Kind) {
	for r, row := range snapshot {
		cells := make([]string, len(row))
		for c, ck := range row {
			cells[c] = string(squareLetter(ck))
		}
		fmt.Fprintf(w, "%d %s\n", len(snapshot)-r, strings.Join(cells, " "))
	}
	files := make([]string, len(snapshot[0]))
	for c := range files {
		files[c] = string(rune(chess.ColBase + c))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(files, " "))
}

func squareLetter(ck chess.Kind) byte {
	if ck == chess.Empty {
		return '.'
	}
	letter := chess.ExtractKind(ck).Letter()
	if chess.ExtractColour(ck) == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// renderStatus writes whose turn it is and any check or checkmate.
func renderStatus(w io.Writer, m *engine.Match) {
	switch {
	case m.IsCheckmate():
		fmt.Fprintf(w, "turn %d: checkmate, %v wins\n", m.TurnNumber(), m.ActiveColour())
	case m.IsCheck():
		fmt.Fprintf(w, "turn %d: %v to move, in check\n", m.TurnNumber(), m.ActiveColour())
	default:
		fmt.Fprintf(w, "turn %d: %v to move\n", m.TurnNumber(), m.ActiveColour())
	}
}

// renderCaptured writes the captured pieces in capture order.
func renderCaptured(w io.Writer, m *engine.Match) {
	captured := m.CapturedPieces()
	if len(captured) == 0 {
		fmt.Fprintln(w, "captured: none")
		return
	}
	names := make([]string, len(captured))
	for i, p := range captured {
		names[i] = fmt.Sprintf("%v %v", p.Colour(), p.Kind())
	}
	fmt.Fprintf(w, "captured: %s\n", strings.Join(names, ", "))
}

// renderResult writes the report for one script.
func renderResult(w io.Writer, result worker.ProcessResult) {
	fmt.Fprintf(w, "== %s ==\n", result.Name)
	r, ok := result.Outcome.(*Replay)
	if !ok || r == nil {
		fmt.Fprintf(w, "error: %v\n\n", result.Error)
		return
	}

	renderBoard(w, r.Match.BoardSnapshot())
	renderStatus(w, r.Match)
	renderCaptured(w, r.Match)
	fmt.Fprintf(w, "moves: %d\n", r.Applied)
	fmt.Fprintf(w, "fen: %s\n", r.Match.FEN())
	if result.Error != nil {
		fmt.Fprintf(w, "rejected: %v\n", result.Error)
	}
	fmt.Fprintln(w)
}
