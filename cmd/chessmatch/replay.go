package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/notation"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// Replay is the result of playing one script.
type Replay struct {
	Name    string
	Applied int // Moves accepted
	Match   *engine.Match
}

// ScriptError reports the script line whose move was rejected.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// readScript splits a script into lines.
func readScript(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// replayScript plays the moves of a script on a fresh match. Blank lines and
// text after '#' are ignored. A move may carry a promotion letter; without
// one a promotion keeps the default piece. Replay stops at the first
// rejected move, which is returned as a *ScriptError along with the replay
// so far.
func replayScript(name string, lines []string, cfg *config.Config, logger *log.Logger) (*Replay, error) {
	m, err := newMatch(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r := &Replay{Name: name, Match: m}

	for i, raw := range lines {
		text := raw
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		mv, err := notation.ParseMove(text)
		if err != nil {
			return r, &ScriptError{Line: i + 1, Text: text, Err: err}
		}
		if _, err := m.ExecuteMove(mv.From, mv.To); err != nil {
			return r, &ScriptError{Line: i + 1, Text: text, Err: err}
		}
		if m.PendingPromotion() != nil {
			if err := m.ChoosePromotionCode(mv.Promotion); err != nil {
				return r, &ScriptError{Line: i + 1, Text: text, Err: err}
			}
		}
		r.Applied++
	}
	return r, nil
}

// replayAll replays every item on a worker pool and returns the results in
// submission order. With StopOnError set, scripts not yet started when a
// failure arrives are skipped.
func replayAll(items []worker.WorkItem, cfg *config.Config, logger *log.Logger) []worker.ProcessResult {
	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		r, err := replayScript(item.Name, item.Lines, cfg, logger)
		return worker.ProcessResult{Name: item.Name, Index: item.Index, Outcome: r, Error: err}
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(processFunc, worker.WithWorkers(cfg.Replay.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	var results []worker.ProcessResult
	for result := range pool.Results() {
		if result.Error != nil && cfg.Replay.StopOnError {
			pool.Stop()
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
