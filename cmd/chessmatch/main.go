// chessmatch replays move scripts through the chess rules engine and
// reports the final position of each, or the first move it rejects.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run replays the scripts named on the command line and returns the exit
// status: 0 when every script replayed, 1 otherwise.
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	items, err := readInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.New(cfg.LogFile, "", log.LstdFlags)
	failed := 0
	for _, result := range replayAll(items, cfg, logger) {
		renderResult(cfg.OutputFile, result)
		if result.Error != nil {
			failed++
		}
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(os.Stderr, "%d script(s) replayed, %d with errors.\n", len(items), failed)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// setupLogFile opens the configured log file and returns the function that
// closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if cfg.LogPath == "" {
		return func() {}, nil
	}
	file, err := os.Create(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", cfg.LogPath, err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// readInputs reads each named script, or stdin when there are none.
func readInputs(args []string) ([]worker.WorkItem, error) {
	if len(args) == 0 {
		lines, err := readScript(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []worker.WorkItem{{Name: "stdin", Lines: lines}}, nil
	}

	items := make([]worker.WorkItem, 0, len(args))
	for i, name := range args {
		lines, err := readScriptFile(name)
		if err != nil {
			return nil, err
		}
		items = append(items, worker.WorkItem{Name: name, Lines: lines, Index: i})
	}
	return items, nil
}

func readScriptFile(name string) ([]string, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines, err := readScript(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}

func usage() {
	out := flag.CommandLine.Output()
	writeUsage(out)
	flag.PrintDefaults()
}

func writeUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chessmatch [options] [script-files...]\n\n")
	fmt.Fprintf(w, "Replays chess move scripts and reports the final positions.\n\n")
	fmt.Fprintf(w, "Scripts hold one move per line as origin and destination squares\n")
	fmt.Fprintf(w, "(e2e4, e2-e4 or e2 e4), optionally followed by a promotion letter\n")
	fmt.Fprintf(w, "(e7e8C). Text after '#' is ignored.\n\n")
	fmt.Fprintf(w, "Options:\n")
}
