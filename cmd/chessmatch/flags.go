// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	configFile  = flag.String("config", "", "YAML configuration file")
	verbosity   = flag.Int("v", 0, "Verbosity: 0 quiet, 1 match events, 2 every move")
	workers     = flag.Int("j", 1, "Number of scripts replayed in parallel")
	logFile     = flag.String("l", "", "Write the match log to this file (default: stderr)")
	stopOnError = flag.Bool("stop", false, "Stop after the first script with a rejected move")
	promotion   = flag.String("promote", "", "Default promotion piece: Q, T/R, B or C/N")
	startFEN    = flag.String("fen", "", "Start every script from this FEN position")
	help        = flag.Bool("h", false, "Show this help")
	version     = flag.Bool("version", false, "Show version")
)

// loadConfig builds the configuration from the -config file, if any, and
// the flags given explicitly on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg, setFlags())
	return cfg, cfg.Validate()
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overrides cfg with the flags named in set.
func applyFlags(cfg *config.Config, set map[string]bool) {
	for name := range set {
		switch name {
		case "v":
			cfg.Verbosity = *verbosity
		case "j":
			cfg.Replay.Workers = *workers
		case "l":
			cfg.LogPath = *logFile
		case "stop":
			cfg.Replay.StopOnError = *stopOnError
		case "promote":
			cfg.Engine.DefaultPromotion = *promotion
		case "fen":
			cfg.Setup = &config.SetupConfig{FEN: *startFEN}
		}
	}
}
