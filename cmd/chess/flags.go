// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-duel-go/internal/config"
)

var (
	// Display
	colourMode = flag.String("colour", "auto", "Colour pieces: auto, always or never")

	// Starting position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard layout")

	// Logging
	logLevel = flag.String("log-level", "disabled", "Log level: trace, debug, info, warn, error or disabled")
	logFile  = flag.String("log-file", "", "Append log lines to this file (default: stderr)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flag values into cfg and validates the
// result.
func applyFlags(cfg *config.Config) error {
	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Colour = mode
	cfg.StartFEN = *startFEN
	cfg.LogLevel = *logLevel
	cfg.LogFile = *logFile

	return cfg.Validate()
}
