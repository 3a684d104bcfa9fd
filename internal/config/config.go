// Package config provides configuration for chess-duel.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// ColourMode controls whether pieces are drawn with ANSI styling.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when the output is a terminal
	ColourAlways                   // Always colour
	ColourNever                    // Never colour
)

var colourModeNames = map[string]ColourMode{
	"auto":   ColourAuto,
	"always": ColourAlways,
	"never":  ColourNever,
}

// String returns the flag spelling of a colour mode.
func (m ColourMode) String() string {
	for name, mode := range colourModeNames {
		if mode == m {
			return name
		}
	}
	return "unknown"
}

// ParseColourMode converts "auto", "always" or "never" to a ColourMode.
func ParseColourMode(s string) (ColourMode, error) {
	if m, ok := colourModeNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return ColourAuto, errors.Wrapf(errors.ErrInvalidConfig, "colour mode %q", s)
}

// Config holds all program configuration.
type Config struct {
	// Display
	Colour ColourMode

	// Starting position as FEN; empty means the standard layout.
	StartFEN string

	// Logging
	LogLevel string // zerolog level name; "disabled" turns logging off
	LogFile  string // empty means LogOutput

	// Streams
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Colour:    ColourAuto,
		LogLevel:  "disabled",
		Input:     os.Stdin,
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	}
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return level, nil
}

// Validate checks that the configuration can be used to start a session.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Colour < ColourAuto || c.Colour > ColourNever {
		return errors.Wrapf(errors.ErrInvalidConfig, "colour mode %d", c.Colour)
	}
	if c.Input == nil || c.Output == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "input and output streams are required")
	}
	return nil
}

// UseColour decides whether to style pieces given whether the output is a
// terminal.
func (c *Config) UseColour(isTerminal bool) bool {
	switch c.Colour {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return isTerminal
	}
}
