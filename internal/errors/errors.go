// Package errors provides sentinel errors and error types for chess-duel.
// It defines the move rejection taxonomy and a structured error type that
// preserves context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFormat indicates move text that could not be decoded.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPath indicates a move the piece cannot make from its square.
	ErrInvalidPath = errors.New("piece cannot move along specified path")

	// ErrPieceNotFound indicates an empty start square.
	ErrPieceNotFound = errors.New("no piece at specified square")

	// ErrWrongPieceColor indicates a start square holding the other side's piece.
	ErrWrongPieceColor = errors.New("piece at specified square has wrong color")

	// ErrWrongPieceKind indicates a start square holding a different kind of piece.
	ErrWrongPieceKind = errors.New("piece at specified square is wrong kind")

	// ErrGameOver indicates a move attempted after a king was captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the context it happened in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was attempted at (0 if unknown)
	Player   string // Side that attempted the move (if known)
	MoveText string // The move text as typed (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
