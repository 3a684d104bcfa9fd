package engine

import (
	"fmt"

	"github.com/lgbarn/chess-duel-go/internal/chess"
)

// OutcomeKind classifies the result of a legal move.
type OutcomeKind int

const (
	// Continue means nothing was captured.
	Continue OutcomeKind = iota
	// Taken means a piece other than the king was captured.
	Taken
	// Win means the opposing king was captured.
	Win
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Taken:
		return "taken"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// TurnOutcome is what MakeMove reports after applying a legal move.
// Captured is set for Taken and Win; Winner only for Win.
type TurnOutcome struct {
	Kind     OutcomeKind
	Captured chess.Piece
	Winner   chess.Colour
}

// classify builds the outcome of a move by the mover from what, if
// anything, was standing on the destination square.
func classify(mover chess.Colour, captured chess.Piece, wasCapture bool) TurnOutcome {
	switch {
	case !wasCapture:
		return TurnOutcome{Kind: Continue}
	case captured.Kind == chess.King:
		return TurnOutcome{Kind: Win, Captured: captured, Winner: mover}
	default:
		return TurnOutcome{Kind: Taken, Captured: captured}
	}
}

// String describes the outcome for logs and messages.
func (o TurnOutcome) String() string {
	switch o.Kind {
	case Taken:
		return fmt.Sprintf("took %s", o.Captured)
	case Win:
		return fmt.Sprintf("%s wins", o.Winner)
	default:
		return o.Kind.String()
	}
}
