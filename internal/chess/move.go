package chess

import (
	"fmt"

	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// MoveTextLen is the length of a move in piece-from-to notation, e.g. "Pe2e4".
const MoveTextLen = 5

// Move is a request to move one piece from Start to End.
type Move struct {
	// The piece being moved.
	Piece PieceKind

	// Source square.
	Start Square

	// Destination square.
	End Square
}

// NewMove creates a move request.
func NewMove(piece PieceKind, start, end Square) Move {
	return Move{Piece: piece, Start: start, End: end}
}

// ParseMove decodes piece-from-to notation: an uppercase piece letter
// followed by the start and end squares, e.g. "Ng1f3". Only the syntax is
// checked; whether the move is legal is up to the engine.
func ParseMove(text string) (Move, error) {
	if len(text) != MoveTextLen {
		return Move{}, fmt.Errorf("move has %d characters, want %d: %w", len(text), MoveTextLen, errors.ErrInvalidFormat)
	}

	piece, err := PieceKindFromGlyph(text[0])
	if err != nil {
		return Move{}, err
	}
	start, err := ParseSquare(text[1], text[2])
	if err != nil {
		return Move{}, err
	}
	end, err := ParseSquare(text[3], text[4])
	if err != nil {
		return Move{}, err
	}

	return NewMove(piece, start, end), nil
}

// String returns the move in the notation ParseMove accepts.
func (m Move) String() string {
	return string(m.Piece.Glyph()) + m.Start.String() + m.End.String()
}
