package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-duel-go/internal/chess"
	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// fenTail fills the castling, en passant and clock fields, none of which
// this game models.
const fenTail = " - - 0 1"

// NewGameFromFEN creates a game from a FEN string. Only the piece
// placement and side-to-move fields are used; the remaining fields are
// accepted and ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	return NewGameFromBoard(board, toMove), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0

		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind, err := chess.PieceKindFromGlyph(byte(unicode.ToUpper(c)))
				if err != nil || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				sq, err := chess.NewSquare(row, col)
				if err != nil {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Place(sq, chess.NewPiece(kind, colour))
				col++
			}
			if col > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}
		}

		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field, defaulting to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// Placement returns the piece placement field of FEN for board.
func Placement(board *chess.Board) string {
	var sb strings.Builder

	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := board.Piece(chess.Square{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	side := "w"
	if g.toMove == chess.Black {
		side = "b"
	}
	return Placement(&g.board) + " " + side + fenTail
}

// pieceLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func pieceLetter(p chess.Piece) byte {
	letter := p.Kind.Glyph()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
