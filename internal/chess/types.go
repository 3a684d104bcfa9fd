// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// The zero value is White.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ANSI foreground SGR codes used to style each side's pieces.
const (
	WhiteStyle = "97" // bright white
	BlackStyle = "91" // bright red
)

// Style returns the ANSI foreground code pieces of this colour are drawn in.
func (c Colour) Style() string {
	if c == Black {
		return BlackStyle
	}
	return WhiteStyle
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRow returns the row pawns of this colour start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// BackRow returns the row the royals of this colour start on.
func (c Colour) BackRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceKinds
)

// Glyphs for each piece kind, indexed by PieceKind.
var kindGlyphs = [NumPieceKinds]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

var kindNames = [NumPieceKinds]string{
	Pawn:   "Pawn",
	Rook:   "Rook",
	Knight: "Knight",
	Bishop: "Bishop",
	Queen:  "Queen",
	King:   "King",
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k < NumPieceKinds
}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "Unknown"
}

// Glyph returns the single uppercase letter for a piece kind.
func (k PieceKind) Glyph() byte {
	if k.Valid() {
		return kindGlyphs[k]
	}
	return '?'
}

// PieceKindFromGlyph converts an uppercase piece letter to its kind.
// Anything other than P, R, N, B, Q or K is rejected.
func PieceKindFromGlyph(c byte) (PieceKind, error) {
	for k, g := range kindGlyphs {
		if g == c {
			return PieceKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown piece letter %q: %w", c, errors.ErrInvalidFormat)
}

// Piece is a piece kind owned by one side.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NewPiece creates a piece of the given kind and colour.
func NewPiece(kind PieceKind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(kind, Black)
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	FileBase  = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
)

// Square is a board coordinate. Row 0 is rank 1, Col 0 is file a.
// Only NewSquare and ParseSquare check the range; a Square literal with an
// out-of-range coordinate is not Valid and Board methods panic on it.
type Square struct {
	Row int
	Col int
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// NewSquare builds a square from 0-based row and column indices.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square (%d, %d) off the board: %w", row, col, errors.ErrInvalidFormat)
	}
	return sq, nil
}

// ParseSquare converts a file letter ('a'-'h') and rank digit ('1'-'8')
// to a square.
func ParseSquare(file, rank byte) (Square, error) {
	if file < FirstFile || file > LastFile {
		return Square{}, fmt.Errorf("file %q out of range: %w", file, errors.ErrInvalidFormat)
	}
	if rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("rank %q out of range: %w", rank, errors.ErrInvalidFormat)
	}
	return Square{Row: int(rank - RankBase), Col: int(file - FileBase)}, nil
}

// MustParseSquare is like ParseSquare for algebraic text such as "e4", but
// panics on bad input. It is meant for constants and tests.
func MustParseSquare(s string) Square {
	if len(s) != 2 {
		panic(fmt.Sprintf("chess: bad square %q", s))
	}
	sq, err := ParseSquare(s[0], s[1])
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file letter of the square.
func (s Square) File() byte {
	return byte(s.Col) + FileBase
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	return byte(s.Row) + RankBase
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{s.File(), s.Rank()})
}
