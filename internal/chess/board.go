package chess

import (
	"fmt"

	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// Slot is a single board cell, which may or may not hold a piece.
type Slot struct {
	Piece    Piece
	Occupied bool
}

// Board is the placement ledger for an 8x8 game.
// It knows which squares hold which pieces and which lines are clear,
// but nothing about whose turn it is or how each piece may move.
type Board struct {
	// Squares[row][col]; row 0 is White's back rank.
	Squares [BoardSize][BoardSize]Slot
}

// backRank is the left-to-right royal layout shared by both sides.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewEmptyBoard creates a board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Slot{}

	for _, colour := range []Colour{White, Black} {
		for col := 0; col < BoardSize; col++ {
			b.Squares[colour.BackRow()][col] = Slot{Piece: NewPiece(backRank[col], colour), Occupied: true}
			b.Squares[colour.PawnRow()][col] = Slot{Piece: NewPiece(Pawn, colour), Occupied: true}
		}
	}
}

// Piece returns the piece on sq and whether there is one.
func (b *Board) Piece(sq Square) (Piece, bool) {
	slot := b.Squares[sq.Row][sq.Col]
	return slot.Piece, slot.Occupied
}

// HasPiece reports whether sq is occupied.
func (b *Board) HasPiece(sq Square) bool {
	return b.Squares[sq.Row][sq.Col].Occupied
}

// HasOpposingPiece reports whether sq holds a piece belonging to the
// opponent of colour.
func (b *Board) HasOpposingPiece(sq Square, colour Colour) bool {
	p, ok := b.Piece(sq)
	return ok && p.Colour != colour
}

// HasFriendlyPiece reports whether sq holds a piece of colour.
func (b *Board) HasFriendlyPiece(sq Square, colour Colour) bool {
	p, ok := b.Piece(sq)
	return ok && p.Colour == colour
}

// Place puts p on sq, replacing anything already there.
func (b *Board) Place(sq Square, p Piece) {
	b.Squares[sq.Row][sq.Col] = Slot{Piece: p, Occupied: true}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Squares[sq.Row][sq.Col] = Slot{}
}

// MovePiece moves the piece on start to end after checking that start
// holds a piece of the given kind and colour. It returns the piece that
// was on end, if any. The path and destination are not checked: that is
// the rules engine's job. The board is untouched when an error is returned.
func (b *Board) MovePiece(kind PieceKind, colour Colour, start, end Square) (Piece, bool, error) {
	p, ok := b.Piece(start)
	if !ok {
		return Piece{}, false, fmt.Errorf("%s: %w", start, errors.ErrPieceNotFound)
	}
	if p.Kind != kind {
		return Piece{}, false, fmt.Errorf("%s holds a %s, not a %s: %w", start, p.Kind, kind, errors.ErrWrongPieceKind)
	}
	if p.Colour != colour {
		return Piece{}, false, fmt.Errorf("%s holds a %s piece: %w", start, p.Colour, errors.ErrWrongPieceColor)
	}

	captured, wasOccupied := b.Piece(end)
	b.Clear(start)
	b.Place(end, p)
	return captured, wasOccupied, nil
}

// PathIsFree reports whether every square strictly between start and end
// is empty. Only horizontal, vertical and diagonal lines have a path; any
// other pair of squares reports false.
func (b *Board) PathIsFree(start, end Square) bool {
	if !IsStraight(start, end) {
		return false
	}

	rowDir := sign(end.Row - start.Row)
	colDir := sign(end.Col - start.Col)

	row := start.Row + rowDir
	col := start.Col + colDir

	for row != end.Row || col != end.Col {
		if b.Squares[row][col].Occupied {
			return false
		}
		row += rowDir
		col += colDir
	}

	return true
}

// Count returns how many pieces of colour are on the board.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := range b.Squares {
		for _, slot := range b.Squares[row] {
			if slot.Occupied && slot.Piece.Colour == colour {
				n++
			}
		}
	}
	return n
}

// Find returns the first square, scanning from a1 along each rank,
// holding p.
func (b *Board) Find(p Piece) (Square, bool) {
	for row := range b.Squares {
		for col, slot := range b.Squares[row] {
			if slot.Occupied && slot.Piece == p {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
