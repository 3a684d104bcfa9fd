// Package output renders boards and game messages for a terminal.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chess-duel-go/internal/chess"
)

// EmptySquare is drawn for squares with no piece.
const EmptySquare = '.'

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// BoardWriter is the interface for drawing a board to output.
type BoardWriter interface {
	// WriteBoard draws a single position.
	WriteBoard(board *chess.Board) error
}

// TextWriter draws boards as text, rank 8 at the top and files a-h along
// the bottom.
type TextWriter struct {
	w      io.Writer
	colour bool
}

// NewTextWriter creates a text board writer. When colour is true each
// piece is wrapped in its side's ANSI style; otherwise White pieces are
// upper case and Black pieces lower case.
func NewTextWriter(w io.Writer, colour bool) *TextWriter {
	return &TextWriter{
		w:      w,
		colour: colour,
	}
}

// WriteBoard draws board.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	bw := bufio.NewWriter(tw.w)

	for row := chess.BoardSize - 1; row >= 0; row-- {
		bw.WriteByte(byte(chess.RankBase + row))
		for col := 0; col < chess.BoardSize; col++ {
			bw.WriteByte(' ')
			p, ok := board.Piece(chess.Square{Row: row, Col: col})
			if !ok {
				bw.WriteByte(EmptySquare)
				continue
			}
			tw.writePiece(bw, p)
		}
		bw.WriteByte('\n')
	}

	bw.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		bw.WriteByte(' ')
		bw.WriteByte(byte(chess.FileBase + col))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func (tw *TextWriter) writePiece(bw *bufio.Writer, p chess.Piece) {
	glyph := p.Kind.Glyph()
	if !tw.colour {
		if p.Colour == chess.Black {
			glyph += 'a' - 'A'
		}
		bw.WriteByte(glyph)
		return
	}

	bw.WriteString(csi + p.Colour.Style() + "m")
	bw.WriteByte(glyph)
	bw.WriteString(reset)
}
