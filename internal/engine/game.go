// Package engine provides move validation and game state for chess-duel.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-duel-go/internal/chess"
	"github.com/lgbarn/chess-duel-go/internal/errors"
)

// Game is a single two-player session: a board plus the side to move.
// A Game is not safe for concurrent use.
type Game struct {
	board  chess.Board
	toMove chess.Colour
}

// NewGame creates a game in the standard starting position with White
// to move.
func NewGame() *Game {
	return &Game{
		board:  *chess.NewBoard(),
		toMove: chess.White,
	}
}

// NewGameFromBoard creates a game from an arbitrary position. The board is
// copied so the caller keeps no handle on the game's state.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	return &Game{
		board:  *board.Copy(),
		toMove: toMove,
	}
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() chess.Colour {
	return g.toMove
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Winner reports the side that has captured the opposing king, if any.
// It is worked out from the pieces on the board rather than stored, so it
// can never disagree with the position.
func (g *Game) Winner() (chess.Colour, bool) {
	_, whiteKing := g.board.Find(chess.W(chess.King))
	_, blackKing := g.board.Find(chess.B(chess.King))

	switch {
	case whiteKing && !blackKing:
		return chess.White, true
	case blackKing && !whiteKing:
		return chess.Black, true
	default:
		return chess.White, false
	}
}

// MakeMove validates mv for the side to move and, if it is legal, plays it
// and hands the move to the other side. A rejected move leaves the game
// exactly as it was.
func (g *Game) MakeMove(mv chess.Move) (TurnOutcome, error) {
	if winner, over := g.Winner(); over {
		return TurnOutcome{}, fmt.Errorf("%s has already won: %w", winner, errors.ErrGameOver)
	}

	mover := g.toMove

	if mv.Start == mv.End {
		return TurnOutcome{}, fmt.Errorf("%s does not go anywhere: %w", mv, errors.ErrInvalidPath)
	}
	if g.board.HasFriendlyPiece(mv.End, mover) {
		return TurnOutcome{}, fmt.Errorf("%s is occupied by a %s piece: %w", mv.End, mover, errors.ErrInvalidPath)
	}
	if !canPieceMove(&g.board, mv.Piece, mover, mv.Start, mv.End) {
		return TurnOutcome{}, fmt.Errorf("%s cannot go from %s to %s: %w", mv.Piece, mv.Start, mv.End, errors.ErrInvalidPath)
	}

	captured, wasCapture, err := g.board.MovePiece(mv.Piece, mover, mv.Start, mv.End)
	if err != nil {
		return TurnOutcome{}, err
	}

	g.toMove = mover.Opposite()
	return classify(mover, captured, wasCapture), nil
}
