package engine

import "github.com/lgbarn/chess-duel-go/internal/chess"

// canPawnMove checks a pawn move. Pawns only ever move towards the
// opponent's side: one square straight ahead onto an empty square, two
// squares straight ahead from their starting row onto an empty square, or
// one square diagonally ahead onto an opposing piece.
//
// The double step does not look at the square it passes over, so a pawn
// on its starting row can jump a blocker.
func canPawnMove(board *chess.Board, colour chess.Colour, start, end chess.Square) bool {
	advance := (end.Row - start.Row) * colour.PawnDirection()
	colDiff := chess.ColDistance(start, end)

	switch {
	case colDiff == 0 && advance == 1:
		return !board.HasPiece(end)

	case colDiff == 0 && advance == 2:
		return start.Row == colour.PawnRow() && !board.HasPiece(end)

	case colDiff == 1 && advance == 1:
		return board.HasOpposingPiece(end, colour)
	}

	return false
}
