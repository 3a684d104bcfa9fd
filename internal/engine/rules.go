package engine

import "github.com/lgbarn/chess-duel-go/internal/chess"

// canPieceMove checks if a piece of the given kind and colour may move
// from start to end on board. The caller has already ruled out a null
// move and a destination holding one of the mover's own pieces.
func canPieceMove(board *chess.Board, kind chess.PieceKind, colour chess.Colour, start, end chess.Square) bool {
	rowDiff := chess.RowDistance(start, end)
	colDiff := chess.ColDistance(start, end)

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return chess.IsDiagonal(start, end) && board.PathIsFree(start, end)

	case chess.Rook:
		if !chess.IsHorizontal(start, end) && !chess.IsVertical(start, end) {
			return false
		}
		return board.PathIsFree(start, end)

	case chess.Queen:
		return chess.IsStraight(start, end) && board.PathIsFree(start, end)

	case chess.King:
		return max(rowDiff, colDiff) == 1

	case chess.Pawn:
		return canPawnMove(board, colour, start, end)
	}

	return false
}
