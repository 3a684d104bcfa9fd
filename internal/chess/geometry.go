package chess

// IsHorizontal reports whether start and end share a rank.
func IsHorizontal(start, end Square) bool {
	return start.Row == end.Row
}

// IsVertical reports whether start and end share a file.
func IsVertical(start, end Square) bool {
	return start.Col == end.Col
}

// IsDiagonal reports whether start and end lie on a common diagonal.
func IsDiagonal(start, end Square) bool {
	return RowDistance(start, end) == ColDistance(start, end)
}

// IsStraight reports whether start and end are joined by a horizontal,
// vertical or diagonal line.
func IsStraight(start, end Square) bool {
	return IsHorizontal(start, end) || IsVertical(start, end) || IsDiagonal(start, end)
}

// RowDistance returns the number of ranks between start and end.
func RowDistance(start, end Square) int {
	return abs(start.Row - end.Row)
}

// ColDistance returns the number of files between start and end.
func ColDistance(start, end Square) int {
	return abs(start.Col - end.Col)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
