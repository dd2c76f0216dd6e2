package engine

import "golang.org/x/exp/constraints"

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// rowCol splits a flat board index into its row and column.
func rowCol(index int) (row, col int) {
	return index / 8, index % 8
}

// displacement returns the absolute row and column distance between two indices.
func displacement(from, to int) (dRow, dCol int) {
	fromRow, fromCol := rowCol(from)
	toRow, toCol := rowCol(to)
	return abs(toRow - fromRow), abs(toCol - fromCol)
}
