package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Fixed offsets of the two leaping pieces.
var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// knightMoves generates the L-shaped jumps of a knight.
func knightMoves(knight *chess.Piece, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	return leap(knight, knightOffsets, board, pieces, func(dRow, dCol int) bool {
		return (dRow == 1 && dCol == 2) || (dRow == 2 && dCol == 1)
	})
}

// kingMoves generates the one-step moves of a king.
func kingMoves(king *chess.Piece, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	return leap(king, kingOffsets, board, pieces, func(dRow, dCol int) bool {
		return dRow <= 1 && dCol <= 1
	})
}

// leap tries each offset from the piece's tile. A raw offset can wrap onto
// another row near the edge, so every candidate is re-checked by its row and
// column displacement from the origin.
func leap(p *chess.Piece, offsets []int, board *chess.Board, pieces chess.PieceSet, shape func(dRow, dCol int) bool) []chess.Tile {
	var moves []chess.Tile
	current := board.IndexOf(p.Home)
	if current < 0 {
		return moves
	}

	for _, offset := range offsets {
		next := current + offset
		if !InBounds(next, board.Size()) || !shape(displacement(current, next)) {
			continue
		}
		target := board.At(next)
		if isTargetable(target, p.Colour, pieces) {
			moves = append(moves, target)
		}
	}

	return moves
}
