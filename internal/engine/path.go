package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Ray directions as flat index steps on the 8-wide board.
var (
	rookDirections   = []int{-8, 8, -1, 1}
	bishopDirections = []int{9, 7, -7, -9}
)

// maxRayLength is the longest possible ray on an 8x8 board.
const maxRayLength = 7

// rookMoves walks the four orthogonal rays from the origin.
func rookMoves(origin chess.Tile, colour chess.Colour, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	return slide(origin, colour, rookDirections, board, pieces, onOrthogonal)
}

// bishopMoves walks the four diagonal rays from the origin.
func bishopMoves(origin chess.Tile, colour chess.Colour, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	return slide(origin, colour, bishopDirections, board, pieces, onDiagonal)
}

// queenMoves is the rook rays followed by the bishop rays from the same origin.
// The two sets are disjoint, so no deduplication is needed.
func queenMoves(origin chess.Tile, colour chess.Colour, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	moves := rookMoves(origin, colour, board, pieces)
	return append(moves, bishopMoves(origin, colour, board, pieces)...)
}

// stepCheck reports whether next is still on the ray that left origin in direction.
type stepCheck func(origin, next, direction int) bool

// onOrthogonal keeps horizontal rays on the origin's row. Vertical steps
// cannot wrap, so the bounds check is enough for them.
func onOrthogonal(origin, next, direction int) bool {
	if direction == -1 || direction == 1 {
		return next/8 == origin/8
	}
	return true
}

// onDiagonal requires equal row and column distance from the origin.
func onDiagonal(origin, next, _ int) bool {
	dRow, dCol := displacement(origin, next)
	return dRow == dCol
}

// slide extends each ray until it leaves the board, leaves its line, or
// meets a piece. An opposing blocker is included, an own blocker is not.
func slide(origin chess.Tile, colour chess.Colour, directions []int, board *chess.Board, pieces chess.PieceSet, valid stepCheck) []chess.Tile {
	var moves []chess.Tile
	current := board.IndexOf(origin)
	if current < 0 {
		return moves
	}

	for _, direction := range directions {
		for i := 1; i <= maxRayLength; i++ {
			next := current + direction*i
			if !InBounds(next, board.Size()) || !valid(current, next, direction) {
				break
			}

			target := board.At(next)
			occupant, occupied := OccupantAt(target, pieces)
			if !occupied {
				moves = append(moves, target)
				continue
			}
			if occupant.Colour != colour {
				moves = append(moves, target)
			}
			break // Blocked
		}
	}

	return moves
}
