package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates the forward pushes and diagonal captures of a pawn.
// White advances towards higher indices (direction +1), Black towards lower.
func pawnMoves(pawn *chess.Piece, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	var moves []chess.Tile
	current := board.IndexOf(pawn.Home)
	if current < 0 {
		return moves
	}
	direction := chess.ColourOffset(pawn.Colour)

	// Single push
	forward := current + direction*8
	if isTileFree(forward, board, pieces) {
		moves = append(moves, board.At(forward))
	}

	// Double push from the starting rank; both tiles must be free
	if pawn.Home.Rank == chess.PawnStartRank(pawn.Colour) {
		double := current + direction*16
		if isTileFree(forward, board, pieces) && isTileFree(double, board, pieces) {
			moves = append(moves, board.At(double))
		}
	}

	// Captures, left then right
	for _, side := range []int{-1, 1} {
		target := forward + side
		if !isEnemyAt(target, pawn.Colour, board, pieces) {
			continue
		}
		// Reject a "diagonal" that wrapped onto the far file of another row.
		if dRow, dCol := displacement(current, target); dRow != 1 || dCol != 1 {
			continue
		}
		moves = append(moves, board.At(target))
	}

	return moves
}
