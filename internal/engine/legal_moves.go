package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the tiles piece may move to, in the order its
// directions or offsets are scanned. A piece whose home tile is not part of
// board has no moves. The result ignores whether the move would leave the
// mover's own king attacked.
func LegalMoves(piece *chess.Piece, board *chess.Board, pieces chess.PieceSet) []chess.Tile {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(piece, board, pieces)
	case chess.Knight:
		return knightMoves(piece, board, pieces)
	case chess.Bishop:
		return bishopMoves(piece.Home, piece.Colour, board, pieces)
	case chess.Rook:
		return rookMoves(piece.Home, piece.Colour, board, pieces)
	case chess.Queen:
		return queenMoves(piece.Home, piece.Colour, board, pieces)
	case chess.King:
		return kingMoves(piece, board, pieces)
	}
	return nil
}

// PieceMoves pairs a piece with its generated destinations.
type PieceMoves struct {
	Piece *chess.Piece
	Moves []chess.Tile
}

// MovesFor generates the move set of every piece of colour, in piece-set order.
// Pieces without moves are included with an empty Moves slice.
func MovesFor(colour chess.Colour, board *chess.Board, pieces chess.PieceSet) []PieceMoves {
	var out []PieceMoves
	for _, p := range pieces {
		if p.Colour != colour {
			continue
		}
		out = append(out, PieceMoves{Piece: p, Moves: LegalMoves(p, board, pieces)})
	}
	return out
}

// CanMoveTo reports whether target is among piece's generated destinations.
func CanMoveTo(piece *chess.Piece, target chess.Tile, board *chess.Board, pieces chess.PieceSet) bool {
	return containsTile(LegalMoves(piece, board, pieces), target)
}

// containsTile is a linear membership test over a move set.
func containsTile(tiles []chess.Tile, t chess.Tile) bool {
	for _, x := range tiles {
		if x == t {
			return true
		}
	}
	return false
}
