// Package engine generates the destination tiles of chess pieces and answers
// attack and check queries.
//
// Every function takes the board and piece set as parameters and only reads
// them. Results are freshly allocated, so independent snapshots may be
// queried from several goroutines at once.
//
// Move sets are pseudo-legal: a move that leaves the mover's own king
// attacked is still reported. Castling, en passant and promotion are not
// generated.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// OccupantAt returns the piece whose home tile is tile.
func OccupantAt(tile chess.Tile, pieces chess.PieceSet) (*chess.Piece, bool) {
	for _, p := range pieces {
		if p.Home == tile {
			return p, true
		}
	}
	return nil, false
}

// InBounds returns true if index addresses a tile of a board of boardSize tiles.
func InBounds(index, boardSize int) bool {
	return index >= 0 && index < boardSize
}

// FindKing returns the king of the given colour.
func FindKing(colour chess.Colour, pieces chess.PieceSet) (*chess.Piece, bool) {
	return pieces.King(colour)
}

// isTileFree checks that index is on the board and nothing stands there.
func isTileFree(index int, board *chess.Board, pieces chess.PieceSet) bool {
	if !InBounds(index, board.Size()) {
		return false
	}
	_, occupied := OccupantAt(board.At(index), pieces)
	return !occupied
}

// isEnemyAt checks that index is on the board and holds a piece not of colour.
func isEnemyAt(index int, colour chess.Colour, board *chess.Board, pieces chess.PieceSet) bool {
	if !InBounds(index, board.Size()) {
		return false
	}
	p, occupied := OccupantAt(board.At(index), pieces)
	return occupied && p.Colour != colour
}

// isTargetable checks whether a leaper of colour may land on the tile:
// empty, or holding an opposing piece.
func isTargetable(tile chess.Tile, colour chess.Colour, pieces chess.PieceSet) bool {
	p, occupied := OccupantAt(tile, pieces)
	return !occupied || p.Colour != colour
}
