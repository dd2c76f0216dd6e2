package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/position"
)

// Place builds a fresh board and a piece set from short placements such as
// "Ke1" (White king on e1) or "re8" (Black rook on e8): the letter's case
// selects the colour, as in FEN. Pieces keep the order they are given in.
func Place(t *testing.T, placements ...string) (*chess.Board, chess.PieceSet) {
	t.Helper()
	board := chess.NewBoard()
	pieces := make(chess.PieceSet, 0, len(placements))
	for _, placement := range placements {
		if len(placement) != 3 {
			t.Fatalf("bad placement %q", placement)
		}
		pieceType, ok := chess.ParsePieceType(placement[0])
		if !ok {
			t.Fatalf("bad piece letter in %q", placement)
		}
		colour := chess.White
		if placement[0] >= 'a' && placement[0] <= 'z' {
			colour = chess.Black
		}
		tile, err := chess.ParseTile(placement[1:])
		if err != nil {
			t.Fatalf("bad tile in %q: %v", placement, err)
		}
		pieces = append(pieces, chess.NewPiece(pieceType, colour, tile))
	}
	return board, pieces
}

// MustLoadFEN decodes fen onto a fresh board, failing the test on error.
func MustLoadFEN(t *testing.T, fen string) (*chess.Board, chess.PieceSet) {
	t.Helper()
	board := chess.NewBoard()
	pieces, err := position.LoadFEN(board, fen)
	if err != nil {
		t.Fatalf("LoadFEN(%q): %v", fen, err)
	}
	return board, pieces
}

// PieceOn returns the piece standing on coord, failing the test if none.
func PieceOn(t *testing.T, pieces chess.PieceSet, coord string) *chess.Piece {
	t.Helper()
	tile := chess.MustParseTile(coord)
	for _, p := range pieces {
		if p.Home == tile {
			return p
		}
	}
	t.Fatalf("no piece on %s", coord)
	return nil
}
