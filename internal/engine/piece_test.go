package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		knight     string
		want       []string
	}{
		// b1 plus six is h1, which must not count as a jump.
		{"b1 on empty board", []string{"Nb1"}, "b1", []string{"d2", "a3", "c3"}},
		{"a-file never reaches g or h", []string{"Na4"}, "a4", []string{"b2", "c3", "c5", "b6"}},
		{"h-file never reaches a or b", []string{"nh5"}, "h5", []string{"g3", "f4", "f6", "g7"}},
		{"centre", []string{"Nd4"}, "d4", []string{"c2", "e2", "b3", "f3", "b5", "f5", "c6", "e6"}},
		{"own piece excluded, enemy included", []string{"Ng1", "Pe2", "pf3"}, "g1", []string{"f3", "h3"}},
		{"corner h8", []string{"nh8"}, "h8", []string{"g6", "f7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, pieces := testutil.Place(t, tt.placements...)
			knight := testutil.PieceOn(t, pieces, tt.knight)
			testutil.AssertTiles(t, LegalMoves(knight, board, pieces), tt.want)
		})
	}
}

func TestKingMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		king       string
		want       []string
	}{
		// a1 plus seven is h1.
		{"corner a1", []string{"Ka1"}, "a1", []string{"b1", "a2", "b2"}},
		{"h-file does not wrap", []string{"kh4"}, "h4", []string{"g3", "h3", "g4", "g5", "h5"}},
		{"own piece excluded, enemy included", []string{"Ke4", "Pe5", "pd4"}, "e4", []string{"d3", "e3", "f3", "d4", "f4", "d5", "f5"}},
		{"corner h8", []string{"kh8"}, "h8", []string{"g7", "h7", "g8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, pieces := testutil.Place(t, tt.placements...)
			king := testutil.PieceOn(t, pieces, tt.king)
			testutil.AssertTiles(t, LegalMoves(king, board, pieces), tt.want)
		})
	}
}

// TestLeaperShapesOnEveryTile places a lone knight and a lone king on each
// tile and checks every destination against the piece's shape.
func TestLeaperShapesOnEveryTile(t *testing.T) {
	board := chess.NewBoard()
	for i := 0; i < board.Size(); i++ {
		origin := board.At(i)

		knight := chess.PieceSet{chess.NewPiece(chess.Knight, chess.White, origin)}
		for _, m := range LegalMoves(knight[0], board, knight) {
			dRow, dCol := abs(m.Row()-origin.Row()), abs(m.Column()-origin.Column())
			if !(dRow == 1 && dCol == 2) && !(dRow == 2 && dCol == 1) {
				t.Errorf("knight %s -> %s is not an L", origin, m)
			}
		}

		king := chess.PieceSet{chess.NewPiece(chess.King, chess.Black, origin)}
		moves := LegalMoves(king[0], board, king)
		for _, m := range moves {
			if abs(m.Row()-origin.Row()) > 1 || abs(m.Column()-origin.Column()) > 1 || m == origin {
				t.Errorf("king %s -> %s is not a neighbour", origin, m)
			}
		}
		want := 8
		edgeRow := origin.Row() == 0 || origin.Row() == 7
		edgeCol := origin.Column() == 0 || origin.Column() == 7
		switch {
		case edgeRow && edgeCol:
			want = 3
		case edgeRow || edgeCol:
			want = 5
		}
		if len(moves) != want {
			t.Errorf("king on %s has %d moves; want %d", origin, len(moves), want)
		}
	}
}
