package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestRookMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		rook       string
		want       []string
	}{
		{
			"corner on empty board",
			[]string{"Ra1"}, "a1",
			[]string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1", "e1", "f1", "g1", "h1"},
		},
		{
			// h1 plus one is a2: the right-hand ray must stop at the edge.
			"right edge does not wrap",
			[]string{"Rh1"}, "h1",
			[]string{"h2", "h3", "h4", "h5", "h6", "h7", "h8", "g1", "f1", "e1", "d1", "c1", "b1", "a1"},
		},
		{
			"blockers of both colours",
			[]string{"Rd4", "Pd6", "pf4", "nd1"}, "d4",
			[]string{"d3", "d2", "d1", "d5", "c4", "b4", "a4", "e4", "f4"},
		},
		{
			"boxed in by own pieces",
			[]string{"ra8", "pa7", "nb8"}, "a8",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, pieces := testutil.Place(t, tt.placements...)
			rook := testutil.PieceOn(t, pieces, tt.rook)
			testutil.AssertTiles(t, LegalMoves(rook, board, pieces), tt.want)
		})
	}
}

func TestBishopMoves(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		bishop     string
		want       []string
	}{
		{
			"c1 on empty board",
			[]string{"Bc1"}, "c1",
			[]string{"d2", "e3", "f4", "g5", "h6", "b2", "a3"},
		},
		{
			// h4 plus nine is a6 and h4 minus seven is a4.
			"h-file does not wrap",
			[]string{"bh4"}, "h4",
			[]string{"g5", "f6", "e7", "d8", "g3", "f2", "e1"},
		},
		{
			"blockers of both colours",
			[]string{"Be4", "Pf5", "pc6", "pb1"}, "e4",
			[]string{"d5", "c6", "f3", "g2", "h1", "d3", "c2", "b1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, pieces := testutil.Place(t, tt.placements...)
			bishop := testutil.PieceOn(t, pieces, tt.bishop)
			testutil.AssertTiles(t, LegalMoves(bishop, board, pieces), tt.want)
		})
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	fens := []string{
		"4k3/8/8/8/3Q4/8/8/4K3",
		"4k3/8/2p5/8/p2Q1P2/8/1P6/4K3",
		"q6k/8/8/8/8/8/8/K7",
		"7q/8/8/8/8/8/k7/q5KQ",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, pieces := testutil.MustLoadFEN(t, fen)
			for _, p := range pieces {
				if p.Type != chess.Queen {
					continue
				}
				want := append(rookMoves(p.Home, p.Colour, board, pieces), bishopMoves(p.Home, p.Colour, board, pieces)...)
				testutil.AssertEqual(t, testutil.Coords(LegalMoves(p, board, pieces)), testutil.Coords(want), "queen on %s", p.Home)
			}
		})
	}
}

func TestQueenOnEmptyBoard(t *testing.T) {
	board, pieces := testutil.Place(t, "Qd4")
	moves := LegalMoves(pieces[0], board, pieces)
	testutil.AssertEqual(t, len(moves), 27)
}

// TestSlidingStopsAtFirstBlocker walks every ray of every sliding piece and
// checks nothing is reported past the first occupied tile, and that the
// blocker itself is reported only when it is an enemy.
func TestSlidingStopsAtFirstBlocker(t *testing.T) {
	fens := []string{
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		board, pieces := testutil.MustLoadFEN(t, fen)
		for _, p := range pieces {
			var directions []int
			switch p.Type {
			case chess.Rook:
				directions = rookDirections
			case chess.Bishop:
				directions = bishopDirections
			case chess.Queen:
				directions = append(append([]int{}, rookDirections...), bishopDirections...)
			default:
				continue
			}

			moves := make(map[chess.Tile]bool)
			for _, m := range LegalMoves(p, board, pieces) {
				moves[m] = true
			}

			for _, d := range directions {
				blocked := false
				for _, tile := range rayTiles(board, p.Home.Index, d) {
					occupant, occupied := OccupantAt(tile, pieces)
					switch {
					case blocked:
						if moves[tile] {
							t.Errorf("%s: %s reaches %s past a blocker", fen, p, tile)
						}
					case occupied:
						blocked = true
						if enemy := occupant.Colour != p.Colour; moves[tile] != enemy {
							t.Errorf("%s: %s blocker %s included = %v; want %v", fen, p, tile, moves[tile], enemy)
						}
					default:
						if !moves[tile] {
							t.Errorf("%s: %s misses open tile %s", fen, p, tile)
						}
					}
				}
			}
		}
	}
}

// rayTiles lists the tiles from origin in direction, computed from file and
// rank rather than index arithmetic.
func rayTiles(board *chess.Board, origin, direction int) []chess.Tile {
	steps := map[int][2]int{
		-8: {0, -1}, 8: {0, 1}, -1: {-1, 0}, 1: {1, 0},
		9: {1, 1}, 7: {-1, 1}, -7: {1, -1}, -9: {-1, -1},
	}
	step := steps[direction]
	row, col := origin/8, origin%8
	var out []chess.Tile
	for {
		col += step[0]
		row += step[1]
		if col < 0 || col > 7 || row < 0 || row > 7 {
			return out
		}
		out = append(out, board.At(row*8+col))
	}
}
