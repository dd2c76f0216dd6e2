package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/position"
)

var benchFENs = map[string]string{
	"Initial": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
}

func benchPosition(b *testing.B, fen string) (*chess.Board, chess.PieceSet) {
	b.Helper()
	board := chess.NewBoard()
	pieces, err := position.LoadFEN(board, fen)
	if err != nil {
		b.Fatal(err)
	}
	return board, pieces
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, pieces := benchPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, p := range pieces {
					LegalMoves(p, board, pieces)
				}
			}
		})
	}
}

func BenchmarkIsKingInCheck(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, pieces := benchPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsKingInCheck(chess.White, board, pieces)
				IsKingInCheck(chess.Black, board, pieces)
			}
		})
	}
}

func BenchmarkQueenMoves(b *testing.B) {
	board := chess.NewBoard()
	queen := chess.NewPiece(chess.Queen, chess.White, board.At(27))
	pieces := chess.PieceSet{queen}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LegalMoves(queen, board, pieces)
	}
}
