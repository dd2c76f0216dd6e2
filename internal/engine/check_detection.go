package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsKingInCheck returns true if any non-king piece of the other colour can
// move onto colour's king tile.
//
// Enemy kings are never counted as attackers. Every position must hold a
// king of colour; when it does not, IsKingInCheck panics with an error
// wrapping errors.ErrMissingKing. Callers handling untrusted positions should
// check FindKing first.
func IsKingInCheck(colour chess.Colour, board *chess.Board, pieces chess.PieceSet) bool {
	king, ok := FindKing(colour, pieces)
	if !ok {
		panic(errors.Wrapf(errors.ErrMissingKing, "colour %s", colour))
	}
	return IsTileAttacked(king.Home, colour.Opposite(), board, pieces)
}

// IsTileAttacked returns true if a piece of byColour, other than its king,
// has tile among its generated moves.
func IsTileAttacked(tile chess.Tile, byColour chess.Colour, board *chess.Board, pieces chess.PieceSet) bool {
	for _, p := range pieces {
		if p.Colour != byColour || p.Type == chess.King {
			continue
		}
		if containsTile(LegalMoves(p, board, pieces), tile) {
			return true
		}
	}
	return false
}

// Attackers returns every non-king piece of byColour whose moves include tile.
func Attackers(tile chess.Tile, byColour chess.Colour, board *chess.Board, pieces chess.PieceSet) chess.PieceSet {
	var out chess.PieceSet
	for _, p := range pieces {
		if p.Colour != byColour || p.Type == chess.King {
			continue
		}
		if containsTile(LegalMoves(p, board, pieces), tile) {
			out = append(out, p)
		}
	}
	return out
}
