// Package query answers position questions for the command line, batch
// files and the network service alike.
package query

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/position"
)

// Query names a position and what to ask about it. Tile asks for the moves
// of the piece on that tile; Colour asks whether that side's king is in
// check. Both may be given. An empty FEN means the starting position.
type Query struct {
	FEN    string `json:"fen,omitempty"`
	Tile   string `json:"tile,omitempty"`
	Colour string `json:"colour,omitempty"`
	All    bool   `json:"all,omitempty"` // moves for every piece of Colour
}

// PieceMoves lists one piece's destinations.
type PieceMoves struct {
	Piece string   `json:"piece"`
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

// Report is the answer to a Query.
type Report struct {
	FEN      string       `json:"fen"`
	Tile     string       `json:"tile,omitempty"`
	Piece    string       `json:"piece,omitempty"`
	Moves    []string     `json:"moves,omitempty"`
	Colour   string       `json:"colour,omitempty"`
	InCheck  *bool        `json:"inCheck,omitempty"`
	Attacked []string     `json:"attackedBy,omitempty"`
	Pieces   []PieceMoves `json:"pieces,omitempty"`
}

// Run evaluates q against a fresh snapshot on board. It never panics:
// a missing king is returned as errors.ErrMissingKing.
func Run(board *chess.Board, q Query) (Report, error) {
	fen := q.FEN
	if fen == "" {
		fen = position.InitialFEN
	}
	if q.Tile == "" && q.Colour == "" {
		return Report{}, &errors.QueryError{Err: errors.ErrInvalidRequest, FEN: q.FEN}
	}

	pieces, err := position.LoadFEN(board, fen)
	if err != nil {
		return Report{}, &errors.QueryError{Err: err, FEN: q.FEN}
	}
	report := Report{FEN: position.PlacementFEN(board, pieces)}

	if q.Tile != "" {
		if err := movesForTile(&report, q.Tile, board, pieces); err != nil {
			return Report{}, &errors.QueryError{Err: err, FEN: q.FEN, Tile: q.Tile}
		}
	}

	if q.Colour != "" {
		colour, ok := chess.ParseColour(q.Colour)
		if !ok {
			return Report{}, &errors.QueryError{
				Err: errors.Wrapf(errors.ErrInvalidRequest, "colour %q", q.Colour),
				FEN: q.FEN,
			}
		}
		if err := checkFor(&report, colour, board, pieces); err != nil {
			return Report{}, &errors.QueryError{Err: err, FEN: q.FEN}
		}
		if q.All {
			report.Pieces = allMoves(colour, board, pieces)
		}
	}

	return report, nil
}

// movesForTile fills the move list of the piece standing on coord.
func movesForTile(report *Report, coord string, board *chess.Board, pieces chess.PieceSet) error {
	tile, err := chess.ParseTile(coord)
	if err != nil {
		return err
	}
	piece, ok := engine.OccupantAt(tile, pieces)
	if !ok {
		return errors.ErrNotOnBoard
	}
	report.Tile = tile.Coordinate()
	report.Piece = piece.Colour.String() + " " + piece.Type.String()
	report.Moves = coords(engine.LegalMoves(piece, board, pieces))
	return nil
}

// checkFor fills the check status of colour's king.
func checkFor(report *Report, colour chess.Colour, board *chess.Board, pieces chess.PieceSet) error {
	king, ok := engine.FindKing(colour, pieces)
	if !ok {
		return errors.Wrapf(errors.ErrMissingKing, "colour %s", colour)
	}
	inCheck := engine.IsKingInCheck(colour, board, pieces)
	report.Colour = colour.String()
	report.InCheck = &inCheck
	for _, p := range engine.Attackers(king.Home, colour.Opposite(), board, pieces) {
		report.Attacked = append(report.Attacked, p.Home.Coordinate())
	}
	return nil
}

func allMoves(colour chess.Colour, board *chess.Board, pieces chess.PieceSet) []PieceMoves {
	var out []PieceMoves
	for _, pm := range engine.MovesFor(colour, board, pieces) {
		out = append(out, PieceMoves{
			Piece: pm.Piece.Type.String(),
			From:  pm.Piece.Home.Coordinate(),
			Moves: coords(pm.Moves),
		})
	}
	return out
}

func coords(tiles []chess.Tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.Coordinate()
	}
	return out
}
