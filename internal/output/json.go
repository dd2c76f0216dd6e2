package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/query"
)

// JSONMoves is the move section of a report on its own.
type JSONMoves struct {
	FEN   string   `json:"fen"`
	Tile  string   `json:"tile"`
	Piece string   `json:"piece"`
	Moves []string `json:"moves"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []JSONReport `json:"reports"`
}

// JSONReport is a report, or the error that replaced it, in a batch.
type JSONReport struct {
	Line   int           `json:"line,omitempty"`
	Report *query.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// WriteMovesJSON writes the moves of the queried piece. An empty move list
// is written as [] rather than null.
func WriteMovesJSON(w io.Writer, report query.Report) error {
	moves := report.Moves
	if moves == nil {
		moves = []string{}
	}
	return encode(w, JSONMoves{
		FEN:   report.FEN,
		Tile:  report.Tile,
		Piece: report.Piece,
		Moves: moves,
	})
}

// WriteReportJSON writes the whole report.
func WriteReportJSON(w io.Writer, report query.Report) error {
	return encode(w, report)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
