// Package output renders query reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/query"
)

// DefaultLineLength is the wrap column for move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMovesText writes the move and check sections of report as text.
func WriteMovesText(w io.Writer, report query.Report) {
	ow := NewOutputWriter(w, DefaultLineLength)

	if report.Tile != "" {
		ow.Write(fmt.Sprintf("%s on %s:", report.Piece, report.Tile))
		writeMoveList(ow, report.Moves)
		ow.NewLine()
	}

	for _, pm := range report.Pieces {
		ow.Write(fmt.Sprintf("%s %s:", pm.Piece, pm.From))
		writeMoveList(ow, pm.Moves)
		ow.NewLine()
	}

	if report.InCheck != nil {
		switch {
		case !*report.InCheck:
			ow.Write(report.Colour + " king is not in check")
		default:
			ow.Write(report.Colour + " king is in check from " + strings.Join(report.Attacked, ", "))
		}
		ow.NewLine()
	}
}

func writeMoveList(ow *OutputWriter, moves []string) {
	if len(moves) == 0 {
		ow.Write("(none)")
		return
	}
	for _, m := range moves {
		ow.Write(m)
	}
}

// WriteBoard draws the position with rank 8 at the top, using FEN letters
// for pieces and '.' for empty tiles.
func WriteBoard(w io.Writer, board *chess.Board, pieces chess.PieceSet) {
	var symbols [chess.NumTiles]byte
	for _, p := range pieces {
		if i := board.IndexOf(p.Home); i >= 0 && symbols[i] == 0 {
			symbols[i] = p.Symbol()
		}
	}

	for row := chess.BoardSize - 1; row >= 0; row-- {
		var sb strings.Builder
		sb.WriteByte(byte(chess.FirstRank + row))
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			if s := symbols[row*chess.BoardSize+col]; s != 0 {
				sb.WriteByte(s)
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}
