// Package position converts between FEN text and the board/piece-set
// snapshot the engine works on.
package position

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	notation "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a full FEN.
const fenFields = 6

// The notation decoder parses ranks through a package-level buffer, so
// decodes must not overlap.
var decodeMu sync.Mutex

// LoadFEN decodes fen into pieces standing on board's tiles. Either a full
// six-field FEN or just its piece-placement field is accepted; only the
// placement is used. Pieces are returned in board index order.
//
// Errors wrap errors.ErrInvalidFEN and leave quoting fen to the caller.
func LoadFEN(board *chess.Board, fen string) (chess.PieceSet, error) {
	fields := strings.Fields(fen)
	switch {
	case len(fields) == 0:
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty")
	case len(fields) != 1 && len(fields) != fenFields:
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%d fields", len(fields))
	case len(fields) == fenFields && fields[1] != "w" && fields[1] != "b":
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", fields[1])
	}

	placement := fields[0]
	for i := 0; i < len(placement); i++ {
		if placement[i] >= utf8.RuneSelf {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "non-ASCII byte at offset %d", i)
		}
	}

	decoded, err := decodePlacement(placement)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}

	var pieces chess.PieceSet
	for sq, p := range decoded.SquareMap() {
		pieceType, ok := convertType(p.Type())
		if !ok {
			continue
		}
		colour := chess.Black
		if p.Color() == notation.White {
			colour = chess.White
		}
		tile, ok := board.Lookup(int(sq))
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "square %s off the board", sq)
		}
		pieces = append(pieces, chess.NewPiece(pieceType, colour, tile))
	}

	sort.Slice(pieces, func(i, j int) bool {
		return pieces[i].Home.Index < pieces[j].Home.Index
	})
	return pieces, nil
}

// decodePlacement runs the notation decoder under decodeMu. A panic inside
// the decoder is reported as an error and never leaves the lock held.
func decodePlacement(placement string) (decoded notation.Board, err error) {
	decodeMu.Lock()
	defer decodeMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder: %v", r)
		}
	}()
	err = decoded.UnmarshalText([]byte(placement))
	return decoded, err
}

// convertType maps the notation library's piece types onto ours.
func convertType(pt notation.PieceType) (chess.PieceType, bool) {
	switch pt {
	case notation.Pawn:
		return chess.Pawn, true
	case notation.Knight:
		return chess.Knight, true
	case notation.Bishop:
		return chess.Bishop, true
	case notation.Rook:
		return chess.Rook, true
	case notation.Queen:
		return chess.Queen, true
	case notation.King:
		return chess.King, true
	}
	return 0, false
}

// PlacementFEN renders the piece-placement field for pieces on board.
// When two pieces claim a tile the first one in set order is shown.
func PlacementFEN(board *chess.Board, pieces chess.PieceSet) string {
	var symbols [chess.NumTiles]byte
	for _, p := range pieces {
		i := board.IndexOf(p.Home)
		if i >= 0 && symbols[i] == 0 {
			symbols[i] = p.Symbol()
		}
	}

	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			s := symbols[row*chess.BoardSize+col]
			if s == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(s)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
