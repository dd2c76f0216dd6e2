// Package chess provides the board, tile and piece types shared by the rules engine
// and its callers.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour accepts "white"/"w" and "black"/"b" in any case.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return Black, false
}

// PieceType is the category tag of a piece.
type PieceType int

const (
	Pawn PieceType = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Unknown", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ParsePieceType converts a FEN-style letter of either case to a piece type.
func ParsePieceType(letter byte) (PieceType, bool) {
	switch letter {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	NumTiles  = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// ValidRank reports whether r lies between '1' and '8'.
func ValidRank(r Rank) bool {
	return r >= FirstRank && r <= LastRank
}

// ValidCol reports whether c lies between 'a' and 'h'.
func ValidCol(c Col) bool {
	return c >= FirstCol && c <= LastCol
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
// White pawns advance towards rank 8, which is towards higher tile indices.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank on which pawns of the given colour start.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return '2'
	}
	return '7'
}
