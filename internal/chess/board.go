package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Tile is one of the 64 board squares. Tiles are plain values: two tiles
// are the same square exactly when they compare equal.
type Tile struct {
	Col   Col
	Rank  Rank
	Index int
}

// Coordinate returns the algebraic name of the tile, e.g. "e4".
func (t Tile) Coordinate() string {
	return string([]byte{byte(t.Col), byte(t.Rank)})
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return t.Coordinate()
}

// Row returns the zero-based row derived from the index (0 is rank 1).
func (t Tile) Row() int {
	return t.Index / BoardSize
}

// Column returns the zero-based column derived from the index (0 is file a).
func (t Tile) Column() int {
	return t.Index % BoardSize
}

// TileIndex maps a file and rank to the flat index used by Board.
// a1 is 0, h1 is 7, a8 is 56 and h8 is 63.
func TileIndex(col Col, rank Rank) int {
	return int(rank-RankBase)*BoardSize + int(col-ColBase)
}

// ParseTile converts an algebraic coordinate such as "e4" into a Tile.
func ParseTile(s string) (Tile, error) {
	if len(s) != 2 {
		return Tile{}, errors.Wrapf(errors.ErrInvalidTile, "%q", s)
	}
	col := Col(s[0] | 0x20) // lower-case the file letter
	rank := Rank(s[1])
	if !ValidCol(col) || !ValidRank(rank) {
		return Tile{}, errors.Wrapf(errors.ErrInvalidTile, "%q", s)
	}
	return Tile{Col: col, Rank: rank, Index: TileIndex(col, rank)}, nil
}

// MustParseTile is like ParseTile but panics on malformed input.
// It is intended for fixed coordinates in setup code and tests.
func MustParseTile(s string) Tile {
	t, err := ParseTile(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Board is the ordered sequence of the 64 tiles. It is built once and
// never reordered or mutated.
type Board struct {
	tiles [NumTiles]Tile
}

// NewBoard creates the 64 tiles in index order.
func NewBoard() *Board {
	b := &Board{}
	for rank := Rank(FirstRank); rank <= LastRank; rank++ {
		for col := Col(FirstCol); col <= LastCol; col++ {
			i := TileIndex(col, rank)
			b.tiles[i] = Tile{Col: col, Rank: rank, Index: i}
		}
	}
	return b
}

// Size returns the number of tiles, which is always 64.
func (b *Board) Size() int {
	return len(b.tiles)
}

// At returns the tile at index i. Like slice indexing it panics when i is
// out of range; callers filter with a bounds check first.
func (b *Board) At(i int) Tile {
	return b.tiles[i]
}

// Lookup returns the tile at index i, or false when i is out of range.
func (b *Board) Lookup(i int) (Tile, bool) {
	if i < 0 || i >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// TileAt returns the tile with the given file and rank.
func (b *Board) TileAt(col Col, rank Rank) (Tile, bool) {
	if !ValidCol(col) || !ValidRank(rank) {
		return Tile{}, false
	}
	return b.tiles[TileIndex(col, rank)], true
}

// IndexOf returns the position of t in the board sequence, or -1 when t is
// not one of the board's tiles.
func (b *Board) IndexOf(t Tile) int {
	if t.Index < 0 || t.Index >= len(b.tiles) || b.tiles[t.Index] != t {
		return -1
	}
	return t.Index
}

// Tiles returns a copy of the tile sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles[:])
	return out
}
