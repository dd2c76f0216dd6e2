package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("size", func(t *testing.T) {
		if b.Size() != 64 {
			t.Errorf("Size() = %d; want 64", b.Size())
		}
	})

	t.Run("index matches position", func(t *testing.T) {
		for i := 0; i < b.Size(); i++ {
			if got := b.At(i).Index; got != i {
				t.Errorf("At(%d).Index = %d", i, got)
			}
			if got := b.IndexOf(b.At(i)); got != i {
				t.Errorf("IndexOf(At(%d)) = %d", i, got)
			}
		}
	})

	t.Run("all tiles distinct", func(t *testing.T) {
		seen := make(map[Tile]bool)
		for _, tile := range b.Tiles() {
			if seen[tile] {
				t.Errorf("duplicate tile %v", tile)
			}
			seen[tile] = true
		}
		if len(seen) != 64 {
			t.Errorf("distinct tiles = %d; want 64", len(seen))
		}
	})

	t.Run("corners", func(t *testing.T) {
		tests := []struct {
			index int
			want  string
		}{
			{0, "a1"},
			{7, "h1"},
			{8, "a2"},
			{56, "a8"},
			{63, "h8"},
		}
		for _, tt := range tests {
			if got := b.At(tt.index).Coordinate(); got != tt.want {
				t.Errorf("At(%d) = %s; want %s", tt.index, got, tt.want)
			}
		}
	})
}

func TestBoardLookup(t *testing.T) {
	b := NewBoard()

	for _, i := range []int{-1, 64, 100} {
		if _, ok := b.Lookup(i); ok {
			t.Errorf("Lookup(%d) ok = true; want false", i)
		}
	}
	tile, ok := b.Lookup(28)
	if !ok || tile.Coordinate() != "e4" {
		t.Errorf("Lookup(28) = %v, %v; want e4, true", tile, ok)
	}

	if _, ok := b.TileAt('i', '1'); ok {
		t.Error("TileAt(i1) ok = true; want false")
	}
	if got, _ := b.TileAt('e', '4'); got != tile {
		t.Errorf("TileAt(e4) = %v; want %v", got, tile)
	}
}

func TestBoardIndexOfForeignTile(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		name string
		tile Tile
	}{
		{"zero tile", Tile{}},
		{"index disagrees with coordinate", Tile{Col: 'e', Rank: '4', Index: 3}},
		{"negative index", Tile{Col: 'a', Rank: '1', Index: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IndexOf(tt.tile); got != -1 {
				t.Errorf("IndexOf(%+v) = %d; want -1", tt.tile, got)
			}
		})
	}
}

func TestTileRowColumn(t *testing.T) {
	tests := []struct {
		coord    string
		row, col int
	}{
		{"a1", 0, 0},
		{"h1", 0, 7},
		{"a2", 1, 0},
		{"e4", 3, 4},
		{"h8", 7, 7},
	}
	for _, tt := range tests {
		tile := MustParseTile(tt.coord)
		if tile.Row() != tt.row || tile.Column() != tt.col {
			t.Errorf("%s: Row/Column = %d/%d; want %d/%d", tt.coord, tile.Row(), tile.Column(), tt.row, tt.col)
		}
	}
}

func TestParseTile(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"e4", "e4", false},
		{"E4", "e4", false},
		{"h8", "h8", false},
		{"i1", "", true},
		{"a9", "", true},
		{"a0", "", true},
		{"e", "", true},
		{"e44", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTile(tt.in)
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidTile) {
					t.Errorf("ParseTile(%q) error = %v; want ErrInvalidTile", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTile(%q) unexpected error: %v", tt.in, err)
			}
			if got.Coordinate() != tt.want {
				t.Errorf("ParseTile(%q) = %s; want %s", tt.in, got, tt.want)
			}
			if got != NewBoard().At(got.Index) {
				t.Errorf("ParseTile(%q) = %+v is not a board tile", tt.in, got)
			}
		})
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in     string
		want   Colour
		wantOK bool
	}{
		{"white", White, true},
		{"W", White, true},
		{"Black", Black, true},
		{"b", Black, true},
		{"red", Black, false},
	}
	for _, tt := range tests {
		got, ok := ParseColour(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColour(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPieceTypeLetters(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		got, ok := ParsePieceType(pt.Letter())
		if !ok || got != pt {
			t.Errorf("ParsePieceType(%c) = %v, %v; want %v", pt.Letter(), got, ok, pt)
		}
	}
	if PieceType(0).String() != "Unknown" || PieceType(42).Letter() != '?' {
		t.Error("out of range piece type not reported as unknown")
	}
}
