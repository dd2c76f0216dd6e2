package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// These tests verify the assertion helpers on their success paths;
// failure paths would fail this test itself.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertTiles(t *testing.T) {
	tiles := []chess.Tile{chess.MustParseTile("e4"), chess.MustParseTile("a1")}
	AssertTiles(t, tiles, []string{"e4", "a1"})
	AssertTileSet(t, tiles, []string{"a1", "e4"})
	AssertTiles(t, nil, nil)
	AssertTileSet(t, nil, []string{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errors.ErrInvalidFEN), errors.ErrInvalidFEN)
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertContains(t, "hello world", "world")
}

func TestPlace(t *testing.T) {
	board, pieces := Place(t, "Ke1", "re8", "pa7")
	AssertEqual(t, board.Size(), 64)
	AssertEqual(t, len(pieces), 3)

	AssertEqual(t, pieces[0].Type, chess.King)
	AssertEqual(t, pieces[0].Colour, chess.White)
	AssertEqual(t, pieces[1].Colour, chess.Black)
	AssertEqual(t, PieceOn(t, pieces, "a7").Type, chess.Pawn)
}

func TestMustLoadFEN(t *testing.T) {
	_, pieces := MustLoadFEN(t, "4k3/8/8/8/8/8/8/4K3")
	AssertEqual(t, len(pieces), 2)
	AssertEqual(t, PieceOn(t, pieces, "e8").Colour, chess.Black)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
