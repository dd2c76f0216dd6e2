package chess

// Piece is a live piece on the board. Home is the tile the piece currently
// occupies; only the turn-management layer moves it (see PieceSet.Relocate).
type Piece struct {
	Type   PieceType
	Colour Colour
	Home   Tile
}

// NewPiece creates a piece of the given type and colour standing on home.
func NewPiece(pieceType PieceType, colour Colour, home Tile) *Piece {
	return &Piece{Type: pieceType, Colour: colour, Home: home}
}

// Symbol returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p *Piece) Symbol() byte {
	l := p.Type.Letter()
	if p.Colour == Black {
		l |= 0x20
	}
	return l
}

// String returns e.g. "White Knight on g1".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Type.String() + " on " + p.Home.Coordinate()
}

// PieceSet is the collection of pieces still in play for both colours.
// Order is significant only in that generation results follow it.
type PieceSet []*Piece

// Add appends p to the set and returns the extended set.
func (ps PieceSet) Add(p *Piece) PieceSet {
	return append(ps, p)
}

// Remove returns the set without p. It is how a capture is committed.
// The receiver's backing array is not modified.
func (ps PieceSet) Remove(p *Piece) PieceSet {
	out := make(PieceSet, 0, len(ps))
	for _, q := range ps {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

// Relocate moves p to tile, removing whichever opposing piece stood there.
// It returns the updated set and the captured piece, if any.
func (ps PieceSet) Relocate(p *Piece, tile Tile) (PieceSet, *Piece) {
	var captured *Piece
	for _, q := range ps {
		if q != p && q.Home == tile {
			captured = q
			break
		}
	}
	if captured != nil {
		ps = ps.Remove(captured)
	}
	p.Home = tile
	return ps, captured
}

// OfColour returns the pieces belonging to colour, in set order.
func (ps PieceSet) OfColour(colour Colour) PieceSet {
	var out PieceSet
	for _, p := range ps {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// King returns the first king of the given colour.
func (ps PieceSet) King(colour Colour) (*Piece, bool) {
	for _, p := range ps {
		if p.Type == King && p.Colour == colour {
			return p, true
		}
	}
	return nil, false
}

// Clone returns a deep copy, so the copy can be relocated independently.
func (ps PieceSet) Clone() PieceSet {
	out := make(PieceSet, len(ps))
	for i, p := range ps {
		cp := *p
		out[i] = &cp
	}
	return out
}

// StandardPieceSet creates the 32 pieces of the initial array on board.
func StandardPieceSet(board *Board) PieceSet {
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	pieces := make(PieceSet, 0, 32)
	for i, pt := range backRank {
		col := Col(FirstCol + i)
		for _, entry := range []struct {
			colour Colour
			rank   Rank
			ptype  PieceType
		}{
			{White, '1', pt},
			{White, '2', Pawn},
			{Black, '7', Pawn},
			{Black, '8', pt},
		} {
			tile, _ := board.TileAt(col, entry.rank)
			pieces = append(pieces, NewPiece(entry.ptype, entry.colour, tile))
		}
	}
	return pieces
}
