package goosecore

import (
	"fmt"
	"strings"
)

// Board is the raw placement: one occupancy mask per piece kind plus the set of white-occupied squares.
//
// Invariants kept by Place, Clear and Move:
//   - the kind masks are pairwise disjoint;
//   - white is a subset of the union of the kind masks;
//   - an empty square is absent from every mask.
type Board struct {
	kinds [6]Bitboard // indexed by PieceType-1
	white Bitboard
}

// StartingBoard returns the standard initial placement.
func StartingBoard() Board {
	var b Board
	b.white = Rank1 | Rank2
	b.kinds[PieceTypePawn-1] = Rank2 | Rank7
	b.kinds[PieceTypeKnight-1] = Bitboard(B1 | G1 | B8 | G8)
	b.kinds[PieceTypeBishop-1] = Bitboard(C1 | F1 | C8 | F8)
	b.kinds[PieceTypeRook-1] = Bitboard(A1 | H1 | A8 | H8)
	b.kinds[PieceTypeQueen-1] = Bitboard(D1 | D8)
	b.kinds[PieceTypeKing-1] = Bitboard(E1 | E8)
	return b
}

// TypeAt returns the kind of the mask that owns sq, or PieceTypeNone if the square is empty.
func (b *Board) TypeAt(sq Square) PieceType {
	mustSquare("Board.TypeAt", sq)
	for i, mask := range b.kinds {
		if mask.Has(sq) {
			return PieceType(i + 1)
		}
	}
	return PieceTypeNone
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece {
	pt := b.TypeAt(sq)
	if pt == PieceTypeNone {
		return NoPiece
	}
	if b.white.Has(sq) {
		return PieceFromType(White, pt)
	}
	return PieceFromType(Black, pt)
}

// IsWhite reports whether a white piece stands on sq.
func (b *Board) IsWhite(sq Square) bool {
	mustSquare("Board.IsWhite", sq)
	return b.white.Has(sq)
}

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() Bitboard {
	return b.kinds[0] | b.kinds[1] | b.kinds[2] | b.kinds[3] | b.kinds[4] | b.kinds[5]
}

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) Bitboard {
	if c == White {
		return b.white
	}
	return b.AllOccupancy() &^ b.white
}

// Pieces returns the mask of the given kind for both colors.
func (b *Board) Pieces(pt PieceType) Bitboard {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return 0
	}
	return b.kinds[pt-1]
}

// PiecesOf returns the squares holding pieces of kind pt and color c.
func (b *Board) PiecesOf(c Color, pt PieceType) Bitboard {
	return b.Pieces(pt) & b.ColorOccupancy(c)
}

// Clear removes any piece from the given square.
func (b *Board) Clear(sq Square) {
	mustSquare("Board.Clear", sq)
	mask := ^Bitboard(sq)
	for i := range b.kinds {
		b.kinds[i] &= mask
	}
	b.white &= mask
}

// Place puts p on sq, replacing whatever stood there. Placing NoPiece empties the square.
func (b *Board) Place(sq Square, p Piece) {
	b.Clear(sq)
	pt := p.Type()
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return
	}
	b.kinds[pt-1] |= Bitboard(sq)
	if p.Color() == White {
		b.white |= Bitboard(sq)
	}
}

// Move relocates the piece on from to to and returns the kind that previously stood on to.
// Moving from an empty square simply empties both squares.
func (b *Board) Move(from, to Square) PieceType {
	mustSquare("Board.Move", from)
	captured := b.TypeAt(to)
	moving := b.PieceAt(from)
	b.Clear(from)
	b.Place(to, moving)
	return captured
}

// Validate checks the mask invariants.
func (b *Board) Validate() error {
	var seen Bitboard
	for i, mask := range b.kinds {
		if seen&mask != 0 {
			return fmt.Errorf("goosecore: %s mask overlaps another kind on %#x", PieceType(i+1), uint64(seen&mask))
		}
		seen |= mask
	}
	if b.white&^seen != 0 {
		return fmt.Errorf("goosecore: white mask covers empty squares %#x", uint64(b.white&^seen))
	}
	return nil
}

// String draws the board from White's side, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.PieceAt(SquareAt(file, rank)).Char())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

var pieceTypeNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) < len(pieceTypeNames) {
		return pieceTypeNames[pt]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(pt))
}
