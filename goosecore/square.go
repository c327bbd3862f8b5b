package goosecore

import (
	"fmt"
	"math/bits"
)

// Bitboard is a set of squares, one bit per square (bit 0 = a1, bit 63 = h8).
type Bitboard uint64

// Square is a single board cell held as a singleton bit. The zero value is NoSquare.
type Square uint64

const NoSquare Square = 0

const (
	A1 Square = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	FileA Bitboard = 0x0101010101010101 << iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Bitboard = 0xFF << (8 * iota)
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Full selects every square on the board.
const Full = ^Bitboard(0)

// SquareAt returns the square on the given zero-based file and rank.
func SquareAt(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(1) << uint(rank*8+file)
}

// SquareFromIndex converts a 0-63 index (a1 = 0) to a Square.
func SquareFromIndex(idx int) Square {
	if idx < 0 || idx > 63 {
		return NoSquare
	}
	return Square(1) << uint(idx)
}

// IsValid reports whether s holds exactly one bit.
func (s Square) IsValid() bool { return s != 0 && s&(s-1) == 0 }

// Index returns the 0-63 index of the square.
func (s Square) Index() int { return bits.TrailingZeros64(uint64(s)) }

func (s Square) File() int { return s.Index() % 8 }

func (s Square) Rank() int { return s.Index() / 8 }

// String renders the square in algebraic form ("e4"); NoSquare renders as "-".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return SquareAt(int(file-'a'), int(rank-'1')), nil
}

// mustSquare panics if s is not a single square. Board primitives call it on every square argument.
func mustSquare(op string, s Square) {
	if !s.IsValid() {
		panic(fmt.Sprintf("goosecore.%s: %#x is not a single square", op, uint64(s)))
	}
}

// Has reports whether sq is a member of the set.
func (b Bitboard) Has(sq Square) bool { return b&Bitboard(sq) != 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// PopLSB removes and returns the lowest square of the set.
func (b *Bitboard) PopLSB() Square {
	lsb := *b & -*b
	*b &= *b - 1
	return Square(lsb)
}
