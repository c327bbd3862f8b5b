package goosecore

// Flags packs the side to move and the four castling rights.
type Flags uint8

const (
	// White king-side (short) castling
	CastlingWhiteK Flags = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
	// Set when White is to move
	FlagWhiteToMove

	CastlingWhite = CastlingWhiteK | CastlingWhiteQ
	CastlingBlack = CastlingBlackK | CastlingBlackQ
	CastlingAll   = CastlingWhite | CastlingBlack
)

// castlingOf returns both rights of one side.
func castlingOf(c Color) Flags {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// Position is a board plus game metadata. It holds no references, so a plain
// assignment (child := *p) yields an independent copy.
type Position struct {
	board     Board
	fullmove  int
	halfmove  int
	enPassant Square
	flags     Flags
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	return Position{
		board:    StartingBoard(),
		fullmove: 1,
		flags:    FlagWhiteToMove | CastlingAll,
	}
}

// Board returns a copy of the placement.
func (p *Position) Board() Board { return p.board }

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.board.PieceAt(sq) }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color {
	if p.flags&FlagWhiteToMove != 0 {
		return White
	}
	return Black
}

// Flags returns the packed side-to-move and castling bits.
func (p *Position) Flags() Flags { return p.flags }

// CastlingRights returns only the castling bits.
func (p *Position) CastlingRights() Flags { return p.flags & CastlingAll }

// HasCastlingRight reports whether every bit of right is still available.
func (p *Position) HasCastlingRight(right Flags) bool { return p.flags&right == right }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// HalfmoveClock counts plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmove }

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (p *Position) IsDrawBy50() bool { return p.halfmove >= 100 }

// String returns the FEN of the position.
func (p *Position) String() string { return p.ToFEN() }
