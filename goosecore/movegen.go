package goosecore

// generationOrder is the fixed kind order of pseudo-legal generation.
var generationOrder = [6]PieceType{
	PieceTypePawn, PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen, PieceTypeKing,
}

// promotionOrder is the fan-out order for a pawn reaching the last rank.
var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// GeneratePseudoMovesFor appends the side to move's pseudo-legal moves for one piece kind to dst.
func (p *Position) GeneratePseudoMovesFor(pt PieceType, dst []Move) []Move {
	side := p.SideToMove()
	sources := p.board.PiecesOf(side, pt)
	for sources != 0 {
		from := sources.PopLSB()
		targets := Destinations(p, pt, side, Bitboard(from))
		for targets != 0 {
			to := targets.PopLSB()
			if pt == PieceTypePawn && (Rank1|Rank8).Has(to) {
				for _, promo := range promotionOrder {
					dst = append(dst, Move{From: from, To: to, Promotion: promo})
				}
				continue
			}
			dst = append(dst, Move{From: from, To: to})
		}
	}
	return dst
}

// GeneratePseudoMovesInto fills dst (from length zero) with every pseudo-legal move.
// Pseudo-legal moves obey piece movement, blockers and castling conditions but may
// leave the mover's own king attacked.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	for _, pt := range generationOrder {
		moves = p.GeneratePseudoMovesFor(pt, moves)
	}
	return moves
}

// GeneratePseudoMoves returns a fresh slice of pseudo-legal moves.
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesInto(make([]Move, 0, 128))
}
