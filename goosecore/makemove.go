package goosecore

import "fmt"

// MakeMove applies m to the position in place.
//
// The mover is always the side to move. Castling is recognised by the king travelling
// two files from its home square onto a castled square with its own rook still home;
// en passant by a pawn moving diagonally onto the en-passant target.
//
// If the move leaves the mover's king attacked, ErrIllegalSelfCheck is returned and the
// position is left in its post-move state; callers probing legality apply to a copy.
func (p *Position) MakeMove(m Move) error {
	pt := p.board.TypeAt(m.From)
	if pt == PieceTypeNone {
		return fmt.Errorf("%w: %s", ErrFromSquareEmpty, m.From)
	}
	mustSquare("MakeMove", m.To)

	mover := p.SideToMove()
	captured := PieceTypeNone

	switch {
	case pt == PieceTypePawn && m.To == p.enPassantFor(mover) && m.From.File() != m.To.File():
		victim := Square(uint64(m.To) >> 8)
		if mover == Black {
			victim = Square(uint64(m.To) << 8)
		}
		p.board.Clear(victim)
		p.board.Move(m.From, m.To)
		captured = PieceTypePawn

	case pt == PieceTypePawn && (Rank1|Rank8).Has(m.To):
		promo := m.Promotion
		if !promo.IsPromotion() {
			promo = PieceTypeQueen
		}
		captured = p.board.TypeAt(m.To)
		p.board.Clear(m.From)
		p.board.Place(m.To, PieceFromType(mover, promo))

	case pt == PieceTypeKing && fileDistance(m.From, m.To) == 2:
		if cp := p.castlePatternFor(mover, m); cp != nil {
			for span := cp.span; span != 0; {
				p.board.Clear(span.PopLSB())
			}
			p.board.Place(cp.kingTo, PieceFromType(mover, PieceTypeKing))
			p.board.Place(cp.rookTo, PieceFromType(mover, PieceTypeRook))
		} else {
			captured = p.board.Move(m.From, m.To)
		}

	default:
		captured = p.board.Move(m.From, m.To)
	}

	// Clocks and side to move
	if mover == Black {
		p.fullmove++
	}
	p.flags ^= FlagWhiteToMove
	if pt == PieceTypePawn || captured != PieceTypeNone {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	// Castling rights
	if pt == PieceTypeKing {
		p.flags &^= castlingOf(mover)
	}
	for _, rh := range rookHomeRights {
		if m.From == rh.sq || m.To == rh.sq {
			p.flags &^= rh.right
		}
	}

	// En passant target: only when an enemy pawn could take it next ply
	p.enPassant = NoSquare
	if pt == PieceTypePawn && rankDistance(m.From, m.To) == 2 {
		beside := stepE.apply(Bitboard(m.To)) | stepW.apply(Bitboard(m.To))
		if beside&p.board.PiecesOf(mover.Other(), PieceTypePawn) != 0 {
			p.enPassant = SquareFromIndex((m.From.Index() + m.To.Index()) / 2)
		}
	}

	if kingAttacked(&p.board, mover) {
		return ErrIllegalSelfCheck
	}
	return nil
}

// Apply returns a copy of p with m applied. p itself is never modified.
// The returned position is only meaningful when err is nil.
func Apply(p *Position, m Move) (Position, error) {
	child := *p
	err := child.MakeMove(m)
	return child, err
}

func (p *Position) castlePatternFor(side Color, m Move) *castlePattern {
	for i := range castlePatterns {
		cp := &castlePatterns[i]
		if cp.side == side && cp.king == m.From && cp.kingTo == m.To &&
			p.board.PiecesOf(side, PieceTypeRook).Has(cp.rook) {
			return cp
		}
	}
	return nil
}

func fileDistance(a, b Square) int {
	d := a.File() - b.File()
	if d < 0 {
		return -d
	}
	return d
}

func rankDistance(a, b Square) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}
