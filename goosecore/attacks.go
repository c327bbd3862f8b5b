package goosecore

// step is one compass or knight offset. Source squares in edge are dropped before
// shifting so nothing wraps across a file or falls off the board.
type step struct {
	shift int
	edge  Bitboard
}

func (s step) apply(b Bitboard) Bitboard {
	b &^= s.edge
	if s.shift > 0 {
		return b << uint(s.shift)
	}
	return b >> uint(-s.shift)
}

var (
	stepN  = step{8, Rank8}
	stepS  = step{-8, Rank1}
	stepE  = step{1, FileH}
	stepW  = step{-1, FileA}
	stepNE = step{9, FileH | Rank8}
	stepNW = step{7, FileA | Rank8}
	stepSE = step{-7, FileH | Rank1}
	stepSW = step{-9, FileA | Rank1}

	rookSteps   = [4]step{stepN, stepS, stepE, stepW}
	bishopSteps = [4]step{stepNE, stepNW, stepSE, stepSW}
	kingSteps   = [8]step{stepN, stepS, stepE, stepW, stepNE, stepNW, stepSE, stepSW}

	knightSteps = [8]step{
		{17, FileH | Rank7 | Rank8},
		{15, FileA | Rank7 | Rank8},
		{10, FileG | FileH | Rank8},
		{6, FileA | FileB | Rank8},
		{-6, FileG | FileH | Rank1},
		{-10, FileA | FileB | Rank1},
		{-15, FileH | Rank1 | Rank2},
		{-17, FileA | Rank1 | Rank2},
	}
)

// ==========================
// Per-kind attack sets
// ==========================

func leaperAttacks(src Bitboard, steps []step) Bitboard {
	var out Bitboard
	for _, s := range steps {
		out |= s.apply(src)
	}
	return out
}

// slidingAttacks walks every ray one square at a time. The first occupied square on a
// ray is included (the caller removes own pieces) and stops the walk.
func slidingAttacks(src Bitboard, steps []step, occ Bitboard) Bitboard {
	var out Bitboard
	for _, s := range steps {
		ray := src
		for ray != 0 {
			ray = s.apply(ray)
			out |= ray
			ray &^= occ
		}
	}
	return out
}

// pawnCaptureSpan returns the two diagonal squares in front of each pawn in src.
func pawnCaptureSpan(src Bitboard, side Color) Bitboard {
	if side == White {
		return stepNE.apply(src) | stepNW.apply(src)
	}
	return stepSE.apply(src) | stepSW.apply(src)
}

// pawnPushSpan returns single pushes onto empty squares plus double pushes from the
// start rank when both squares are empty.
func pawnPushSpan(src Bitboard, side Color, empty Bitboard) Bitboard {
	if side == White {
		once := stepN.apply(src) & empty
		return once | stepN.apply(once&Rank3)&empty
	}
	once := stepS.apply(src) & empty
	return once | stepS.apply(once&Rank6)&empty
}

// attacks returns the squares the pieces of kind pt and color side standing on sel
// attack. Own-occupied squares are excluded; pawns only attack occupied enemy squares.
func attacks(b *Board, pt PieceType, side Color, sel Bitboard) Bitboard {
	src := b.PiecesOf(side, pt) & sel
	if src == 0 {
		return 0
	}
	own := b.ColorOccupancy(side)
	switch pt {
	case PieceTypePawn:
		return pawnCaptureSpan(src, side) & b.ColorOccupancy(side.Other())
	case PieceTypeKnight:
		return leaperAttacks(src, knightSteps[:]) &^ own
	case PieceTypeBishop:
		return slidingAttacks(src, bishopSteps[:], b.AllOccupancy()) &^ own
	case PieceTypeRook:
		return slidingAttacks(src, rookSteps[:], b.AllOccupancy()) &^ own
	case PieceTypeQueen:
		occ := b.AllOccupancy()
		return (slidingAttacks(src, bishopSteps[:], occ) | slidingAttacks(src, rookSteps[:], occ)) &^ own
	case PieceTypeKing:
		return leaperAttacks(src, kingSteps[:]) &^ own
	}
	return 0
}

// attackedBy is the union of every kind's attacks for side. Castling never contributes.
func attackedBy(b *Board, side Color) Bitboard {
	var out Bitboard
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		out |= attacks(b, pt, side, Full)
	}
	return out
}

// squareAttacked looks outward from sq with each kind's pattern and checks whether
// a matching attacker of color by sits at the other end.
func squareAttacked(b *Board, sq Square, by Color) bool {
	target := Bitboard(sq)
	if pawnCaptureSpan(target, by.Other())&b.PiecesOf(by, PieceTypePawn) != 0 {
		return true
	}
	if leaperAttacks(target, knightSteps[:])&b.PiecesOf(by, PieceTypeKnight) != 0 {
		return true
	}
	if leaperAttacks(target, kingSteps[:])&b.PiecesOf(by, PieceTypeKing) != 0 {
		return true
	}
	occ := b.AllOccupancy()
	queens := b.PiecesOf(by, PieceTypeQueen)
	if slidingAttacks(target, rookSteps[:], occ)&(b.PiecesOf(by, PieceTypeRook)|queens) != 0 {
		return true
	}
	return slidingAttacks(target, bishopSteps[:], occ)&(b.PiecesOf(by, PieceTypeBishop)|queens) != 0
}

// ==========================
// Castling
// ==========================

// castlePattern describes one of the four castling moves.
type castlePattern struct {
	right    Flags
	side     Color
	king     Square
	kingTo   Square
	rook     Square
	rookTo   Square
	between  Bitboard // must be empty
	kingPath Bitboard // start, transit and end; none may be attacked
	span     Bitboard // king home through rook home, cleared when castling
}

var castlePatterns = [4]castlePattern{
	{
		right: CastlingWhiteK, side: White,
		king: E1, kingTo: G1, rook: H1, rookTo: F1,
		between:  Bitboard(F1 | G1),
		kingPath: Bitboard(E1 | F1 | G1),
		span:     Bitboard(E1 | F1 | G1 | H1),
	},
	{
		right: CastlingWhiteQ, side: White,
		king: E1, kingTo: C1, rook: A1, rookTo: D1,
		between:  Bitboard(B1 | C1 | D1),
		kingPath: Bitboard(E1 | D1 | C1),
		span:     Bitboard(A1 | B1 | C1 | D1 | E1),
	},
	{
		right: CastlingBlackK, side: Black,
		king: E8, kingTo: G8, rook: H8, rookTo: F8,
		between:  Bitboard(F8 | G8),
		kingPath: Bitboard(E8 | F8 | G8),
		span:     Bitboard(E8 | F8 | G8 | H8),
	},
	{
		right: CastlingBlackQ, side: Black,
		king: E8, kingTo: C8, rook: A8, rookTo: D8,
		between:  Bitboard(B8 | C8 | D8),
		kingPath: Bitboard(E8 | D8 | C8),
		span:     Bitboard(A8 | B8 | C8 | D8 | E8),
	},
}

// rookHomeRights maps each rook home square to the right it carries.
var rookHomeRights = [4]struct {
	sq    Square
	right Flags
}{
	{H1, CastlingWhiteK},
	{A1, CastlingWhiteQ},
	{H8, CastlingBlackK},
	{A8, CastlingBlackQ},
}

// pathAttacked places a phantom king on each square of the king's path, on a scratch
// copy with the real king lifted, and asks whether the opponent attacks it.
func pathAttacked(b *Board, cp *castlePattern) bool {
	scratch := *b
	scratch.Clear(cp.king)
	king := PieceFromType(cp.side, PieceTypeKing)
	path := cp.kingPath
	for path != 0 {
		sq := path.PopLSB()
		probe := scratch
		probe.Place(sq, king)
		if squareAttacked(&probe, sq, cp.side.Other()) {
			return true
		}
	}
	return false
}

func castlingDestinations(b *Board, flags Flags, side Color) Bitboard {
	var out Bitboard
	for i := range castlePatterns {
		cp := &castlePatterns[i]
		if cp.side != side || flags&cp.right == 0 {
			continue
		}
		if !b.PiecesOf(side, PieceTypeKing).Has(cp.king) || !b.PiecesOf(side, PieceTypeRook).Has(cp.rook) {
			continue
		}
		if b.AllOccupancy()&cp.between != 0 {
			continue
		}
		if pathAttacked(b, cp) {
			continue
		}
		out |= Bitboard(cp.kingTo)
	}
	return out
}

// ==========================
// Exported queries
// ==========================

// Attacks returns the squares attacked by side's pieces of kind pt standing on sel.
// Pass Full to select every piece of that kind.
func Attacks(p *Position, pt PieceType, side Color, sel Bitboard) Bitboard {
	return attacks(&p.board, pt, side, sel)
}

// PawnPushes returns the non-capturing pawn destinations of side's pawns on sel.
func PawnPushes(p *Position, side Color, sel Bitboard) Bitboard {
	src := p.board.PiecesOf(side, PieceTypePawn) & sel
	return pawnPushSpan(src, side, ^p.board.AllOccupancy())
}

// Destinations returns every pseudo-legal target square for side's pieces of kind pt on sel.
// Pawns add pushes and, for the side to move, the en-passant target. Kings add castling.
func Destinations(p *Position, pt PieceType, side Color, sel Bitboard) Bitboard {
	b := &p.board
	switch pt {
	case PieceTypePawn:
		src := b.PiecesOf(side, PieceTypePawn) & sel
		if src == 0 {
			return 0
		}
		enemy := b.ColorOccupancy(side.Other())
		if ep := p.enPassantFor(side); ep != NoSquare {
			enemy |= Bitboard(ep)
		}
		return pawnPushSpan(src, side, ^b.AllOccupancy()) | pawnCaptureSpan(src, side)&enemy
	case PieceTypeKing:
		if b.PiecesOf(side, pt)&sel == 0 {
			return 0
		}
		return attacks(b, pt, side, sel) | castlingDestinations(b, p.flags, side)
	}
	return attacks(b, pt, side, sel)
}

// enPassantFor returns the en-passant target if side is to move and the target sits on
// the rank side's pawns capture onto.
func (p *Position) enPassantFor(side Color) Square {
	ep := p.enPassant
	if !ep.IsValid() || side != p.SideToMove() {
		return NoSquare
	}
	if (side == White && ep.Rank() != 5) || (side == Black && ep.Rank() != 2) {
		return NoSquare
	}
	return ep
}

// AttackedSquares returns every square side attacks. Pawn diagonals count only when an
// enemy piece stands there.
func AttackedSquares(p *Position, side Color) Bitboard {
	return attackedBy(&p.board, side)
}

// IsSquareAttacked reports whether a king of the other color standing on sq would be
// attacked by side by. The test runs on a scratch copy with the phantom king placed.
func IsSquareAttacked(p *Position, sq Square, by Color) bool {
	mustSquare("IsSquareAttacked", sq)
	probe := p.board
	probe.Place(sq, PieceFromType(by.Other(), PieceTypeKing))
	return squareAttacked(&probe, sq, by)
}

// InCheck reports whether side's king is attacked.
func InCheck(p *Position, side Color) bool {
	return kingAttacked(&p.board, side)
}

func kingAttacked(b *Board, side Color) bool {
	kings := b.PiecesOf(side, PieceTypeKing)
	if kings == 0 {
		return false
	}
	return squareAttacked(b, kings.PopLSB(), side.Other())
}
