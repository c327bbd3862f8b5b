package goosecore

import (
	"fmt"
	"strings"
)

// Move is a single from/to transition. Castling and en passant are not flagged;
// MakeMove infers them from the king's displacement and the en-passant target.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if !m.From.IsValid() || !m.To.IsValid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if c := promotionChar(m.Promotion); c != 0 {
		s += string(c)
	}
	return s
}

// ParseMove parses coordinate notation ("e2e4", "e7e8q"); the text is case-insensitive.
// The null move "0000" is rejected.
func ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = PieceTypeQueen
		case 'r':
			m.Promotion = PieceTypeRook
		case 'b':
			m.Promotion = PieceTypeBishop
		case 'n':
			m.Promotion = PieceTypeKnight
		default:
			return Move{}, fmt.Errorf("%w: %q: bad promotion letter", ErrInvalidMove, text)
		}
	}
	return m, nil
}

// FindLegalMove parses text and matches it against the legal moves of p.
// A pawn reaching the last rank without a promotion letter promotes to a queen.
func (p *Position) FindLegalMove(text string) (Move, error) {
	m, err := ParseMove(text)
	if err != nil {
		return Move{}, err
	}
	legal, err := p.LegalMoves()
	if err != nil {
		return Move{}, err
	}
	want := m.Promotion
	if want == PieceTypeNone {
		want = PieceTypeQueen
	}
	for _, lm := range legal {
		if lm.From != m.From || lm.To != m.To {
			continue
		}
		if lm.Promotion == want || (lm.Promotion == PieceTypeNone && m.Promotion == PieceTypeNone) {
			return lm, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s in %s", ErrIllegalMove, text, p.ToFEN())
}
