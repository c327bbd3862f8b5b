package goosecore

import (
	"errors"
	"fmt"
)

// GenerateMovesInto fills dst (from length zero) with the legal moves of the side to move.
// Each pseudo-legal move is applied to a fresh copy; moves that leave the mover's king
// attacked are dropped. Any other application error means the generator produced a move
// the applier cannot handle, and is returned.
func (p *Position) GenerateMovesInto(dst []Move) ([]Move, error) {
	moves := p.GeneratePseudoMovesInto(dst)
	legal := moves[:0]
	for _, m := range moves {
		child := *p
		err := child.MakeMove(m)
		switch {
		case err == nil:
			legal = append(legal, m)
		case errors.Is(err, ErrIllegalSelfCheck):
		default:
			return nil, fmt.Errorf("goosecore: generated move %s in %s: %w", m, p.ToFEN(), err)
		}
	}
	return legal, nil
}

// LegalMoves returns a fresh slice of the legal moves of the side to move.
func (p *Position) LegalMoves() ([]Move, error) {
	return p.GenerateMovesInto(make([]Move, 0, 128))
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() (bool, error) {
	var buf [128]Move
	moves, err := p.GenerateMovesInto(buf[:0])
	if err != nil {
		return false, err
	}
	return len(moves) > 0, nil
}

// IsCheckmate reports whether the side to move is in check with no legal move.
func (p *Position) IsCheckmate() (bool, error) {
	if !InCheck(p, p.SideToMove()) {
		return false, nil
	}
	has, err := p.HasLegalMoves()
	return !has && err == nil, err
}

// IsStalemate reports whether the side to move is not in check but has no legal move.
func (p *Position) IsStalemate() (bool, error) {
	if InCheck(p, p.SideToMove()) {
		return false, nil
	}
	has, err := p.HasLegalMoves()
	return !has && err == nil, err
}

// Status summarises whether the game can continue from a position.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	DrawBy50
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawBy50:
		return "draw by fifty-move rule"
	}
	return "ongoing"
}

// Status classifies the position. Mate and stalemate take precedence over the
// fifty-move rule.
func (p *Position) Status() (Status, error) {
	has, err := p.HasLegalMoves()
	if err != nil {
		return Ongoing, err
	}
	if !has {
		if InCheck(p, p.SideToMove()) {
			return Checkmate, nil
		}
		return Stalemate, nil
	}
	if p.IsDrawBy50() {
		return DrawBy50, nil
	}
	return Ongoing, nil
}
