package engine

import (
	"chess-rules/goosecore"
)

// Material values in centipawns. The king carries no material weight.
var PieceValue = [7]int{
	goosecore.PieceTypePawn:   100,
	goosecore.PieceTypeKnight: 300,
	goosecore.PieceTypeBishop: 300,
	goosecore.PieceTypeRook:   500,
	goosecore.PieceTypeQueen:  900,
	goosecore.PieceTypeKing:   0,
}

// Evaluate returns the material balance from the side to move's point of view.
func Evaluate(p *goosecore.Position) int {
	b := p.Board()
	us := p.SideToMove()
	them := us.Other()
	score := 0
	for pt := goosecore.PieceTypePawn; pt <= goosecore.PieceTypeKing; pt++ {
		score += PieceValue[pt] * (b.PiecesOf(us, pt).Count() - b.PiecesOf(them, pt).Count())
	}
	return score
}
