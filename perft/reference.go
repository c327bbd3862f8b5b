package perft

import (
	"github.com/dylhunn/dragontoothmg"

	"chess-rules/goosecore"
)

// ReferenceDivide runs the same divide on dragontoothmg, an independent move generator.
// The FEN is normalised through goosecore first, so four-field input is accepted and
// malformed input fails with goosecore.ErrInvalidFEN instead of a panic.
func ReferenceDivide(fen string, depth int) ([]Result, error) {
	p, err := goosecore.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		return nil, nil
	}
	board := dragontoothmg.ParseFen(p.ToFEN())
	moves := board.GenerateLegalMoves()
	results := make([]Result, 0, len(moves))
	for i := range moves {
		unapply := board.Apply(moves[i])
		n := referenceCount(&board, depth-1)
		unapply()
		results = append(results, Result{Move: moves[i].String(), Nodes: n})
	}
	return results, nil
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		unapply()
	}
	return nodes
}
