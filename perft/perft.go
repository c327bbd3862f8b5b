// Package perft counts leaf nodes of the legal move tree. It is the standard
// cross-check of a move generator: the counts for well-known positions are published
// and any divergence pins a bug to a root move.
package perft

import (
	"fmt"
	"io"

	"chess-rules/goosecore"
)

// Result is the leaf count below one root move.
type Result struct {
	Move  string
	Nodes uint64
}

// Count returns the number of leaf nodes reachable in exactly depth plies.
// Depth 0 counts the position itself.
func Count(p *goosecore.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	pc := counter{bufs: make([][]goosecore.Move, depth+1)}
	return pc.count(p, depth)
}

// counter keeps one move buffer per remaining depth so the recursion does not allocate.
type counter struct {
	bufs [][]goosecore.Move
}

func (pc *counter) bufFor(depth int) []goosecore.Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]goosecore.Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func (pc *counter) count(p *goosecore.Position, depth int) (uint64, error) {
	moves, err := p.GenerateMovesInto(pc.bufFor(depth))
	if err != nil {
		return 0, err
	}
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var nodes uint64
	for _, m := range moves {
		child, err := goosecore.Apply(p, m)
		if err != nil {
			return 0, fmt.Errorf("perft: apply %s: %w", m, err)
		}
		n, err := pc.count(&child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the leaf count below each legal root move, in generation order.
func Divide(p *goosecore.Position, depth int) ([]Result, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(moves))
	for _, m := range moves {
		child, err := goosecore.Apply(p, m)
		if err != nil {
			return nil, fmt.Errorf("perft: apply %s: %w", m, err)
		}
		n, err := Count(&child, depth-1)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Move: m.String(), Nodes: n})
	}
	return results, nil
}

// Total sums the node counts of a divide.
func Total(results []Result) uint64 {
	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	return sum
}

// WriteDivide prints one "<move>: <count>" line per root move followed by the total.
func WriteDivide(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nNodes searched: %d\n", Total(results))
	return err
}

// ApplyMoves plays a list of coordinate-notation moves from p, checking each for legality.
func ApplyMoves(p goosecore.Position, moves []string) (goosecore.Position, error) {
	for i, text := range moves {
		m, err := p.FindLegalMove(text)
		if err != nil {
			return p, fmt.Errorf("perft: move %d: %w", i+1, err)
		}
		if err := p.MakeMove(m); err != nil {
			return p, fmt.Errorf("perft: move %d (%s): %w", i+1, text, err)
		}
	}
	return p, nil
}
