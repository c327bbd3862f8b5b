package perft

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chess-rules/goosecore"
)

// DivideParallel is Divide with the root moves counted concurrently by at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results keep generation order.
// Cancelling ctx stops dispatching further root moves and returns ctx.Err().
func DivideParallel(ctx context.Context, p *goosecore.Position, depth, workers int) ([]Result, error) {
	if depth <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range moves {
		if gctx.Err() != nil {
			break
		}
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child, err := goosecore.Apply(p, m)
			if err != nil {
				return fmt.Errorf("perft: apply %s: %w", m, err)
			}
			n, err := Count(&child, depth-1)
			if err != nil {
				return err
			}
			results[i] = Result{Move: m.String(), Nodes: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
