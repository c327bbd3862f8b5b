package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"chess-rules/goosecore"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// MaxDepth bounds the requested search depth.
const MaxDepth = 64

// Result is the outcome of a fixed-depth search.
type Result struct {
	Move  goosecore.Move // zero when the root has no legal move or depth is 0
	Score int32
	Nodes uint64
}

// Search runs a plain negamax to exactly depth plies and returns the best root move.
// Root moves are searched concurrently; among equal scores the first move in legal
// move order wins. Mates score MaxScore minus the distance in plies, stalemate DrawScore.
func Search(ctx context.Context, p *goosecore.Position, depth int) (Result, error) {
	if depth < 0 || depth > MaxDepth {
		return Result{}, fmt.Errorf("engine: depth %d out of range [0, %d]", depth, MaxDepth)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if depth == 0 {
		return Result{Score: int32(Evaluate(p)), Nodes: 1}, nil
	}

	moves, err := p.LegalMoves()
	if err != nil {
		return Result{}, err
	}
	if len(moves) == 0 {
		return Result{Score: terminalScore(p, 0), Nodes: 1}, nil
	}

	scores := make([]int32, len(moves))
	var nodes atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child, err := goosecore.Apply(p, m)
			if err != nil {
				return fmt.Errorf("engine: apply %s: %w", m, err)
			}
			s := searcher{ctx: gctx}
			score, err := s.negamax(&child, depth-1, 1)
			nodes.Add(s.nodes)
			if err != nil {
				return err
			}
			scores[i] = -score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return Result{Move: moves[best], Score: scores[best], Nodes: nodes.Load() + 1}, nil
}

// searcher is the per-goroutine search state.
type searcher struct {
	ctx   context.Context
	nodes uint64
}

func (s *searcher) negamax(p *goosecore.Position, depth, ply int) (int32, error) {
	s.nodes++
	if s.nodes&1023 == 0 {
		if err := s.ctx.Err(); err != nil {
			return 0, err
		}
	}

	var buf [128]goosecore.Move
	moves, err := p.GenerateMovesInto(buf[:0])
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		return terminalScore(p, ply), nil
	}
	if depth == 0 {
		return int32(Evaluate(p)), nil
	}

	best := -MaxScore
	for _, m := range moves {
		child, err := goosecore.Apply(p, m)
		if err != nil {
			return 0, fmt.Errorf("engine: apply %s: %w", m, err)
		}
		score, err := s.negamax(&child, depth-1, ply+1)
		if err != nil {
			return 0, err
		}
		if -score > best {
			best = -score
		}
	}
	return best, nil
}

// terminalScore scores a position without legal moves from the side to move's view.
func terminalScore(p *goosecore.Position, ply int) int32 {
	if goosecore.InCheck(p, p.SideToMove()) {
		return -MaxScore + int32(ply)
	}
	return DrawScore
}

// ScoreString formats a score as UCI does: "cp N" or "mate N" in full moves.
func ScoreString(score int32) string {
	if score >= Checkmate {
		plies := max(int(MaxScore-score), 0)
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score <= -Checkmate {
		plies := max(int(MaxScore+score), 0)
		return fmt.Sprintf("mate %d", -((plies + 1) / 2))
	}
	return fmt.Sprintf("cp %d", score)
}
