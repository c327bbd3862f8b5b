package engine

import (
	"context"
	"errors"
	"testing"

	"chess-rules/goosecore"
)

func TestEvaluate(t *testing.T) {
	start := goosecore.NewPosition()
	if got := Evaluate(&start); got != 0 {
		t.Fatalf("start position: got %d want 0", got)
	}
	white := goosecore.MustParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if got := Evaluate(&white); got != 900 {
		t.Fatalf("extra queen, white to move: got %d want 900", got)
	}
	black := goosecore.MustParseFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	if got := Evaluate(&black); got != -900 {
		t.Fatalf("extra queen, black to move: got %d want -900", got)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	p := goosecore.MustParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	for _, depth := range []int{1, 3} {
		res, err := Search(context.Background(), &p, depth)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if res.Move.String() != "a1a8" {
			t.Fatalf("depth %d: got %s want a1a8", depth, res.Move)
		}
		if res.Score != MaxScore-1 || ScoreString(res.Score) != "mate 1" {
			t.Fatalf("depth %d: score %d (%s)", depth, res.Score, ScoreString(res.Score))
		}
	}
}

func TestSearchWinsMaterial(t *testing.T) {
	p := goosecore.MustParseFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	res, err := Search(context.Background(), &p, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Move.String() != "d1d5" || res.Score != 500 {
		t.Fatalf("got %s (%d) want d1d5 (500)", res.Move, res.Score)
	}
	if res.Nodes == 0 {
		t.Fatalf("node count not reported")
	}
}

func TestSearchTiesKeepMoveOrder(t *testing.T) {
	p := goosecore.NewPosition()
	res, err := Search(context.Background(), &p, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Move.String() != "a2a3" || res.Score != 0 {
		t.Fatalf("got %s (%d) want a2a3 (0)", res.Move, res.Score)
	}
}

func TestSearchTerminalRoots(t *testing.T) {
	stale := goosecore.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res, err := Search(context.Background(), &stale, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Move != (goosecore.Move{}) || res.Score != DrawScore {
		t.Fatalf("stalemate: got %+v", res)
	}

	mated := goosecore.MustParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	res, err = Search(context.Background(), &mated, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Move != (goosecore.Move{}) || res.Score != -MaxScore {
		t.Fatalf("checkmate: got %+v", res)
	}
}

func TestSearchDepthZeroAndBounds(t *testing.T) {
	p := goosecore.MustParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	res, err := Search(context.Background(), &p, 0)
	if err != nil || res.Score != 900 {
		t.Fatalf("depth 0: got %+v, %v", res, err)
	}
	if _, err := Search(context.Background(), &p, -1); err == nil {
		t.Fatalf("negative depth accepted")
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := goosecore.NewPosition()
	if _, err := Search(ctx, &p, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v want context.Canceled", err)
	}
}

func TestScoreString(t *testing.T) {
	cases := []struct {
		score int32
		want  string
	}{
		{150, "cp 150"},
		{-40, "cp -40"},
		{MaxScore - 1, "mate 1"},
		{MaxScore - 3, "mate 2"},
		{-(MaxScore - 2), "mate -1"},
	}
	for _, c := range cases {
		if got := ScoreString(c.score); got != c.want {
			t.Errorf("ScoreString(%d): got %q want %q", c.score, got, c.want)
		}
	}
}
