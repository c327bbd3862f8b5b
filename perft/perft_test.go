package perft_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"chess-rules/goosecore"
	"chess-rules/perft"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	position6 = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes uint64
		long  bool
	}{
		{fen: goosecore.FENStartPos, depth: 1, nodes: 20},
		{fen: goosecore.FENStartPos, depth: 2, nodes: 400},
		{fen: goosecore.FENStartPos, depth: 3, nodes: 8902},
		{fen: goosecore.FENStartPos, depth: 4, nodes: 197281},
		{fen: goosecore.FENStartPos, depth: 5, nodes: 4865609, long: true},
		{fen: kiwipete, depth: 1, nodes: 48},
		{fen: kiwipete, depth: 2, nodes: 2039},
		{fen: kiwipete, depth: 3, nodes: 97862},
		{fen: kiwipete, depth: 4, nodes: 4085603, long: true},
		{fen: position3, depth: 4, nodes: 43238},
		{fen: position3, depth: 5, nodes: 674624, long: true},
		{fen: position4, depth: 3, nodes: 9467},
		{fen: position4, depth: 4, nodes: 422333, long: true},
		{fen: position5, depth: 3, nodes: 62379},
		{fen: position5, depth: 4, nodes: 2103487, long: true},
		{fen: position6, depth: 3, nodes: 89890},
		{fen: position6, depth: 4, nodes: 3894594, long: true},
	}
	for _, test := range tests {
		if test.long && testing.Short() {
			continue
		}
		p := goosecore.MustParseFEN(test.fen)
		nodes, err := perft.Count(&p, test.depth)
		if err != nil {
			t.Fatalf("%s depth %d: %v", test.fen, test.depth, err)
		}
		if nodes != test.nodes {
			t.Errorf("%s depth %d: got %d want %d", test.fen, test.depth, nodes, test.nodes)
		}
	}
}

func TestCountDepthZero(t *testing.T) {
	p := goosecore.NewPosition()
	if n, err := perft.Count(&p, 0); n != 1 || err != nil {
		t.Fatalf("depth 0: got %d, %v want 1", n, err)
	}
}

func TestDivide(t *testing.T) {
	p := goosecore.NewPosition()
	results, err := perft.Divide(&p, 3)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("root moves: got %d want 20", len(results))
	}
	if results[0].Move != "a2a3" || results[0].Nodes != 380 {
		t.Fatalf("first root move: got %+v want a2a3: 380", results[0])
	}
	if got := perft.Total(results); got != 8902 {
		t.Fatalf("total: got %d want 8902", got)
	}

	var buf bytes.Buffer
	if err := perft.WriteDivide(&buf, results); err != nil {
		t.Fatalf("WriteDivide: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "a2a3: 380\n") || !strings.HasSuffix(out, "Nodes searched: 8902\n") {
		t.Fatalf("unexpected divide output:\n%s", out)
	}
}

func TestDivideParallel(t *testing.T) {
	p := goosecore.MustParseFEN(kiwipete)
	want, err := perft.Divide(&p, 3)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	for _, workers := range []int{0, 1, 4} {
		got, err := perft.DivideParallel(context.Background(), &p, 3, workers)
		if err != nil {
			t.Fatalf("DivideParallel(workers=%d): %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: got %d root moves want %d", workers, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: entry %d got %+v want %+v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestDivideParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := goosecore.NewPosition()
	if _, err := perft.DivideParallel(ctx, &p, 4, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v want context.Canceled", err)
	}
}

func TestReferenceDivideAgrees(t *testing.T) {
	fens := []string{goosecore.FENStartPos, kiwipete, position3, position4, position5, position6}
	for _, fen := range fens {
		p := goosecore.MustParseFEN(fen)
		ours, err := perft.Divide(&p, 3)
		if err != nil {
			t.Fatalf("Divide(%s): %v", fen, err)
		}
		ref, err := perft.ReferenceDivide(fen, 3)
		if err != nil {
			t.Fatalf("ReferenceDivide(%s): %v", fen, err)
		}
		if report := perft.Compare(ours, ref); !report.Clean() {
			var buf bytes.Buffer
			_ = report.Write(&buf)
			t.Fatalf("%s differs from reference:\n%s", fen, buf.String())
		}
	}
	if _, err := perft.ReferenceDivide("not a fen", 1); !errors.Is(err, goosecore.ErrInvalidFEN) {
		t.Fatalf("bad FEN: got %v want ErrInvalidFEN", err)
	}
}

func TestCompare(t *testing.T) {
	ours := []perft.Result{{Move: "e2e4", Nodes: 10}, {Move: "d2d4", Nodes: 12}, {Move: "a2a3", Nodes: 5}, {Move: "h2h3", Nodes: 4}}
	ref := []perft.Result{{Move: "d2d4", Nodes: 12}, {Move: "e2e4", Nodes: 11}, {Move: "g1f3", Nodes: 7}, {Move: "b1c3", Nodes: 7}, {Move: "h2h3", Nodes: 4}}
	r := perft.Compare(ours, ref)
	if r.Clean() {
		t.Fatalf("report should not be clean")
	}
	if len(r.OnlyOurs) != 1 || r.OnlyOurs[0] != "a2a3" {
		t.Fatalf("OnlyOurs: %v", r.OnlyOurs)
	}
	if len(r.OnlyReference) != 2 || r.OnlyReference[0] != "b1c3" || r.OnlyReference[1] != "g1f3" {
		t.Fatalf("OnlyReference: %v", r.OnlyReference)
	}
	if len(r.Mismatches) != 1 || r.Mismatches[0] != (perft.Mismatch{Move: "e2e4", Ours: 10, Reference: 11}) {
		t.Fatalf("Mismatches: %v", r.Mismatches)
	}
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "count mismatch: e2e4 ours=10 reference=11") {
		t.Fatalf("report text:\n%s", buf.String())
	}
}

func TestApplyMoves(t *testing.T) {
	p, err := perft.ApplyMoves(goosecore.NewPosition(), []string{"e2e4", "e7e5", "g1f3"})
	if err != nil {
		t.Fatalf("ApplyMoves: %v", err)
	}
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := p.ToFEN(); got != want {
		t.Fatalf("FEN: got %q want %q", got, want)
	}
	if _, err := perft.ApplyMoves(goosecore.NewPosition(), []string{"e2e4", "e2e4"}); !errors.Is(err, goosecore.ErrIllegalMove) {
		t.Fatalf("second e2e4: got %v want ErrIllegalMove", err)
	}
}
