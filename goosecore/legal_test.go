package goosecore_test

import (
	"testing"

	"chess-rules/goosecore"
)

var walkFENs = []string{
	goosecore.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// walkLegal checks the structural properties of every legal move down to depth.
func walkLegal(t *testing.T, p *goosecore.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves(%s): %v", p.ToFEN(), err)
	}
	mover := p.SideToMove()
	board := p.Board()
	own := board.ColorOccupancy(mover)
	for _, m := range moves {
		if !own.Has(m.From) {
			t.Fatalf("%s in %s does not start on a %v piece", m, p.ToFEN(), mover)
		}
		child, err := goosecore.Apply(p, m)
		if err != nil {
			t.Fatalf("legal move %s in %s failed: %v", m, p.ToFEN(), err)
		}
		if goosecore.InCheck(&child, mover) {
			t.Fatalf("%s in %s leaves the king attacked", m, p.ToFEN())
		}
		if child.SideToMove() == mover {
			t.Fatalf("%s in %s did not pass the move", m, p.ToFEN())
		}
		cb := child.Board()
		if err := cb.Validate(); err != nil {
			t.Fatalf("%s in %s: %v", m, p.ToFEN(), err)
		}
		walkLegal(t, &child, depth-1)
	}
}

func TestLegalMoveProperties(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range walkFENs {
		p := goosecore.MustParseFEN(fen)
		walkLegal(t, &p, depth)
	}
}

func TestLegalMovesReuseBuffer(t *testing.T) {
	p := goosecore.NewPosition()
	buf := make([]goosecore.Move, 0, 256)
	first, err := p.GenerateMovesInto(buf)
	if err != nil {
		t.Fatalf("GenerateMovesInto: %v", err)
	}
	if len(first) != 20 {
		t.Fatalf("start position: got %d moves want 20", len(first))
	}
	kiwi := goosecore.MustParseFEN(walkFENs[1])
	second, err := kiwi.GenerateMovesInto(first)
	if err != nil {
		t.Fatalf("GenerateMovesInto: %v", err)
	}
	if len(second) != 48 {
		t.Fatalf("kiwipete: got %d moves want 48", len(second))
	}
	pseudo := kiwi.GeneratePseudoMoves()
	if len(pseudo) < len(second) {
		t.Fatalf("pseudo-legal list shorter than legal list: %d < %d", len(pseudo), len(second))
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want goosecore.Status
	}{
		{"start", goosecore.FENStartPos, goosecore.Ongoing},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", goosecore.Checkmate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", goosecore.Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", goosecore.Stalemate},
		{"fifty moves", "4k3/8/8/8/8/8/8/4K2R w - - 100 80", goosecore.DrawBy50},
		{"mate beats fifty moves", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 80", goosecore.Checkmate},
	}
	for _, c := range cases {
		p := goosecore.MustParseFEN(c.fen)
		got, err := p.Status()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %v want %v", c.name, got, c.want)
		}
	}

	mate := goosecore.MustParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if ok, err := mate.IsCheckmate(); !ok || err != nil {
		t.Fatalf("IsCheckmate: %v, %v", ok, err)
	}
	if ok, _ := mate.IsStalemate(); ok {
		t.Fatalf("checkmate reported as stalemate")
	}
	stale := goosecore.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if ok, err := stale.IsStalemate(); !ok || err != nil {
		t.Fatalf("IsStalemate: %v, %v", ok, err)
	}
	if has, _ := stale.HasLegalMoves(); has {
		t.Fatalf("stalemated side has moves")
	}
}
