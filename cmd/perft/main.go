package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/goosecore"
	"chess-rules/perft"
)

func main() {
	fen := flag.String("fen", goosecore.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	moves := flag.String("moves", "", "Space-separated moves to play from -fen before counting")
	verify := flag.Bool("verify", false, "Compare the root divide against dragontoothmg and exit 1 on mismatch")
	workers := flag.Int("workers", 1, "Goroutines counting root moves (0 = GOMAXPROCS)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	start, err := goosecore.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("ParseFEN: %v", err)
	}
	board, err := perft.ApplyMoves(start, strings.Fields(*moves))
	if err != nil {
		log.Fatalf("applying -moves: %v", err)
	}

	ctx := context.Background()

	if *verify {
		ours, err := perft.DivideParallel(ctx, &board, *depth, *workers)
		if err != nil {
			log.Fatalf("divide: %v", err)
		}
		ref, err := perft.ReferenceDivide(board.ToFEN(), *depth)
		if err != nil {
			log.Fatalf("reference divide: %v", err)
		}
		report := perft.Compare(ours, ref)
		if err := report.Write(os.Stdout); err != nil {
			log.Fatalf("writing report: %v", err)
		}
		if !report.Clean() {
			os.Exit(1)
		}
		return
	}

	// Optional divide output
	if *divide {
		results, err := perft.DivideParallel(ctx, &board, *depth, *workers)
		if err != nil {
			log.Fatalf("divide: %v", err)
		}
		if err := perft.WriteDivide(os.Stdout, sortedByMove(results)); err != nil {
			log.Fatalf("writing divide: %v", err)
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	began := time.Now()
	for i := 0; i < *repeat; i++ {
		results, err := perft.DivideParallel(ctx, &board, *depth, *workers)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
		totalNodes += perft.Total(results)
	}
	elapsed := time.Since(began)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatalf("creating memprofile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("write heap profile: %v", err)
		}
		_ = f.Close()
	}
}

// sortedByMove orders a divide by move text for stable output.
func sortedByMove(results []perft.Result) []perft.Result {
	byMove := make(map[string]perft.Result, len(results))
	for _, r := range results {
		byMove[r.Move] = r
	}
	keys := maps.Keys(byMove)
	slices.Sort(keys)
	sorted := make([]perft.Result, 0, len(keys))
	for _, k := range keys {
		sorted = append(sorted, byMove[k])
	}
	return sorted
}
