package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chess-rules/engine"
	"chess-rules/goosecore"
	"chess-rules/perft"
)

// defaultGoDepth is used when "go" names no depth.
const defaultGoDepth = 3

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := goosecore.NewPosition() // the game board

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name GooseRules")
			fmt.Fprintln(out, "id author Goose")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = goosecore.NewPosition()
		case "quit":
			return
		case "d":
			b := board.Board()
			fmt.Fprint(out, b.String())
			fmt.Fprintln(out, "Fen:", board.ToFEN())
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			board = next
		case "go":
			handleGo(out, &board, tokens[1:])
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

// parsePosition builds the position named by "position startpos|fen ... [moves ...]".
// Nothing is committed unless every move applies.
func parsePosition(args []string) (goosecore.Position, error) {
	if len(args) == 0 {
		return goosecore.Position{}, fmt.Errorf("Malformed position command")
	}
	var p goosecore.Position
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		p = goosecore.NewPosition()
		rest = args[1:]
	case "fen":
		end := len(args)
		for i := 1; i < len(args); i++ {
			if strings.ToLower(args[i]) == "moves" {
				end = i
				break
			}
		}
		fen := strings.Join(args[1:end], " ")
		if fen == "" {
			return goosecore.Position{}, fmt.Errorf("Invalid fen position")
		}
		var err error
		p, err = goosecore.ParseFEN(fen)
		if err != nil {
			return goosecore.Position{}, fmt.Errorf("Invalid fen position: %v", err)
		}
		rest = args[end:]
	default:
		return goosecore.Position{}, fmt.Errorf("Invalid position subcommand %s", args[0])
	}

	if len(rest) == 0 {
		return p, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return goosecore.Position{}, fmt.Errorf("Unexpected token %s", rest[0])
	}
	for _, moveStr := range rest[1:] {
		m, err := p.FindLegalMove(moveStr)
		if err != nil {
			return goosecore.Position{}, fmt.Errorf("Move %s not found for position %s", moveStr, p.ToFEN())
		}
		if err := p.MakeMove(m); err != nil {
			return goosecore.Position{}, fmt.Errorf("Move %s failed: %v", moveStr, err)
		}
	}
	return p, nil
}

func handleGo(out io.Writer, board *goosecore.Position, args []string) {
	depth := defaultGoDepth
	doPerft := false
	for i := 0; i < len(args); i++ {
		option := strings.ToLower(args[i])
		switch option {
		case "perft", "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(out, "info string Malformed go command option", option)
				return
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				fmt.Fprintln(out, "info string Malformed go command option; could not convert", option)
				return
			}
			depth = n
			doPerft = doPerft || option == "perft"
			i++
		default:
			fmt.Fprintln(out, "info string Unknown go subcommand", args[i])
		}
	}

	if doPerft {
		results, err := perft.Divide(board, depth)
		if err != nil {
			fmt.Fprintln(out, "info string", err)
			return
		}
		if err := perft.WriteDivide(out, results); err != nil {
			fmt.Fprintln(out, "info string", err)
		}
		return
	}

	res, err := engine.Search(context.Background(), board, depth)
	if err != nil {
		fmt.Fprintln(out, "info string", err)
		return
	}
	fmt.Fprintln(out, "info depth", depth, "score", engine.ScoreString(res.Score), "nodes", res.Nodes)
	if res.Move == (goosecore.Move{}) {
		fmt.Fprintln(out, "bestmove 0000")
		return
	}
	fmt.Fprintln(out, "bestmove", res.Move)
}
