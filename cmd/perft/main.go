// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Print per-move counts at the deepest ply")
)

func main() {
	flag.Parse()

	b := board.NewBoard()
	turn := b.Turn()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := count(b, turn, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

func count(b *board.Board, turn board.Color, depth int, d bool) uint64 {
	if !d {
		return movegen.Perft(b, turn, depth)
	}

	var nodes uint64
	for _, m := range movegen.LegalMoves(b, turn) {
		u := b.Apply(m)
		sub := movegen.Perft(b, turn.Opponent(), depth-1)
		b.Undo(u)

		println(fmt.Sprintf("%v: %v", m, sub))
		nodes += sub
	}
	return nodes
}
