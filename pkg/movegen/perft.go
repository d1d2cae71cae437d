package movegen

import "github.com/herohde/chesscore/pkg/board"

// Perft counts the leaf nodes reachable in exactly depth plies from b,
// descending through fully legal moves only. depth 0 counts the position
// itself as a single node. Used to cross-check the generator against known
// node counts at shallow depths.
func Perft(b *board.Board, side board.Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var count uint64
	for _, m := range LegalMoves(b, side) {
		u := b.Apply(m)
		count += Perft(b, side.Opponent(), depth-1)
		b.Undo(u)
	}
	return count
}
