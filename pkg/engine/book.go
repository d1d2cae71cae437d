package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/herohde/chesscore/pkg/notation"
)

// Book represents an opening book: an external collaborator the engine
// consults before falling back to search. Lookup returns a single move and
// true if the book has a recommendation for the given position; once it
// returns false, it should not be consulted again for the rest of the game.
type Book interface {
	Lookup(ctx context.Context, b *board.Board) (board.Move, bool)
}

// Line represents an opening line from the starting position: e2e4 d7d5.
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// NoBook is an empty opening book.
var NoBook Book = emptyBook{}

type emptyBook struct{}

func (emptyBook) Lookup(context.Context, *board.Board) (board.Move, bool) {
	return board.Move{}, false
}

// NewBook builds an opening book from a set of opening lines, each starting
// from the standard position. The move recommended for a reached position
// is the highest-ranked (by OrderingKey) among all moves lines agree on
// continuing with.
func NewBook(lines []Line) (Book, error) {
	best := map[bookKey]board.Move{}
	bestKey := map[bookKey]eval.Score{}

	for _, line := range lines {
		b := board.NewBoard()
		for _, str := range line {
			next, err := notation.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("invalid line %q: %w", line, err)
			}

			found := false
			for _, candidate := range movegen.LegalMoves(b, b.Turn()) {
				if !candidate.Equals(next) {
					continue
				}
				found = true

				k := keyOf(b)
				score := eval.OrderingKey(b, candidate)
				if prior, ok := bestKey[k]; !ok || score > prior {
					best[k] = candidate
					bestKey[k] = score
				}

				b.Apply(candidate)
				break
			}
			if !found {
				return nil, fmt.Errorf("invalid line %q: move %v not legal", line, next)
			}
		}
	}
	return &book{moves: best}, nil
}

type bookKey struct {
	pos  board.PositionKey
	turn board.Color
}

func keyOf(b *board.Board) bookKey {
	return bookKey{pos: b.CanonicalKey(), turn: b.Turn()}
}

type book struct {
	moves map[bookKey]board.Move
}

func (b *book) Lookup(_ context.Context, pos *board.Board) (board.Move, bool) {
	m, ok := b.moves[keyOf(pos)]
	return m, ok
}
