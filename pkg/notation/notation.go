// Package notation parses and formats moves in pure coordinate notation,
// e.g. "e2e4" or "e7e8q". No SAN or PGN: a driver talking to this engine
// names squares directly, the same form board.Move.String already renders.
package notation

import (
	"fmt"

	"github.com/herohde/chesscore/pkg/board"
)

// ParseMove parses a coordinate move such as "e2e4" or "a7a8q". The trailing
// promotion letter, if present, is one of n/b/r/q, in either case.
func ParseMove(s string) (board.Move, error) {
	runes := []rune(s)
	if len(runes) != 4 && len(runes) != 5 {
		return board.Move{}, fmt.Errorf("invalid move %q: want 4 or 5 characters", s)
	}

	sf, ok := board.ParseFile(runes[0])
	if !ok {
		return board.Move{}, fmt.Errorf("invalid move %q: bad source file", s)
	}
	sr, ok := board.ParseRank(runes[1])
	if !ok {
		return board.Move{}, fmt.Errorf("invalid move %q: bad source rank", s)
	}
	tf, ok := board.ParseFile(runes[2])
	if !ok {
		return board.Move{}, fmt.Errorf("invalid move %q: bad target file", s)
	}
	tr, ok := board.ParseRank(runes[3])
	if !ok {
		return board.Move{}, fmt.Errorf("invalid move %q: bad target rank", s)
	}

	if len(runes) == 4 {
		return board.NewMove(sr, sf, tr, tf), nil
	}

	promo, ok := board.ParseKind(runes[4])
	if !ok || !promo.IsPromotable() {
		return board.Move{}, fmt.Errorf("invalid move %q: bad promotion kind", s)
	}
	return board.NewPromotion(sr, sf, tr, tf, promo), nil
}

// FormatMove renders m in the same coordinate form ParseMove accepts.
func FormatMove(m board.Move) string {
	return m.String()
}
