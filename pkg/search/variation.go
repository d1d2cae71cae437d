package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
)

// PV is the result of a completed search: the principal line found from the
// root, its score, and bookkeeping about the work done to find it.
type PV struct {
	Depth     int
	Score     eval.Score
	Variation []board.Move // Variation[0] is the move to play, if non-empty.
	Nodes     uint64
	Time      time.Duration
}

// Move returns the move to play and whether one was found. A search that
// starts with no legal moves returns false.
func (p PV) Move() (board.Move, bool) {
	if len(p.Variation) == 0 {
		return board.Move{}, false
	}
	return p.Variation[0], true
}

func (p PV) String() string {
	var sb strings.Builder
	for i, m := range p.Variation {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.Algebraic())
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=[%v]", p.Depth, p.Score, p.Nodes, p.Time, sb.String())
}
