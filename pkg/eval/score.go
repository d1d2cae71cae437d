package eval

import (
	"fmt"
	"github.com/herohde/chesscore/pkg/board"
)

// Score is a signed position or move score in pawns, always from White's
// perspective: positive favors White, negative favors Black.
type Score float32

const (
	// MateScore is the magnitude returned for a checkmated position; its sign
	// favors whoever delivered the mate.
	MateScore Score = 1000000

	MinScore Score = -MateScore
	MaxScore Score = MateScore

	NegInf = MinScore - 1
	Inf    = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", s)
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	} else {
		return -1
	}
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
