package board

import "fmt"

// Move represents a not-necessarily-legal move: a source square, a target
// square, and an optional promotion piece kind. 40 bits.
type Move struct {
	SourceRank, TargetRank Rank
	SourceFile, TargetFile File
	Promotion              Kind // NoKind unless the move is a pawn promotion.
}

// NewMove constructs a non-promoting move between two squares.
func NewMove(sr Rank, sf File, tr Rank, tf File) Move {
	return Move{SourceRank: sr, SourceFile: sf, TargetRank: tr, TargetFile: tf}
}

// NewPromotion constructs a promoting move between two squares.
func NewPromotion(sr Rank, sf File, tr Rank, tf File, promo Kind) Move {
	return Move{SourceRank: sr, SourceFile: sf, TargetRank: tr, TargetFile: tf, Promotion: promo}
}

func (m Move) Equals(o Move) bool {
	return m.SourceRank == o.SourceRank && m.SourceFile == o.SourceFile &&
		m.TargetRank == o.TargetRank && m.TargetFile == o.TargetFile &&
		m.Promotion == o.Promotion
}

// IsPromotion returns true iff the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String renders the move in pure coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v%v%v", m.SourceFile, m.SourceRank, m.TargetFile, m.TargetRank, m.Promotion)
	}
	return fmt.Sprintf("%v%v%v%v", m.SourceFile, m.SourceRank, m.TargetFile, m.TargetRank)
}

// Algebraic renders the move in dash notation, e.g. "b1-c3" or "h7-h8=Q".
func (m Move) Algebraic() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v-%v%v=%v", m.SourceFile, m.SourceRank, m.TargetFile, m.TargetRank, upperRune(m.Promotion.String()))
	}
	return fmt.Sprintf("%v%v-%v%v", m.SourceFile, m.SourceRank, m.TargetFile, m.TargetRank)
}

func upperRune(s string) string {
	return upper(s)
}
