package board

// Square represents the content of one cell of the board: an empty cell, or
// one of the 12 colored pieces. 13 values, 4 bits.
type Square uint8

const (
	Empty Square = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NumSquareValues is the size of the Square alphabet, used by the canonical
// position key encoding (4 bits/square).
const NumSquareValues = 13

// MakePiece constructs the occupant Square for a piece kind and color. It is
// the inverse of (Square.PieceKindOf, Square.ColorOf) on non-empty squares.
// MakePiece(NoKind, _) and MakePiece(_, NoColor) both return Empty.
func MakePiece(k Kind, c Color) Square {
	if k == NoKind || c == NoColor {
		return Empty
	}
	if c == White {
		return Square(k)
	}
	return Square(k) + Square(King)
}

// PieceKindOf returns the piece kind occupying the square, or NoKind if empty.
func (s Square) PieceKindOf() Kind {
	switch {
	case s == Empty:
		return NoKind
	case s <= WhiteKing:
		return Kind(s)
	default:
		return Kind(s - Square(King))
	}
}

// ColorOf returns the color occupying the square, or NoColor if empty.
func (s Square) ColorOf() Color {
	switch {
	case s == Empty:
		return NoColor
	case s <= WhiteKing:
		return White
	default:
		return Black
	}
}

// IsEmpty returns true iff no piece occupies the square.
func (s Square) IsEmpty() bool {
	return s == Empty
}

// String renders the square the way a FEN board diagram would: uppercase for
// White, lowercase for Black, '.' for empty.
func (s Square) String() string {
	if s.IsEmpty() {
		return "."
	}
	str := s.PieceKindOf().String()
	if s.ColorOf() == White {
		return upper(str)
	}
	return str
}

func upper(s string) string {
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// Rank represents a chess board rank, 1 (White's back rank) through 8.
type Rank uint8

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r-'1') + Rank1, true
}

func (r Rank) IsValid() bool {
	return Rank1 <= r && r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('0' + r))
}

// File represents a chess board file, 1 (queenside, "a") through 8 ("h").
type File uint8

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func ParseFile(r rune) (File, bool) {
	if r < 'a' || r > 'h' {
		return 0, false
	}
	return File(r-'a') + FileA, true
}

func (f File) IsValid() bool {
	return FileA <= f && f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a' + f - FileA))
}
