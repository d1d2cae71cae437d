package board

// Kind represents a chess piece kind (Pawn, Knight, ...), without color. NoKind
// is the sentinel kind for an empty square. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, in the order the move
// generator emits them: Rook, Bishop, Knight, Queen.
var PromotionKinds = [4]Kind{Rook, Bishop, Knight, Queen}

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

// IsPromotable returns true iff the kind is a legal pawn promotion target.
func (k Kind) IsPromotable() bool {
	return k == Rook || k == Bishop || k == Knight || k == Queen
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}
