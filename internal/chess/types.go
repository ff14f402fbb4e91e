// Package chess provides the core board model: squares, pieces, colours
// and move application.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter returns the piece type for an uppercase piece letter,
// or Empty if the letter names no piece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return Empty
}

// BoardSize is the number of squares along each board axis.
const BoardSize = 8

// Square identifies a board square as a (rank, file) pair, each in [0,8).
//
// The axis naming follows the board's storage layout rather than standard
// chess terminology: the rank axis carries the letter coordinate
// ('a'..'h' -> 0..7) and the file axis carries the digit coordinate
// ('1'..'8' -> 0..7). So e4 is Square{Rank: 4, File: 3}.
type Square struct {
	Rank, File int
}

// NewSquare builds a Square from rank and file indices, rejecting
// out-of-range values.
func NewSquare(rank, file int) (Square, error) {
	sq := Square{Rank: rank, File: file}
	if !sq.Valid() {
		return Square{}, errInvalidSquare(rank, file)
	}
	return sq, nil
}

// Valid reports whether both coordinates are on the board.
func (sq Square) Valid() bool {
	return sq.Rank >= 0 && sq.Rank < BoardSize && sq.File >= 0 && sq.File < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board squares render as "-".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.Rank), byte('1' + sq.File)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errBadSquareName(s)
	}
	sq := Square{Rank: int(s[0]) - 'a', File: int(s[1]) - '1'}
	if !sq.Valid() {
		return Square{}, errBadSquareName(s)
	}
	return sq, nil
}

// Move is a fully resolved move: an unambiguous start/end square pair plus
// an optional promotion piece (Empty when the move is not a promotion).
type Move struct {
	Start     Square
	End       Square
	Promotion Piece
}

// String returns the move in long coordinate form, e.g. "e2e4" or "e7e8Q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter())
	}
	return s
}
