package chess

import (
	"fmt"

	apperrors "github.com/mpolden/notate/internal/errors"
)

// Occupant describes the piece occupying a square.
type Occupant struct {
	Piece  Piece
	Colour Colour
	// Moved records whether the piece has moved in the current game.
	// Consulted for pawn double-advance legality.
	Moved bool
}

// cell is a board square that either holds an Occupant or is empty.
type cell struct {
	occ      Occupant
	occupied bool
}

// Board is an 8x8 grid of optional pieces plus side-to-move and
// en-passant-eligibility state. A Board is owned by a single game loop and
// is not safe for concurrent use.
type Board struct {
	squares [BoardSize][BoardSize]cell

	toMove Colour

	// The square a pawn skipped over on its most recent double advance.
	epTarget Square
	epSet    bool
}

// NewBoard creates a board with the standard starting arrangement,
// white to move and no en passant target.
func NewBoard() *Board {
	b := &Board{toMove: White}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for rank := 0; rank < BoardSize; rank++ {
		b.Put(Square{Rank: rank, File: 0}, Occupant{Piece: backRank[rank], Colour: White})
		b.Put(Square{Rank: rank, File: 1}, Occupant{Piece: Pawn, Colour: White})
		b.Put(Square{Rank: rank, File: 6}, Occupant{Piece: Pawn, Colour: Black})
		b.Put(Square{Rank: rank, File: 7}, Occupant{Piece: backRank[rank], Colour: Black})
	}

	return b
}

// At returns the occupant of the given square. The second return value is
// false if the square is empty or off the board.
func (b *Board) At(sq Square) (Occupant, bool) {
	if !sq.Valid() {
		return Occupant{}, false
	}
	c := b.squares[sq.Rank][sq.File]
	return c.occ, c.occupied
}

// Put places an occupant on a square, replacing any previous occupant.
// Off-board squares are ignored.
func (b *Board) Put(sq Square, occ Occupant) {
	if !sq.Valid() {
		return
	}
	b.squares[sq.Rank][sq.File] = cell{occ: occ, occupied: true}
}

// Remove empties a square.
func (b *Board) Remove(sq Square) {
	if !sq.Valid() {
		return
	}
	b.squares[sq.Rank][sq.File] = cell{}
}

// Clear empties every square, leaving side-to-move and the en passant
// target untouched.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]cell{}
}

// SideToMove returns the colour that has the next move.
func (b *Board) SideToMove() Colour {
	return b.toMove
}

// SetSideToMove sets the colour that has the next move.
func (b *Board) SetSideToMove(c Colour) {
	b.toMove = c
}

// EnPassantTarget returns the square a pawn skipped over on its most recent
// double advance. The second return value is false if no such square exists.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.epTarget, b.epSet
}

// SetEnPassantTarget records the square a pawn skipped over on a double
// advance. Move application clears it, so a caller tracking en passant
// eligibility must set it after applying the double advance.
func (b *Board) SetEnPassantTarget(sq Square) {
	b.epTarget = sq
	b.epSet = true
}

// Apply performs a move without any legality checking: it removes whatever
// occupies the end square, relocates the piece from start to end, marks it
// moved, applies a promotion if the move carries one, clears the en passant
// target and flips the side to move. Callers are expected to have validated
// the move first.
func (b *Board) Apply(m Move) error {
	if !m.Start.Valid() {
		return errInvalidSquare(m.Start.Rank, m.Start.File)
	}
	if !m.End.Valid() {
		return errInvalidSquare(m.End.Rank, m.End.File)
	}
	occ, ok := b.At(m.Start)
	if !ok {
		return apperrors.Wrapf(apperrors.ErrInvalidSquare, "no piece on %s", m.Start)
	}

	occ.Moved = true
	if m.Promotion != Empty {
		occ.Piece = m.Promotion
	}
	b.Remove(m.Start)
	b.Put(m.End, occ)

	b.epTarget = Square{}
	b.epSet = false
	b.toMove = b.toMove.Opposite()

	return nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

func errInvalidSquare(rank, file int) error {
	return apperrors.Wrapf(apperrors.ErrInvalidSquare, "rank %d, file %d", rank, file)
}

func errBadSquareName(s string) error {
	return apperrors.Wrap(apperrors.ErrInvalidSquare, fmt.Sprintf("%q", s))
}
