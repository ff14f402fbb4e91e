package testutil

import (
	"testing"

	"github.com/mpolden/notate/internal/chess"
)

// EmptyBoard returns a board with no pieces, white to move.
func EmptyBoard() *chess.Board {
	b := chess.NewBoard()
	b.Clear()
	return b
}

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// Place puts a piece on the named square.
func Place(t *testing.T, b *chess.Board, name string, piece chess.Piece, colour chess.Colour) {
	t.Helper()
	b.Put(MustSquare(t, name), chess.Occupant{Piece: piece, Colour: colour})
}

// PlaceMoved puts a piece that has already moved on the named square.
func PlaceMoved(t *testing.T, b *chess.Board, name string, piece chess.Piece, colour chess.Colour) {
	t.Helper()
	b.Put(MustSquare(t, name), chess.Occupant{Piece: piece, Colour: colour, Moved: true})
}
