package game

import (
	"testing"

	"github.com/mpolden/notate/internal/chess"
	apperrors "github.com/mpolden/notate/internal/errors"
	"github.com/mpolden/notate/internal/testutil"
)

func TestNewFromFEN(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/3r4/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Turn(), chess.White)

	_, err = NewFromFEN("not a position")
	testutil.AssertErrorIs(t, err, apperrors.ErrInvalidFEN)
}

func TestPlay(t *testing.T) {
	g := New()

	move, err := g.Play("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.String(), "e2e4")
	testutil.AssertEqual(t, g.Turn(), chess.Black)

	if _, ok := g.Board().At(testutil.MustSquare(t, "e2")); ok {
		t.Error("e2 should be empty after playing e4")
	}
	occ, ok := g.Board().At(testutil.MustSquare(t, "e4"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, occ.Piece, chess.Pawn)
}

func TestPlaySetsEnPassantTarget(t *testing.T) {
	g := New()

	_, err := g.Play("e4")
	testutil.AssertNoError(t, err)

	target, ok := g.Board().EnPassantTarget()
	testutil.AssertTrue(t, ok, "double advance should set the en passant target")
	testutil.AssertEqual(t, target, testutil.MustSquare(t, "e3"))

	// Black's double advance replaces it
	_, err = g.Play("d5")
	testutil.AssertNoError(t, err)
	target, ok = g.Board().EnPassantTarget()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, target, testutil.MustSquare(t, "d6"))

	// Any other move clears it
	_, err = g.Play("Nf3")
	testutil.AssertNoError(t, err)
	if _, ok := g.Board().EnPassantTarget(); ok {
		t.Error("knight move should clear the en passant target")
	}
}

func TestPlayFailureLeavesBoardUntouched(t *testing.T) {
	g := New()
	before := g.Board().FEN()

	for _, token := range []string{"z9", "Qd4", "e3", ""} {
		_, err := g.Play(token)
		if err == nil {
			t.Fatalf("Play(%q) should fail", token)
		}
		testutil.AssertEqual(t, g.Board().FEN(), before, "token %q", token)
	}
}

func TestReplay(t *testing.T) {
	g := New()

	err := g.Replay([]string{"e4", "e5", "Nf3", "Nc6", "Bb5"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Turn(), chess.Black)

	occ, ok := g.Board().At(testutil.MustSquare(t, "b5"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, occ, chess.Occupant{Piece: chess.Bishop, Colour: chess.White, Moved: true})
}

func TestReplayStopsAtFirstFailure(t *testing.T) {
	g := New()

	err := g.Replay([]string{"e4", "e5", "Qd5"})
	testutil.AssertErrorIs(t, err, apperrors.ErrNoLegalSource)
	testutil.AssertContains(t, err.Error(), "ply 3")

	// The first two plies were applied before the failure
	testutil.AssertEqual(t, g.Turn(), chess.White)
	if _, ok := g.Board().At(testutil.MustSquare(t, "e4")); !ok {
		t.Error("e4 should still hold the pawn from ply 1")
	}
}

func TestPawnSkippedSquare(t *testing.T) {
	b := chess.NewBoard()

	target, ok := pawnSkippedSquare(b, chess.Move{
		Start: testutil.MustSquare(t, "e2"),
		End:   testutil.MustSquare(t, "e4"),
	})
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, target, testutil.MustSquare(t, "e3"))

	_, ok = pawnSkippedSquare(b, chess.Move{
		Start: testutil.MustSquare(t, "e2"),
		End:   testutil.MustSquare(t, "e3"),
	})
	testutil.AssertFalse(t, ok, "single advance is not a double advance")

	_, ok = pawnSkippedSquare(b, chess.Move{
		Start: testutil.MustSquare(t, "g1"),
		End:   testutil.MustSquare(t, "f3"),
	})
	testutil.AssertFalse(t, ok, "knight moves never set a target")
}
