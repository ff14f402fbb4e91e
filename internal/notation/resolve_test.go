package notation

import (
	"errors"
	"testing"

	"github.com/mpolden/notate/internal/chess"
	apperrors "github.com/mpolden/notate/internal/errors"
	"github.com/mpolden/notate/internal/testutil"
)

func mustMove(t *testing.T, start, end string) chess.Move {
	t.Helper()
	return chess.Move{
		Start: testutil.MustSquare(t, start),
		End:   testutil.MustSquare(t, end),
	}
}

func TestResolveStartingPosition(t *testing.T) {
	tests := []struct {
		token string
		want  [2]string // start, end
	}{
		{"e4", [2]string{"e2", "e4"}},
		{"d4", [2]string{"d2", "d4"}},
		{"Nf3", [2]string{"g1", "f3"}},
		{"Nc3", [2]string{"b1", "c3"}},
		{"  e4", [2]string{"e2", "e4"}},    // leading whitespace
		{"e4!?", [2]string{"e2", "e4"}},    // trailing annotations ignored
		{"Nf3+#", [2]string{"g1", "f3"}},   // trailing check markers ignored
		{"Nxf3", [2]string{"g1", "f3"}},    // capture marker never required to capture
		{"e2e4", [2]string{"e2", "e4"}},    // fully specified start square
		{"Ng1f3", [2]string{"g1", "f3"}},   // fully specified piece move
		{"Ngf3", [2]string{"g1", "f3"}},    // letter start hint
		{"N1f3", [2]string{"g1", "f3"}},    // digit start hint
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b := chess.NewBoard()
			got, err := Resolve(b, tt.token)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, mustMove(t, tt.want[0], tt.want[1]))
		})
	}
}

func TestResolveBlackToMove(t *testing.T) {
	b := chess.NewBoard()
	b.SetSideToMove(chess.Black)

	got, err := Resolve(b, "e5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, mustMove(t, "e7", "e5"))

	got, err = Resolve(b, "Nf6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, mustMove(t, "g8", "f6"))
}

func TestResolveMalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"bad destination letter", "z9"},
		{"digit only", "4"},
		{"letter only", "e"},
		{"piece letter only", "N"},
		{"truncated start pair", "Ng1f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard()
			_, err := Resolve(b, tt.token)
			testutil.AssertErrorIs(t, err, apperrors.ErrMalformedToken)

			var resErr *apperrors.ResolveError
			testutil.AssertTrue(t, errors.As(err, &resErr), "error should carry token context")
			testutil.AssertEqual(t, resErr.Token, tt.token)
		})
	}
}

func TestResolveNoLegalSource(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"queen cannot jump", "Qd4"},
		{"bishop boxed in", "Bc4"},
		{"rook boxed in", "Ra3"},
		{"no pawn on that line", "Na5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewBoard()
			_, err := Resolve(b, tt.token)
			testutil.AssertErrorIs(t, err, apperrors.ErrNoLegalSource)
		})
	}
}

func TestResolveAmbiguousSource(t *testing.T) {
	b := testutil.EmptyBoard()
	testutil.PlaceMoved(t, b, "a4", chess.Rook, chess.White)
	testutil.PlaceMoved(t, b, "h4", chess.Rook, chess.White)

	_, err := Resolve(b, "Rd4")
	testutil.AssertErrorIs(t, err, apperrors.ErrAmbiguousSource)

	var ambErr *apperrors.AmbiguousError
	testutil.AssertTrue(t, errors.As(err, &ambErr), "error should carry the candidate count")
	testutil.AssertEqual(t, ambErr.Count, 2)
}

func TestResolveSingleAdvanceIsAmbiguous(t *testing.T) {
	// Because diagonal pawn steps always count as reachable, "e3" from the
	// starting position matches the d2, e2 and f2 pawns alike. The single
	// advance needs a hint ("ee3"); only the double advance is unique.
	b := chess.NewBoard()

	_, err := Resolve(b, "e3")
	var ambErr *apperrors.AmbiguousError
	testutil.AssertTrue(t, errors.As(err, &ambErr))
	testutil.AssertEqual(t, ambErr.Count, 3)

	got, err := Resolve(b, "ee3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, mustMove(t, "e2", "e3"))
}

func TestResolveHintsDisambiguate(t *testing.T) {
	newBoard := func(t *testing.T) *chess.Board {
		b := testutil.EmptyBoard()
		testutil.PlaceMoved(t, b, "d2", chess.Rook, chess.White)
		testutil.PlaceMoved(t, b, "d6", chess.Rook, chess.White)
		testutil.PlaceMoved(t, b, "a4", chess.Rook, chess.White)
		return b
	}

	t.Run("unhinted is ambiguous", func(t *testing.T) {
		_, err := Resolve(newBoard(t), "Rd4")
		var ambErr *apperrors.AmbiguousError
		testutil.AssertTrue(t, errors.As(err, &ambErr))
		testutil.AssertEqual(t, ambErr.Count, 3)
	})

	t.Run("digit hint picks the row", func(t *testing.T) {
		got, err := Resolve(newBoard(t), "R2d4")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, mustMove(t, "d2", "d4"))
	})

	t.Run("letter hint picks the column", func(t *testing.T) {
		got, err := Resolve(newBoard(t), "Rad4")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, mustMove(t, "a4", "d4"))
	})

	t.Run("full start square", func(t *testing.T) {
		got, err := Resolve(newBoard(t), "Rd6d4")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, mustMove(t, "d6", "d4"))
	})

	t.Run("letter hint still ambiguous", func(t *testing.T) {
		_, err := Resolve(newBoard(t), "Rdd4")
		var ambErr *apperrors.AmbiguousError
		testutil.AssertTrue(t, errors.As(err, &ambErr))
		testutil.AssertEqual(t, ambErr.Count, 2)
	})

	t.Run("hint matching no piece", func(t *testing.T) {
		_, err := Resolve(newBoard(t), "Rbd4")
		testutil.AssertErrorIs(t, err, apperrors.ErrNoLegalSource)
	})
}

func TestResolvePromotion(t *testing.T) {
	newBoard := func(t *testing.T, colour chess.Colour) *chess.Board {
		b := testutil.EmptyBoard()
		if colour == chess.White {
			testutil.PlaceMoved(t, b, "e7", chess.Pawn, chess.White)
		} else {
			testutil.PlaceMoved(t, b, "e2", chess.Pawn, chess.Black)
			b.SetSideToMove(chess.Black)
		}
		return b
	}

	t.Run("white promotes with equals", func(t *testing.T) {
		got, err := Resolve(newBoard(t, chess.White), "e8=Q")
		testutil.AssertNoError(t, err)
		want := mustMove(t, "e7", "e8")
		want.Promotion = chess.Queen
		testutil.AssertEqual(t, got, want)
	})

	t.Run("white promotes without equals", func(t *testing.T) {
		got, err := Resolve(newBoard(t, chess.White), "e8N")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got.Promotion, chess.Knight)
	})

	t.Run("black promotes on the first file", func(t *testing.T) {
		got, err := Resolve(newBoard(t, chess.Black), "e1=R")
		testutil.AssertNoError(t, err)
		want := mustMove(t, "e2", "e1")
		want.Promotion = chess.Rook
		testutil.AssertEqual(t, got, want)
	})

	t.Run("missing promotion piece", func(t *testing.T) {
		_, err := Resolve(newBoard(t, chess.White), "e8")
		testutil.AssertErrorIs(t, err, apperrors.ErrMalformedToken)
	})

	t.Run("king is not a promotion piece", func(t *testing.T) {
		_, err := Resolve(newBoard(t, chess.White), "e8=K")
		testutil.AssertErrorIs(t, err, apperrors.ErrMalformedToken)
	})

	t.Run("non-pawn move to the last file needs no promotion", func(t *testing.T) {
		b := testutil.EmptyBoard()
		testutil.PlaceMoved(t, b, "e1", chess.Rook, chess.White)
		got, err := Resolve(b, "Re8")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got.Promotion, chess.Empty)
	})
}

func TestResolvePawnDiagonalQuirk(t *testing.T) {
	// A lone white pawn on e4 resolves "d5" as a diagonal step even though
	// there is nothing on d5 to capture. The checker doubles as an attack
	// predicate, so verifying the capture is the caller's job.
	b := testutil.EmptyBoard()
	testutil.PlaceMoved(t, b, "e4", chess.Pawn, chess.White)

	got, err := Resolve(b, "d5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, mustMove(t, "e4", "d5"))
}

func TestResolveIgnoresWrongColour(t *testing.T) {
	b := testutil.EmptyBoard()
	testutil.PlaceMoved(t, b, "a4", chess.Rook, chess.Black)
	testutil.PlaceMoved(t, b, "h4", chess.Rook, chess.White)

	// Only white's rook counts with white to move, so no ambiguity.
	got, err := Resolve(b, "Rd4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, mustMove(t, "h4", "d4"))
}

func TestResolveIsIdempotent(t *testing.T) {
	b := chess.NewBoard()

	first, err1 := Resolve(b, "Nf3")
	second, err2 := Resolve(b, "Nf3")

	testutil.AssertNoError(t, err1)
	testutil.AssertNoError(t, err2)
	testutil.AssertEqual(t, first, second)
}

func TestResolveNeverMutatesBoard(t *testing.T) {
	tokens := []string{"e4", "Nf3", "Qd4", "z9", "Rd4", "e8=Q", ""}

	b := chess.NewBoard()
	b.SetEnPassantTarget(testutil.MustSquare(t, "d6"))
	before := b.FEN()

	for _, token := range tokens {
		Resolve(b, token) //nolint:errcheck // only the board state matters here
		testutil.AssertEqual(t, b.FEN(), before, "token %q", token)
		testutil.AssertEqual(t, b.SideToMove(), chess.White, "token %q", token)
	}
}

func TestScanStartFileHint(t *testing.T) {
	tok, err := scan("2e4", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, tok.start, hint{rank: unknown, file: 1})
	testutil.AssertEqual(t, tok.end, testutil.MustSquare(t, "e4"))
	testutil.AssertEqual(t, tok.piece, chess.Pawn)
}

func TestScanReinterpretsStartSquare(t *testing.T) {
	// In "de5" the first letter turns out to be the starting rank.
	tok, err := scan("de5", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, tok.start, hint{rank: 3, file: unknown})
	testutil.AssertEqual(t, tok.end, testutil.MustSquare(t, "e5"))

	// In "d4e5" the first pair turns out to be the full starting square.
	tok, err = scan("d4e5", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, tok.start, hint{rank: 3, file: 3})
	testutil.AssertEqual(t, tok.end, testutil.MustSquare(t, "e5"))
}
