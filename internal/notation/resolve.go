// Package notation resolves algebraic move tokens against a board.
//
// The accepted notation is a lenient variant of standard algebraic
// notation: the capture marker 'x' is skipped whether or not anything is
// captured, and trailing characters such as '+' or '#' are ignored. The
// grammar follows the board's axis convention, where the letter coordinate
// is the rank axis and the digit coordinate is the file axis.
package notation

import (
	"github.com/mpolden/notate/internal/chess"
	"github.com/mpolden/notate/internal/engine"
	apperrors "github.com/mpolden/notate/internal/errors"
)

// unknown marks a start-square coordinate the token did not pin down.
const unknown = -1

// hint carries the partial start square extracted from a token. Either
// coordinate may be unknown; disambiguation scans the remaining axes.
type hint struct {
	rank, file int
}

// token is the result of scanning a move string, before disambiguation.
type token struct {
	piece     chess.Piece
	start     hint
	end       chess.Square
	promotion chess.Piece
}

// Resolve parses an algebraic move token and disambiguates its starting
// square against the given board, producing a fully specified move. The
// board is read but never mutated, on success and on every failure path.
//
// Failures are classified: a token the scanner cannot read yields
// errors.ErrMalformedToken, a move no piece can perform yields
// errors.ErrNoLegalSource, and a move several pieces can perform yields an
// errors.AmbiguousError.
func Resolve(b *chess.Board, move string) (chess.Move, error) {
	tok, err := scan(move, b.SideToMove())
	if err != nil {
		return chess.Move{}, err
	}

	start, err := deduceStart(b, tok)
	if err != nil {
		return chess.Move{}, &apperrors.ResolveError{Err: err, Token: move}
	}

	return chess.Move{Start: start, End: tok.end, Promotion: tok.promotion}, nil
}

// scan performs a single left-to-right pass over the move string. There is
// no backtracking: a letter first read as the destination rank is
// re-labelled as a start hint when the characters that follow prove it was
// one.
func scan(move string, toMove chess.Colour) (token, error) {
	tok := token{
		piece: chess.Pawn,
		start: hint{rank: unknown, file: unknown},
	}

	pos := 0

	currentChar := func() byte {
		if pos >= len(move) {
			return 0
		}
		return move[pos]
	}

	advance := func() {
		if pos < len(move) {
			pos++
		}
	}

	malformed := func(expected string) (token, error) {
		return token{}, &apperrors.ResolveError{
			Err:      apperrors.ErrMalformedToken,
			Token:    move,
			Pos:      pos,
			Expected: expected,
		}
	}

	// Skip leading whitespace
	for isSpace(currentChar()) {
		advance()
	}

	// Look for a piece indicator; absence means a pawn move
	if piece := chess.PieceFromLetter(currentChar()); piece != chess.Empty && piece != chess.Pawn {
		tok.piece = piece
		advance()
	}

	// Skip capture indication if present
	if currentChar() == 'x' {
		advance()
	}

	// A leading digit is a starting file hint
	if isFile(currentChar()) {
		tok.start.file = int(currentChar() - '1')
		advance()
	}

	// Destination rank
	if !isRank(currentChar()) {
		return malformed("rank of destination square")
	}
	tok.end.Rank = int(currentChar() - 'a')
	advance()

	// A second letter means the first was actually the starting rank
	if isRank(currentChar()) {
		tok.start.rank = tok.end.Rank
		tok.end.Rank = int(currentChar() - 'a')
		advance()
	}

	// Destination file
	if !isFile(currentChar()) {
		return malformed("file of destination square")
	}
	tok.end.File = int(currentChar() - '1')
	advance()

	// A further rank/file pair demotes what we have so far to the
	// starting square
	if isRank(currentChar()) {
		tok.start.rank = tok.end.Rank
		tok.end.Rank = int(currentChar() - 'a')
		advance()
		if !isFile(currentChar()) {
			return malformed("file of destination square")
		}
		tok.start.file = tok.end.File
		tok.end.File = int(currentChar() - '1')
		advance()
	}

	// A pawn arriving on the promotion file must name its promotion piece
	if tok.piece == chess.Pawn && tok.end.File == promotionFile(toMove) {
		if currentChar() == '=' {
			advance()
		}
		switch promoted := chess.PieceFromLetter(currentChar()); promoted {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			tok.promotion = promoted
			advance()
		default:
			return malformed("promotion piece")
		}
	}

	// Anything left over ('+', '#', annotations) is ignored

	return tok, nil
}

// promotionFile returns the file index a pawn of the given colour
// promotes on.
func promotionFile(c chess.Colour) int {
	if c == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// deduceStart finds the unique square holding a piece of the required kind
// and the side to move's colour that can reach the destination, under the
// token's start hints. Squares the hints pin down are checked directly;
// unknown axes are scanned.
func deduceStart(b *chess.Board, tok token) (chess.Square, error) {
	var (
		found int
		start chess.Square
	)

	try := func(sq chess.Square) {
		occ, ok := b.At(sq)
		if !ok || occ.Piece != tok.piece || occ.Colour != b.SideToMove() {
			return
		}
		if engine.Reachable(b, sq, tok.end) {
			found++
			start = sq
		}
	}

	switch {
	case tok.start.rank != unknown && tok.start.file != unknown:
		try(chess.Square{Rank: tok.start.rank, File: tok.start.file})

	case tok.start.rank != unknown:
		for file := 0; file < chess.BoardSize; file++ {
			try(chess.Square{Rank: tok.start.rank, File: file})
		}

	case tok.start.file != unknown:
		for rank := 0; rank < chess.BoardSize; rank++ {
			try(chess.Square{Rank: rank, File: tok.start.file})
		}

	default:
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				try(chess.Square{Rank: rank, File: file})
			}
		}
	}

	switch found {
	case 0:
		return chess.Square{}, apperrors.ErrNoLegalSource
	case 1:
		return start, nil
	default:
		return chess.Square{}, &apperrors.AmbiguousError{Count: found}
	}
}

// isRank returns true if c is a valid rank (letter) character.
func isRank(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isFile returns true if c is a valid file (digit) character.
func isFile(c byte) bool {
	return c >= '1' && c <= '8'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
