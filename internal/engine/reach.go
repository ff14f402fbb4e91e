// Package engine decides whether a piece can geometrically reach a square.
package engine

import (
	"github.com/mpolden/notate/internal/chess"
)

// Reachable reports whether the piece on start could move to end under the
// basic movement rules, ignoring whatever occupies end. It returns false if
// start holds no piece. The board is never mutated.
//
// Pawns are deliberately considered able to step diagonally even when there
// is nothing to capture, so the predicate doubles as an "is end attacked by
// the piece on start" query. Callers checking move legality must verify
// separately that a diagonal pawn move has a capture (normal or en passant)
// to make, and that end is not held by a friendly piece.
func Reachable(b *chess.Board, start, end chess.Square) bool {
	occ, ok := b.At(start)
	if !ok {
		return false
	}

	rankDiff := abs(end.Rank - start.Rank)
	fileDiff := abs(end.File - start.File)

	switch occ.Piece {
	case chess.Pawn:
		dir := chess.ColourOffset(occ.Colour)
		switch {
		case rankDiff <= 1 && end.File == start.File+dir:
			return true
		case end.Rank == start.Rank && end.File == start.File+2*dir:
			// Double advance: only from the pawn's first move, through
			// an empty square.
			if occ.Moved {
				return false
			}
			_, blocked := b.At(chess.Square{Rank: start.Rank, File: start.File + dir})
			return !blocked
		default:
			return false
		}

	case chess.Knight:
		return (rankDiff == 2 && fileDiff == 1) || (rankDiff == 1 && fileDiff == 2)

	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1

	case chess.Bishop:
		if rankDiff != fileDiff || rankDiff == 0 {
			return false
		}

	case chess.Rook:
		// Exactly one axis moves.
		if (rankDiff == 0) == (fileDiff == 0) {
			return false
		}

	case chess.Queen:
		diagonal := rankDiff == fileDiff && rankDiff != 0
		straight := (rankDiff == 0) != (fileDiff == 0)
		if !diagonal && !straight {
			return false
		}

	default:
		return false
	}

	// Sliding pieces share the ray-clear walk: every square strictly
	// between start and end must be empty. The shape checks above
	// guarantee the walk terminates at end.
	return isPathClear(b, start, end)
}

// isPathClear steps from start toward end one square at a time and reports
// whether all intermediate squares (exclusive of both ends) are empty.
func isPathClear(b *chess.Board, start, end chess.Square) bool {
	rankStep := sign(end.Rank - start.Rank)
	fileStep := sign(end.File - start.File)

	sq := chess.Square{Rank: start.Rank + rankStep, File: start.File + fileStep}
	for sq != end {
		if _, occupied := b.At(sq); occupied {
			return false
		}
		sq.Rank += rankStep
		sq.File += fileStep
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
