// Package game drives a single chess game: it owns a board and feeds move
// tokens through the resolver before applying them.
package game

import (
	"github.com/mpolden/notate/internal/chess"
	apperrors "github.com/mpolden/notate/internal/errors"
	"github.com/mpolden/notate/internal/notation"
)

// Game owns one board and applies resolved moves to it. A Game is driven
// by a single loop and is not safe for concurrent use; callers sharing one
// must serialize access themselves.
type Game struct {
	board *chess.Board
}

// New starts a game from the standard starting position.
func New() *Game {
	return &Game{board: chess.NewBoard()}
}

// NewFromFEN starts a game from the position described by a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	board, err := chess.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: board}, nil
}

// Board returns the game's board. The resolver treats it as a read-only
// snapshot; only Play mutates it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.board.SideToMove()
}

// Play resolves a move token against the current position and, if
// resolution succeeds, applies it. On failure the board is left untouched
// and the resolution error is returned. After a pawn double advance the
// en passant target is recorded on the square the pawn skipped.
func (g *Game) Play(token string) (chess.Move, error) {
	move, err := notation.Resolve(g.board, token)
	if err != nil {
		return chess.Move{}, err
	}

	epTarget, doubleAdvance := pawnSkippedSquare(g.board, move)

	if err := g.board.Apply(move); err != nil {
		return chess.Move{}, err
	}
	if doubleAdvance {
		g.board.SetEnPassantTarget(epTarget)
	}

	return move, nil
}

// Replay plays a sequence of move tokens, stopping at the first failure.
func (g *Game) Replay(tokens []string) error {
	for i, token := range tokens {
		if _, err := g.Play(token); err != nil {
			return apperrors.Wrapf(err, "ply %d", i+1)
		}
	}
	return nil
}

// pawnSkippedSquare returns the square a pawn would skip over if the move
// is a pawn double advance, and whether it is one.
func pawnSkippedSquare(b *chess.Board, m chess.Move) (chess.Square, bool) {
	occ, ok := b.At(m.Start)
	if !ok || occ.Piece != chess.Pawn {
		return chess.Square{}, false
	}
	if m.End.Rank != m.Start.Rank || abs(m.End.File-m.Start.File) != 2 {
		return chess.Square{}, false
	}
	return chess.Square{Rank: m.Start.Rank, File: (m.Start.File + m.End.File) / 2}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
