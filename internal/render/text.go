// Package render draws board snapshots as text or SVG.
package render

import (
	"strings"
	"unicode"

	"github.com/mpolden/notate/internal/chess"
)

// Text renders the board as a character grid: files a-h as column headers,
// digit ranks 8 down to 1, uppercase letters for white pieces, lowercase
// for black and '*' for empty squares.
func Text(b *chess.Board) string {
	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for file := chess.BoardSize - 1; file >= 0; file-- {
		sb.WriteByte(byte('1' + file))
		for rank := 0; rank < chess.BoardSize; rank++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareChar(b, chess.Square{Rank: rank, File: file}))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func squareChar(b *chess.Board, sq chess.Square) byte {
	occ, ok := b.At(sq)
	if !ok {
		return '*'
	}
	letter := occ.Piece.Letter()
	if occ.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
