package chess

import (
	"fmt"
	"strings"
	"unicode"

	apperrors "github.com/mpolden/notate/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a board from a FEN string. The piece placement, side to
// move and en passant fields are honoured; castling rights and move clocks
// are accepted but ignored since the board does not model them.
//
// FEN carries no movement history, so each piece's Moved flag is inferred:
// a piece standing on one of its kind's standard starting squares is
// treated as unmoved.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidFEN, "empty FEN string")
	}

	b := &Board{toMove: White}

	if err := parsePiecePositions(b, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			b.toMove = White
		case "b":
			b.toMove = Black
		default:
			return nil, apperrors.Wrapf(apperrors.ErrInvalidFEN, "invalid side to move %q", parts[1])
		}
	}

	if len(parts) >= 4 && parts[3] != "-" {
		target, err := ParseSquare(parts[3])
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrInvalidFEN, "invalid en passant square %q", parts[3])
		}
		b.SetEnPassantTarget(target)
	}

	return b, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN rows run from the eighth digit-rank down to the first, which is file
// index 7 down to 0 here; columns run along the letter axis.
func parsePiecePositions(b *Board, positions string) error {
	home := NewBoard()
	file := BoardSize - 1
	rank := 0

	for _, c := range positions {
		switch {
		case c == '/':
			file--
			rank = 0
		case c >= '1' && c <= '8':
			rank += int(c - '0')
		default:
			piece := PieceFromLetter(byte(unicode.ToUpper(c)))
			if piece == Empty {
				return apperrors.Wrapf(apperrors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if rank >= BoardSize || file < 0 {
				return apperrors.Wrap(apperrors.ErrInvalidFEN, "position out of bounds")
			}

			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}

			sq := Square{Rank: rank, File: file}
			occ := Occupant{Piece: piece, Colour: colour}
			if start, ok := home.At(sq); !ok || start != occ {
				occ.Moved = true
			}
			b.Put(sq, occ)
			rank++
		}
	}
	return nil
}

// FEN returns the FEN representation of the board. Castling rights are not
// modelled and always render as "-"; the move clocks render as "0 1".
func (b *Board) FEN() string {
	var sb strings.Builder

	for file := BoardSize - 1; file >= 0; file-- {
		emptyCount := 0
		for rank := 0; rank < BoardSize; rank++ {
			occ, ok := b.At(Square{Rank: rank, File: file})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := occ.Piece.Letter()
			if occ.Colour == Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if file > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.toMove == Black {
		side = "b"
	}

	ep := "-"
	if target, ok := b.EnPassantTarget(); ok {
		ep = target.String()
	}

	fmt.Fprintf(&sb, " %s - %s 0 1", side, ep)
	return sb.String()
}
