package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/mpolden/notate/internal/chess"
)

const (
	squareSize = 60
	boardPx    = squareSize * chess.BoardSize

	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
)

// SVG renders the board as an SVG image with files a-h left to right and
// digit ranks 8 down to 1 top to bottom, white pieces drawn as white
// letters with a dark outline and black pieces as black letters.
func SVG(w io.Writer, b *chess.Board) {
	canvas := svg.New(w)
	canvas.Start(boardPx, boardPx)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			x := rank * squareSize
			y := (chess.BoardSize - 1 - file) * squareSize

			fill := darkFill
			if (rank+file)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			occ, ok := b.At(chess.Square{Rank: rank, File: file})
			if !ok {
				continue
			}

			colour := "black"
			if occ.Colour == chess.White {
				colour = "white"
			}
			style := fmt.Sprintf(
				"font-size:%dpx;font-family:sans-serif;text-anchor:middle;dominant-baseline:central;fill:%s;stroke:#333;stroke-width:1",
				squareSize*2/3, colour)
			canvas.Text(x+squareSize/2, y+squareSize/2, string(occ.Piece.Letter()), style)
		}
	}

	canvas.End()
}
