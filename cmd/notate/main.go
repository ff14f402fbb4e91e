// notate is an interactive chess move resolver: it reads moves in lenient
// algebraic notation, resolves each to an unambiguous start/end square pair
// and applies it to the board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mpolden/notate/internal/game"
	"github.com/mpolden/notate/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("notate version %s\n", programVersion)
		os.Exit(0)
	}

	if *scriptFile != "" {
		os.Exit(runScript(*scriptFile, *numWorkers, os.Stdout))
	}

	g, err := newGame(*startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *startFEN, err)
		os.Exit(1)
	}

	runLoop(g, os.Stdin, os.Stdout)
}

// newGame starts a game from the given FEN, or from the standard position
// when fen is empty.
func newGame(fen string) (*game.Game, error) {
	if fen == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(fen)
}

// runLoop drives the interactive game: print the board, prompt for a move,
// resolve and apply it, repeat. "quit" ends the loop.
func runLoop(g *game.Game, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, render.Text(g.Board()))
		fmt.Fprintf(out, "%s to move: ", g.Turn())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		input := scanner.Text()

		if input == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		move, err := g.Play(input)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if !*quiet {
			fmt.Fprintf(out, "Translated: %s to %s\n", move.Start, move.End)
		}

		if *svgFile != "" {
			if err := writeSVG(*svgFile, g); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing SVG file %s: %v\n", *svgFile, err)
			}
		}
	}
}

// writeSVG renders the current board to the given file.
func writeSVG(path string, g *game.Game) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	render.SVG(file, g.Board())
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: notate [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive resolver for chess moves in algebraic notation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnter moves such as e4, Nxf3, ed5 or e8=Q at the prompt.\n")
	fmt.Fprintf(os.Stderr, "Enter quit to leave the game.\n")
}
