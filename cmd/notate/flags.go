// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Starting position as a FEN string (default: standard)")
	svgFile  = flag.String("svg", "", "Write the board to this SVG file after each move")

	// Script validation
	scriptFile = flag.String("script", "", "Validate a script file (one game of moves per line) and exit")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "Worker count for script validation")

	// Output options
	quiet   = flag.Bool("q", false, "Don't echo resolved moves")
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("help", false, "Show usage information")
)
