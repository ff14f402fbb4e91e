// script.go - Batch validation of scripted games
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mpolden/notate/internal/game"
	"github.com/mpolden/notate/internal/hashing"
	"github.com/mpolden/notate/internal/worker"
)

// runScript validates every game in a script file, one game per line, each
// line a whitespace-separated sequence of move tokens. Games are replayed
// in parallel, each on its own board. Returns the process exit code.
func runScript(path string, workers int, out io.Writer) int {
	if _, err := newGame(*startFEN); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *startFEN, err)
		return 1
	}

	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script file %s: %v\n", path, err)
		return 1
	}
	defer file.Close()

	items := readScript(file)
	results := validateAll(items, workers)

	detector := hashing.NewDetector()
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(out, "line %d: %v\n", res.Index+1, res.Err)
			continue
		}
		if detector.CheckAndAdd(res.FEN, res.Played) {
			fmt.Fprintf(out, "line %d: duplicate of an earlier game\n", res.Index+1)
			continue
		}
		if !*quiet {
			fmt.Fprintf(out, "line %d: %d move(s) ok, final position %s\n",
				res.Index+1, res.Played, res.FEN)
		}
	}
	fmt.Fprintf(out, "%d game(s) validated, %d failed, %d duplicate(s).\n",
		len(results), failed, detector.DuplicateCount())

	if failed > 0 {
		return 1
	}
	return 0
}

// readScript reads one work item per non-blank line. The line number is
// kept as the item index so failures can be reported against the file.
func readScript(r io.Reader) []worker.WorkItem {
	var items []worker.WorkItem

	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		items = append(items, worker.WorkItem{Tokens: tokens, Index: line})
	}

	return items
}

// validateAll replays every item on a fresh board using a worker pool and
// returns the results ordered by line.
func validateAll(items []worker.WorkItem, workers int) []worker.ProcessResult {
	pool := worker.NewPool(replayItem, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]worker.ProcessResult, 0, len(items))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	return results
}

// replayItem plays one scripted game from the standard starting position.
func replayItem(item worker.WorkItem) worker.ProcessResult {
	g := newScriptGame()

	for i, token := range item.Tokens {
		if _, err := g.Play(token); err != nil {
			return worker.ProcessResult{Index: item.Index, Played: i, Err: err}
		}
	}

	return worker.ProcessResult{
		Index:  item.Index,
		Played: len(item.Tokens),
		FEN:    g.Board().FEN(),
	}
}

// newScriptGame builds the board each scripted game starts from, honouring
// the -fen flag. runScript validates the flag before any replay starts.
func newScriptGame() *game.Game {
	g, err := newGame(*startFEN)
	if err != nil {
		return game.New()
	}
	return g
}
