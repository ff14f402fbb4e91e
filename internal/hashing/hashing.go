// Package hashing detects scripted games that finish in the same position.
package hashing

import (
	"hash/fnv"
	"sync"
)

// signature identifies one validated game.
type signature struct {
	// hash is the FNV-1a hash of the final position's FEN
	hash uint64
	// plies is the number of half-moves played
	plies int
}

// Detector tracks the final position of every validated game and flags
// repeats. Two games are duplicates when they finish in the same position
// after the same number of half-moves. Safe for concurrent use.
type Detector struct {
	mu         sync.Mutex
	seen       map[uint64][]signature
	duplicates int
}

// NewDetector creates an empty duplicate detector.
func NewDetector() *Detector {
	return &Detector{seen: make(map[uint64][]signature)}
}

// CheckAndAdd records a game's final position and reports whether an
// earlier game already finished there.
func (d *Detector) CheckAndAdd(fen string, plies int) bool {
	sig := signature{hash: hashFEN(fen), plies: plies}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.seen[sig.hash] {
		if existing == sig {
			d.duplicates++
			return true
		}
	}
	d.seen[sig.hash] = append(d.seen[sig.hash], sig)
	return false
}

// DuplicateCount returns the number of duplicates flagged so far.
func (d *Detector) DuplicateCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duplicates
}

// UniqueCount returns the number of distinct games recorded.
func (d *Detector) UniqueCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, sigs := range d.seen {
		count += len(sigs)
	}
	return count
}

// Reset clears all recorded games.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[uint64][]signature)
	d.duplicates = 0
}

// hashFEN hashes a FEN string with FNV-1a.
func hashFEN(fen string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(fen)) //nolint:errcheck // fnv.Write never fails
	return h.Sum64()
}
