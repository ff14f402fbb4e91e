// Package errors provides sentinel errors and error types for the notate
// module. It defines the resolution failure taxonomy and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedToken indicates a move token the scanner could not read:
	// a required rank, file or promotion letter was missing or invalid.
	ErrMalformedToken = errors.New("malformed move token")

	// ErrNoLegalSource indicates that no piece of the required kind and
	// colour can reach the destination under the given hints.
	ErrNoLegalSource = errors.New("no piece found to perform the move")

	// ErrAmbiguousSource indicates that more than one candidate piece can
	// reach the destination.
	ErrAmbiguousSource = errors.New("ambiguous move")

	// ErrInvalidSquare indicates a square outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")
)

// ResolveError wraps a resolution failure with the offending token and,
// for scan failures, the position and expectation that caused it. It
// supports unwrapping via errors.Is() and errors.As().
type ResolveError struct {
	Err      error  // The underlying error
	Token    string // The move token being resolved
	Pos      int    // Byte offset into the token (scan failures only)
	Expected string // What the scanner expected (scan failures only)
}

// Error returns a formatted error message including all available context.
func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("move %q", e.Token)
	if e.Expected != "" {
		msg += fmt.Sprintf(": expected %s at offset %d", e.Expected, e.Pos)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ResolveError wrapper.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// AmbiguousError reports how many candidate pieces could perform a move.
// It unwraps to ErrAmbiguousSource.
type AmbiguousError struct {
	Count int // Number of candidate starting squares found
}

// Error returns a formatted error message with the candidate count.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%v: found %d possibilities", ErrAmbiguousSource, e.Count)
}

// Unwrap returns ErrAmbiguousSource.
func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguousSource
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
