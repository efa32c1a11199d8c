package fastcomp

import "errors"

// ErrBoundExceeded reports that the edit distance is greater than 2,
// the largest value this comparator can decide. A normal outcome, not
// a failure — check with errors.Is.
var ErrBoundExceeded = errors.New("fastcomp: distance exceeds 2")

// Options configures the comparator.
type Options struct {
	// Transpositions makes an adjacent two-element swap cost 1 instead
	// of the 2 the scripted edit operations would charge.
	Transpositions bool
}

// DefaultOptions returns the comparator defaults: plain edit distance,
// no transposition shortcut.
func DefaultOptions() Options {
	return Options{Transpositions: false}
}
