package core

import "errors"

// Sentinel errors shared by every distance engine.
var (
	// ErrNilEquality is returned when a nil equality function is supplied.
	ErrNilEquality = errors.New("core: nil equality function")

	// ErrComparison marks a failed element comparison. Engines wrap the
	// underlying cause with this sentinel and abort the current call;
	// a failure is never treated as "not equal".
	ErrComparison = errors.New("core: element comparison failed")
)

// Eq reports whether two elements are equal. The error return models
// equality tests that can themselves fail (e.g. a caller-supplied rich
// comparison); engines propagate such failures eagerly and discard any
// partial result.
//
// An Eq must be deterministic for the duration of one engine call.
type Eq[E any] func(x, y E) (bool, error)

// Strict returns an infallible Eq backed by the == operator. It serves
// the codepoint (rune), byte, and any other comparable element kinds.
func Strict[E comparable]() Eq[E] {
	return func(x, y E) (bool, error) { return x == y, nil }
}

// Runes converts s to the codepoint sequence the engines operate on.
// No Unicode normalization is performed.
func Runes(s string) []rune { return []rune(s) }
