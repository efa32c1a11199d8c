package levenshtein

import "errors"

// Unbounded disables the distance cap: the DP runs until the operands
// are exhausted. Any negative MaxDist behaves the same way.
const Unbounded = -1

// Sentinel errors for the edit-distance engine.
var (
	// ErrBoundExceeded reports that the distance is known to be greater
	// than the configured MaxDist. It is a normal outcome, not a
	// failure — the analogue of sql.ErrNoRows.
	ErrBoundExceeded = errors.New("levenshtein: distance exceeds max distance")

	// ErrBadMethod is returned for a normalization method outside
	// {ShortestAlignment, LongestAlignment}.
	ErrBadMethod = errors.New("levenshtein: unknown normalization method")

	// ErrBoundWithNormalized rejects combining MaxDist with a
	// normalized distance; the combination has no defined semantics.
	ErrBoundWithNormalized = errors.New("levenshtein: max distance cannot be combined with normalization")
)

// Method selects the normalization factor used by Normalized.
type Method int

const (
	// ShortestAlignment divides by the length of the shortest possible
	// alignment, i.e. the length of the longer sequence. Cheap: one DP.
	ShortestAlignment Method = iota + 1

	// LongestAlignment divides by the length of the longest alignment
	// achieving the minimal edit cost. Costs a second DP row but
	// accounts better for parallelisms between the sequences.
	LongestAlignment
)

// Options configures the engine. The zero value of Method means
// "unset" and falls back to ShortestAlignment.
type Options struct {
	// MaxDist caps the distance Distance is willing to compute; when
	// the true distance is larger, Distance returns ErrBoundExceeded
	// early instead of finishing the DP. Negative values (Unbounded)
	// disable the cap. Normalized rejects a non-negative MaxDist.
	MaxDist int

	// Method selects the normalization factor; ignored by Distance.
	Method Method
}

// DefaultOptions returns the engine defaults: no distance cap and
// ShortestAlignment normalization.
func DefaultOptions() Options {
	return Options{MaxDist: Unbounded, Method: ShortestAlignment}
}
