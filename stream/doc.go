// Package stream compares one fixed reference sequence against a
// lazily produced series of candidates, yielding (distance, candidate)
// pairs for the candidates that pass the configured bound.
//
// What
//
//   - Levenshtein: wraps the levenshtein engine. Candidates whose
//     distance exceeds opts.MaxDist are silently dropped; an unbounded
//     engine yields every candidate with its distance.
//   - FastComp: wraps the bounded comparator. Candidates with a true
//     distance above 2 are silently skipped — the bound sentinel never
//     surfaces to the consumer.
//   - Source: the pull-based candidate supply. One candidate is fully
//     evaluated before the next is requested, so infinite sources are
//     supported; the iterator is restartable exactly when the source
//     is. FromSlices / FromStrings build resettable in-memory sources.
//
// Concurrency
//
//	An Iter is single-consumer state over a single Source. Concurrent
//	calls that share a mutable Source must be serialized by the caller;
//	iterators over distinct sources are independent.
//
// Errors
//
//	A failing equality oracle stops iteration and surfaces the wrapped
//	core.ErrComparison from Next. Exhaustion is not an error: Next
//	reports ok == false with a nil error.
package stream
