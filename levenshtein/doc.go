// Package levenshtein computes the edit distance between two sequences:
// the minimum number of single-element insertions, deletions and
// substitutions transforming one into the other.
//
// What
//
//   - Distance: single-row Wagner–Fischer DP over a scratch buffer of
//     min(len1,len2)+1 integers. With a non-negative MaxDist the engine
//     short-circuits before any DP when the length gap alone exceeds
//     the bound, and aborts after any DP row whose minimum exceeds it —
//     cost is then bounded by the diagonal band actually explored, not
//     O(len1·len2).
//   - Normalized: edit distance scaled into [0, 1], where 0 means equal
//     and 1 completely different. Two methods:
//   - ShortestAlignment: distance / max(len1, len2). Cheap.
//   - LongestAlignment: a second parallel DP tracks, per cell, the
//     length of the longest alignment achieving the minimal cost;
//     the result is final cost / final alignment length. Roughly
//     double the memory, same asymptotic time, and more sensitive
//     to parallel runs of matches (Heeringa 2004, p. 130 sq).
//   - Strings / Bytes convenience wrappers over the generic engine.
//
// Contract
//
//	Operands are swapped internally so the first is never shorter; the
//	distance is symmetric, the swap only bounds scratch size. Empty
//	sequences are explicit base cases: the distance is the other
//	operand's length, still subject to MaxDist.
//
// Complexity (n = longer length, m = shorter length)
//
//   - Time:   O(n·m) oracle calls worst case; O(band) with MaxDist
//   - Memory: O(m) — one row (Distance) or two rows (LongestAlignment)
//
// Errors
//
//   - ErrBoundExceeded        distance is known to exceed MaxDist — a
//     normal outcome, not a failure (check with errors.Is).
//   - ErrBadMethod            Method outside {ShortestAlignment, LongestAlignment}.
//   - ErrBoundWithNormalized  a distance bound combined with
//     normalization; the combination is rejected, never guessed at.
//   - core.ErrNilEquality     nil oracle.
//   - core.ErrComparison      (wrapped) oracle failure mid-DP; partial
//     state is discarded.
package levenshtein
