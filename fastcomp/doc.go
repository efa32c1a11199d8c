// Package fastcomp decides whether the edit distance between two
// sequences is 0, 1 or 2 — or greater — without running a general DP.
//
// What
//
//	The operands are ordered so the first is not shorter; the length
//	difference ldiff > 2 rejects immediately. Otherwise a small fixed
//	catalogue of edit-operation shapes is tried, one set per ldiff:
//
//	  ldiff 0: insert+delete, delete+insert, replace+replace
//	  ldiff 1: delete+replace, replace+delete
//	  ldiff 2: delete+delete
//
//	Each shape is a script of at most two non-match operations. The
//	evaluator walks both sequences in lockstep; every mismatch consumes
//	the shape's next scripted operation (delete advances the longer
//	operand, insert the shorter, replace both) and a shape is abandoned
//	past two mismatches. Leftover suffix is charged against the shape's
//	remaining operation budget. The result is the minimum mismatch
//	count over the shapes that complete.
//
//	With Transpositions enabled (and ldiff != 2, where only deletions
//	can occur) a lookahead detects an adjacent swap and advances both
//	indices by two at unit cost — that path always dominates, since a
//	transposition costs 1 where the scripted alternative costs 2.
//
// Why
//
//	When the true distance is known or expected to be small this is
//	roughly an order of magnitude cheaper than the full DP engine and
//	allocates no O(len) scratch at all.
//
// Complexity
//
//   - Time:   O(len) oracle calls per shape, at most three shapes
//   - Memory: O(1)
//
// Errors
//
//   - ErrBoundExceeded     the true distance is greater than 2 — a
//     normal outcome, not a failure.
//   - core.ErrNilEquality  nil oracle.
//   - core.ErrComparison   (wrapped) oracle failure mid-walk.
package fastcomp
