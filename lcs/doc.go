// Package lcs finds the longest common substring of two sequences —
// contiguous runs, not subsequences — and enumerates every position
// pair attaining the maximum run length.
//
// What
//
//   - Find: column-compacted DP where column[j] is the length of the
//     common run ending at (i, j). A strictly longer run clears and
//     reseeds the tie set; an equal run appends to it, so the result
//     holds all tied maxima, not just the first.
//   - Strings: codepoint wrapper reporting 0-indexed start positions in
//     caller operand order.
//   - Substrings: the deduplicated matched substrings themselves.
//
// Contract
//
//	Operands are swapped internally so the scratch column is bounded by
//	the shorter length; reported positions are translated back to the
//	caller's operand order. If the shorter sequence is empty the result
//	is run length 0 with no positions — never a "whole string" fallback.
//
// Complexity (n = longer length, m = shorter length)
//
//   - Time:   O(n·m) oracle calls
//   - Memory: O(m) scratch + O(ties) result
//
// Errors
//
//   - core.ErrNilEquality  nil oracle.
//   - core.ErrComparison   (wrapped) oracle failure; the partial tie
//     set is discarded.
package lcs
