// Package hamming computes the Hamming distance — the number of
// positions at which two equal-length sequences differ.
//
// What
//
//   - Distance: raw mismatch count in [0, len].
//   - Normalized: mismatch count divided by the length, in [0, 1];
//     two empty sequences normalize to 0.0 by convention.
//   - Strings / Bytes convenience wrappers over the generic engine.
//
// Contract
//
//	Both operands must have the same length; ErrLengthMismatch is
//	returned otherwise. A failing equality oracle aborts the call and
//	the partial count is never exposed.
//
// Complexity
//
//   - Time:   O(n) oracle calls
//   - Memory: O(1)
//
// Errors
//
//   - ErrLengthMismatch     if the operand lengths differ.
//   - core.ErrNilEquality   if a nil oracle is supplied.
//   - core.ErrComparison    (wrapped) if the oracle fails at any index.
package hamming
