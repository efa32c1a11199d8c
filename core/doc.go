// Package core defines the single capability every seqdist engine
// requires from its element type: a fallible equality test.
//
// What
//
//   - Eq[E] — "are x and y equal?" with an error return, so equality
//     backed by a caller-supplied predicate can fail without being
//     silently coerced into "not equal".
//   - Strict[E] — the infallible oracle for comparable element kinds
//     (runes, bytes, ints, ...), backed by Go's == operator.
//   - Runes — string → codepoint-sequence adapter.
//
// Why
//
//	The distance engines never copy or inspect sequence contents on
//	their own; they only need random-access equality at two indices.
//	Modeling that as one small function type keeps every DP core
//	generic over element kind instead of duplicated per type.
//
// Errors
//
//   - ErrNilEquality — a nil Eq was supplied to an engine.
//   - ErrComparison  — wraps the cause when an equality test fails
//     mid-algorithm; the current call aborts, partial results are
//     discarded, and errors.Is finds both this sentinel and the cause.
package core
