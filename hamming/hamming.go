package hamming

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqdist/core"
)

// ErrLengthMismatch is returned when the two operands differ in length;
// Hamming distance is undefined for unequal lengths.
var ErrLengthMismatch = errors.New("hamming: sequences must have the same length")

// Distance counts the positions at which a and b hold unequal elements.
// Two empty sequences are at distance 0.
//
// Complexity: O(n) oracle calls, O(1) memory.
func Distance[E any](a, b []E, eq core.Eq[E]) (int, error) {
	if eq == nil {
		return 0, core.ErrNilEquality
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	dist := 0
	for i := range a {
		same, err := eq(a[i], b[i])
		if err != nil {
			return 0, fmt.Errorf("hamming: %w: %w", core.ErrComparison, err)
		}
		if !same {
			dist++
		}
	}

	return dist, nil
}

// Normalized returns Distance divided by the common length, a value in
// [0, 1] where 0 means equal and 1 completely different. Two empty
// sequences normalize to 0.0 (never a division by zero).
func Normalized[E any](a, b []E, eq core.Eq[E]) (float64, error) {
	dist, err := Distance(a, b, eq)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}

	return float64(dist) / float64(len(a)), nil
}

// Strings computes the codepoint-wise Hamming distance of two strings.
func Strings(a, b string) (int, error) {
	return Distance(core.Runes(a), core.Runes(b), core.Strict[rune]())
}

// NormalizedStrings computes the normalized codepoint-wise distance.
func NormalizedStrings(a, b string) (float64, error) {
	return Normalized(core.Runes(a), core.Runes(b), core.Strict[rune]())
}

// Bytes computes the byte-wise Hamming distance of two byte slices.
func Bytes(a, b []byte) (int, error) {
	return Distance(a, b, core.Strict[byte]())
}
