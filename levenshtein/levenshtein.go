package levenshtein

import (
	"fmt"

	"github.com/katalvlaran/seqdist/core"
)

// Distance computes the edit distance between a and b, with unit cost
// for insertion, deletion and substitution. A nil opts means no bound.
//
// With a non-negative opts.MaxDist the engine returns ErrBoundExceeded
// as soon as the distance is known to be larger: before any DP when the
// length gap alone exceeds the bound, after any row whose minimum
// exceeds it, or on the final value.
//
// Complexity: O(n·m) oracle calls worst case, O(min(n,m)) memory.
func Distance[E any](a, b []E, eq core.Eq[E], opts *Options) (int, error) {
	if eq == nil {
		return 0, core.ErrNilEquality
	}
	maxDist := Unbounded
	if opts != nil {
		maxDist = opts.MaxDist
	}

	// Swap so a is the longer operand; edit distance is symmetric and
	// the shorter length bounds the scratch row.
	if len(a) < len(b) {
		a, b = b, a
	}
	len1, len2 := len(a), len(b)

	// A length gap alone already exceeds the budget.
	if maxDist >= 0 && len1-len2 > maxDist {
		return 0, ErrBoundExceeded
	}
	if len2 == 0 {
		// len1-len2 == len1 passed the bound check above.
		return len1, nil
	}

	row := make([]int, len2+1)
	for j := 1; j <= len2; j++ {
		row[j] = j
	}

	for i := 1; i <= len1; i++ {
		row[0] = i
		last := i - 1 // D[i-1][j-1]
		for j := 1; j <= len2; j++ {
			old := row[j]
			same, err := eq(a[i-1], b[j-1])
			if err != nil {
				return 0, fmt.Errorf("levenshtein: %w: %w", core.ErrComparison, err)
			}
			cost := 1
			if same {
				cost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, last+cost)
			last = old
		}
		// Once every cell of a row is above the bound no later cell can
		// come back under it.
		if maxDist >= 0 && rowMin(row) > maxDist {
			return 0, ErrBoundExceeded
		}
	}

	dist := row[len2]
	if maxDist >= 0 && dist > maxDist {
		return 0, ErrBoundExceeded
	}

	return dist, nil
}

// Strings computes the codepoint-wise edit distance of two strings.
func Strings(a, b string, opts *Options) (int, error) {
	return Distance(core.Runes(a), core.Runes(b), core.Strict[rune](), opts)
}

// Bytes computes the byte-wise edit distance of two byte slices.
func Bytes(a, b []byte, opts *Options) (int, error) {
	return Distance(a, b, core.Strict[byte](), opts)
}

// rowMin returns the smallest value in a non-empty DP row.
func rowMin(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// max3 returns the maximum of three ints.
func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
