package levenshtein

import (
	"fmt"

	"github.com/katalvlaran/seqdist/core"
)

// Normalized computes the edit distance scaled into [0, 1]: 0.0 when
// the sequences are equal, 1.0 when exactly one is empty. The factor is
// selected by opts.Method (nil opts means ShortestAlignment).
//
// A non-negative opts.MaxDist is rejected with ErrBoundWithNormalized:
// capping a normalized distance has no defined semantics. Construct
// opts via DefaultOptions to leave the bound disabled.
func Normalized[E any](a, b []E, eq core.Eq[E], opts *Options) (float64, error) {
	if eq == nil {
		return 0, core.ErrNilEquality
	}
	method := ShortestAlignment
	if opts != nil {
		if opts.MaxDist >= 0 {
			return 0, ErrBoundWithNormalized
		}
		if opts.Method != 0 {
			method = opts.Method
		}
	}
	if method != ShortestAlignment && method != LongestAlignment {
		return 0, ErrBadMethod
	}

	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a) == 0 { // both empty: identical
		return 0, nil
	}
	if len(b) == 0 { // exactly one empty: completely different
		return 1, nil
	}

	if method == ShortestAlignment {
		dist, err := Distance(a, b, eq, nil)
		if err != nil {
			return 0, err
		}
		return float64(dist) / float64(len(a)), nil
	}

	return normalizedLongest(a, b, eq)
}

// NormalizedStrings computes the normalized codepoint-wise distance.
func NormalizedStrings(a, b string, opts *Options) (float64, error) {
	return Normalized(core.Runes(a), core.Runes(b), core.Strict[rune](), opts)
}

// normalizedLongest runs the cost DP and, in parallel, an alignment-
// length DP: each cell records the length of the longest alignment that
// achieves the cell's minimal cost. An operation contributes its
// predecessor length + 1 only when its cost equals the chosen minimum;
// ties take the maximum length. The caller guarantees len(a) >= len(b)
// and both non-empty.
func normalizedLongest[E any](a, b []E, eq core.Eq[E]) (float64, error) {
	len1, len2 := len(a), len(b)

	cost := make([]int, len2+1)
	alen := make([]int, len2+1)
	for j := 1; j <= len2; j++ {
		cost[j] = j
		alen[j] = j
	}

	for i := 1; i <= len1; i++ {
		cost[0], alen[0] = i, i
		last, llast := i-1, i-1 // diagonal predecessors of cost and alen
		for j := 1; j <= len2; j++ {
			old, lold := cost[j], alen[j]

			ic := cost[j-1] + 1 // insertion
			dc := cost[j] + 1   // deletion
			same, err := eq(a[i-1], b[j-1])
			if err != nil {
				return 0, fmt.Errorf("levenshtein: %w: %w", core.ErrComparison, err)
			}
			rc := last // substitution or match
			if !same {
				rc++
			}
			m := min3(ic, dc, rc)
			cost[j] = m
			last = old

			lic, ldc, lrc := 0, 0, 0
			if ic == m {
				lic = alen[j-1] + 1
			}
			if dc == m {
				ldc = lold + 1
			}
			if rc == m {
				lrc = llast + 1
			}
			alen[j] = max3(lic, ldc, lrc)
			llast = lold
		}
	}

	return float64(cost[len2]) / float64(alen[len2]), nil
}
