package lcs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seqdist/core"
)

// Find returns the longest common substring length of a and b together
// with every (start-in-a, start-in-b) pair attaining it.
//
// Complexity: O(len(a)·len(b)) oracle calls, O(min len) scratch.
func Find[E any](a, b []E, eq core.Eq[E]) (Result, error) {
	if eq == nil {
		return Result{}, core.ErrNilEquality
	}

	swapped := false
	if len(a) < len(b) {
		a, b = b, a
		swapped = true
	}
	len1, len2 := len(a), len(b)
	if len2 == 0 {
		return Result{}, nil
	}

	// column[j] holds the run length ending at (i, j) for the current i.
	column := make([]int, len2)
	best := 0
	var ends []Position // run end positions, translated on return

	last := 0 // diagonal predecessor column[j-1] of the previous row
	for i := 0; i < len1; i++ {
		for j := 0; j < len2; j++ {
			old := column[j]
			same, err := eq(a[i], b[j])
			if err != nil {
				return Result{}, fmt.Errorf("lcs: %w: %w", core.ErrComparison, err)
			}
			if same {
				if i == 0 || j == 0 {
					column[j] = 1
				} else {
					column[j] = last + 1
				}
				if column[j] > best {
					best = column[j]
					ends = append(ends[:0], Position{I: i, J: j})
				} else if column[j] == best {
					ends = append(ends, Position{I: i, J: j})
				}
			} else {
				column[j] = 0
			}
			last = old
		}
	}

	res := Result{Length: best}
	if best == 0 {
		return res, nil
	}
	// Translate run ends to starts and undo the operand swap.
	res.Positions = make([]Position, len(ends))
	for k, p := range ends {
		start := Position{I: p.I - best + 1, J: p.J - best + 1}
		if swapped {
			start.I, start.J = start.J, start.I
		}
		res.Positions[k] = start
	}

	return res, nil
}

// Strings finds the longest common substring of two strings, operating
// on codepoints.
func Strings(a, b string) (Result, error) {
	return Find(core.Runes(a), core.Runes(b), core.Strict[rune]())
}

// Substrings returns the distinct longest common substrings themselves,
// sorted lexicographically for determinism. Two strings with no common
// element yield an empty set.
func Substrings(a, b string) ([]string, error) {
	ra := core.Runes(a)
	res, err := Find(ra, core.Runes(b), core.Strict[rune]())
	if err != nil {
		return nil, err
	}
	if res.Length == 0 {
		return nil, nil
	}

	set := make(map[string]struct{}, len(res.Positions))
	for _, p := range res.Positions {
		set[string(ra[p.I:p.I+res.Length])] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out, nil
}
