package fastcomp

import (
	"fmt"

	"github.com/katalvlaran/seqdist/core"
)

// editOp is one scripted non-match operation inside a shape.
type editOp byte

const (
	opDelete  editOp = 'd' // advance the longer operand only
	opInsert  editOp = 'i' // advance the shorter operand only
	opReplace editOp = 'r' // advance both
)

// shape is a script of at most two non-match operations, consumed in
// order as mismatches occur.
type shape [2]editOp

// catalogue enumerates the candidate shapes per length difference.
// Any edit script of cost <= 2 between operands with that ldiff is an
// instance of one of these shapes.
var catalogue = [3][]shape{
	{{opInsert, opDelete}, {opDelete, opInsert}, {opReplace, opReplace}},
	{{opDelete, opReplace}, {opReplace, opDelete}},
	{{opDelete, opDelete}},
}

// Distance returns the edit distance between a and b when it is at
// most 2, and ErrBoundExceeded otherwise. A nil opts disables the
// transposition shortcut.
//
// Complexity: O(len) oracle calls per candidate shape, O(1) memory.
func Distance[E any](a, b []E, eq core.Eq[E], opts *Options) (int, error) {
	if eq == nil {
		return 0, core.ErrNilEquality
	}
	transpositions := false
	if opts != nil {
		transpositions = opts.Transpositions
	}

	if len(a) < len(b) {
		a, b = b, a
	}
	ldiff := len(a) - len(b)
	if ldiff > 2 {
		return 0, ErrBoundExceeded
	}

	best := 3
	for _, sh := range catalogue[ldiff] {
		cnt, done, err := runShape(a, b, eq, sh, ldiff, transpositions)
		if err != nil {
			return 0, err
		}
		if done && cnt < best {
			best = cnt
		}
	}
	if best == 3 {
		return 0, ErrBoundExceeded
	}

	return best, nil
}

// Strings compares two strings codepoint-wise.
func Strings(a, b string, transpositions bool) (int, error) {
	return Distance(core.Runes(a), core.Runes(b), core.Strict[rune](),
		&Options{Transpositions: transpositions})
}

// runShape walks a and b in lockstep under one shape. It returns the
// mismatch count and whether the shape completed within the budget of
// two operations. The caller guarantees len(a) >= len(b).
func runShape[E any](a, b []E, eq core.Eq[E], sh shape, ldiff int, transpositions bool) (int, bool, error) {
	len1, len2 := len(a), len(b)
	i, j, c := 0, 0, 0

	for i < len1 && j < len2 {
		same, err := eq(a[i], b[j])
		if err != nil {
			return 0, false, fmt.Errorf("fastcomp: %w: %w", core.ErrComparison, err)
		}
		if same {
			i++
			j++
			continue
		}

		c++
		if c > 2 {
			break
		}

		// Transposition lookahead. ldiff == 2 admits only deletions, so
		// the shortcut is disabled there; everywhere else a detected
		// swap at unit cost dominates the scripted alternative.
		if transpositions && ldiff != 2 && i < len1-1 && j < len2-1 {
			swapAhead, err := eq(a[i+1], b[j])
			if err != nil {
				return 0, false, fmt.Errorf("fastcomp: %w: %w", core.ErrComparison, err)
			}
			if swapAhead {
				swapBack, err := eq(a[i], b[j+1])
				if err != nil {
					return 0, false, fmt.Errorf("fastcomp: %w: %w", core.ErrComparison, err)
				}
				if swapBack {
					i += 2
					j += 2
					continue
				}
			}
		}

		switch sh[c-1] {
		case opDelete:
			i++
		case opInsert:
			j++
		default: // opReplace
			i++
			j++
		}
	}

	if c > 2 {
		return 0, false, nil
	}

	// Charge any unconsumed suffix against the remaining operation
	// budget; a suffix that does not fit rejects the shape.
	if i < len1 {
		budget := 0
		switch c {
		case 0:
			if sh[0] == opDelete {
				budget++
			}
			if sh[1] == opDelete {
				budget++
			}
		case 1:
			if sh[1] == opDelete {
				budget = 1
			}
		}
		if len1-i > budget {
			return 0, false, nil
		}
		c += len1 - i
	} else if j < len2 {
		budget := 0
		if c < 2 && sh[c] == opInsert {
			budget = 1
		}
		if len2-j > budget {
			return 0, false, nil
		}
		c += len2 - j
	}

	return c, true, nil
}
