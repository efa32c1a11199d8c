package stream

import (
	"errors"

	"github.com/katalvlaran/seqdist/core"
	"github.com/katalvlaran/seqdist/fastcomp"
	"github.com/katalvlaran/seqdist/levenshtein"
)

// Iter lazily yields accepted candidates from a Source. Obtain one via
// Levenshtein or FastComp; consume it with Next or Collect.
type Iter[E any] struct {
	src  Source[E]
	eval func(cand []E) (dist int, keep bool, err error)
}

// Levenshtein streams src against ref through the edit-distance
// engine. Candidates whose distance exceeds opts.MaxDist are dropped;
// with a nil or unbounded opts every candidate is yielded.
func Levenshtein[E any](ref []E, src Source[E], eq core.Eq[E], opts *levenshtein.Options) *Iter[E] {
	return &Iter[E]{
		src: src,
		eval: func(cand []E) (int, bool, error) {
			d, err := levenshtein.Distance(ref, cand, eq, opts)
			if errors.Is(err, levenshtein.ErrBoundExceeded) {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, err
			}
			return d, true, nil
		},
	}
}

// FastComp streams src against ref through the bounded comparator.
// Candidates with a true distance above 2 are skipped silently.
func FastComp[E any](ref []E, src Source[E], eq core.Eq[E], opts *fastcomp.Options) *Iter[E] {
	return &Iter[E]{
		src: src,
		eval: func(cand []E) (int, bool, error) {
			d, err := fastcomp.Distance(ref, cand, eq, opts)
			if errors.Is(err, fastcomp.ErrBoundExceeded) {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, err
			}
			return d, true, nil
		},
	}
}

// Next pulls candidates until one passes the bound and returns it with
// ok == true. At end of stream ok is false with a nil error. A failed
// comparison stops iteration and is returned as the error.
func (it *Iter[E]) Next() (Match[E], bool, error) {
	for {
		cand, ok := it.src.Next()
		if !ok {
			return Match[E]{}, false, nil
		}
		d, keep, err := it.eval(cand)
		if err != nil {
			return Match[E]{}, false, err
		}
		if keep {
			return Match[E]{Distance: d, Candidate: cand}, true, nil
		}
	}
}

// Collect drains the iterator into a slice. Only safe on finite
// sources.
func (it *Iter[E]) Collect() ([]Match[E], error) {
	var out []Match[E]
	for {
		m, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, m)
	}
}
