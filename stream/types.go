package stream

import "github.com/katalvlaran/seqdist/core"

// Source supplies candidate sequences one at a time. Next returns the
// next candidate and true, or a zero value and false at end of stream.
// Next may block; the iterator imposes no ordering beyond "one
// candidate is fully evaluated before the next is requested".
type Source[E any] interface {
	Next() ([]E, bool)
}

// Match is one accepted candidate and its distance from the reference.
type Match[E any] struct {
	Distance  int
	Candidate []E
}

// SliceSource is an in-memory, resettable Source over a fixed candidate
// list. Not safe for concurrent use.
type SliceSource[E any] struct {
	seqs [][]E
	next int
}

// FromSlices builds a SliceSource over the given candidates.
func FromSlices[E any](seqs ...[]E) *SliceSource[E] {
	return &SliceSource[E]{seqs: seqs}
}

// FromStrings builds a codepoint SliceSource over the given strings.
func FromStrings(ss ...string) *SliceSource[rune] {
	seqs := make([][]rune, len(ss))
	for i, s := range ss {
		seqs[i] = core.Runes(s)
	}
	return &SliceSource[rune]{seqs: seqs}
}

// Next implements Source.
func (s *SliceSource[E]) Next() ([]E, bool) {
	if s.next >= len(s.seqs) {
		return nil, false
	}
	seq := s.seqs[s.next]
	s.next++
	return seq, true
}

// Reset restarts the source from the first candidate.
func (s *SliceSource[E]) Reset() { s.next = 0 }
