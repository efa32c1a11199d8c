// Package seqdist measures distance and similarity between ordered
// sequences of opaque, comparable elements — strings, byte slices, or
// any element kind you can test for equality.
//
// 🚀 What is seqdist?
//
//	A generic, allocation-lean library that brings together:
//		• Hamming distance: positional mismatch count (raw & normalized)
//		• Levenshtein distance: raw, capped (early-abort) & two normalized forms
//		• Longest common substring: every position attaining the maximum run
//		• Fast bounded comparison: decide distance 0/1/2 without any DP scratch
//		• Streaming comparison: lazily filter a candidate stream against one reference
//
// ✨ Why choose seqdist?
//
//   - Generic — one DP core per algorithm, parameterized over an
//     element-equality capability; no per-type code duplication
//   - Fallible comparisons are first-class: an equality test that fails
//     aborts the call, it is never coerced into "not equal"
//   - Scratch memory is always bounded by the shorter operand
//   - Pure Go, call-scoped state only: concurrent use is safe by construction
//
// Everything is organized under six subpackages:
//
//	core/        — sequence-element capabilities: the equality oracle
//	hamming/     — fixed-length positional distance
//	levenshtein/ — edit distance engine (raw, capped, normalized)
//	lcs/         — longest-common-substring finder with tie enumeration
//	fastcomp/    — bounded comparator for edit distance ≤ 2
//	stream/      — pull-based comparison of one reference against many candidates
//
// Quick taste:
//
//	d, _ := levenshtein.Strings("kitten", "sitting", nil) // 3
//	r, _ := lcs.Strings("sedentar", "dentist")            // {Length: 4, Positions: [{2 0}]}
//
// Dive into each package's doc.go for contracts, complexity and error
// semantics, and into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/seqdist
package seqdist
