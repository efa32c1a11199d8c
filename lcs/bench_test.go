package lcs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqdist/lcs"
)

// BenchmarkFind measures the column-compacted DP on ~200x40 operands.
func BenchmarkFind(b *testing.B) {
	long := strings.Repeat("abcdefghij", 20)
	short := "defghijabcdefghijabcdefghijabcdefghijabc"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lcs.Strings(long, short)
	}
}

// BenchmarkFind_ManyTies stresses the tie-set churn on periodic input.
func BenchmarkFind_ManyTies(b *testing.B) {
	long := strings.Repeat("ab", 100)
	short := strings.Repeat("ab", 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lcs.Strings(long, short)
	}
}
