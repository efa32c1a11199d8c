package hamming_test

import (
	"errors"
	"math/rand"
	"testing"

	edlib "github.com/hbollon/go-edlib"
	"github.com/katalvlaran/seqdist/core"
	"github.com/katalvlaran/seqdist/hamming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Basic covers the common and degenerate cases.
func TestDistance_Basic(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"toned", "roses", 3},
		{"decide", "police", 4},
		{"abc", "def", 3},
	}
	for _, tc := range cases {
		got, err := hamming.Strings(tc.a, tc.b)
		require.NoError(t, err, "%q vs %q", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q vs %q", tc.a, tc.b)
	}
}

// TestDistance_LengthMismatch checks the precondition on both orders.
func TestDistance_LengthMismatch(t *testing.T) {
	_, err := hamming.Strings("foo", "foobar")
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)

	_, err = hamming.Strings("", "foo")
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)
}

// TestDistance_Symmetry verifies hamming(a,b) == hamming(b,a) on random
// equal-length strings, cross-checked against go-edlib.
func TestDistance_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const alphabet = "abcd"
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(12)
		a := randString(rng, alphabet, n)
		b := randString(rng, alphabet, n)

		ab, err := hamming.Strings(a, b)
		require.NoError(t, err)
		ba, err := hamming.Strings(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "symmetry for %q vs %q", a, b)
		assert.GreaterOrEqual(t, ab, 0)
		assert.LessOrEqual(t, ab, n)

		ref, err := edlib.HammingDistance(a, b)
		require.NoError(t, err)
		assert.Equal(t, ref, ab, "go-edlib disagrees for %q vs %q", a, b)
	}
}

// TestDistance_Bytes exercises the byte-wise wrapper.
func TestDistance_Bytes(t *testing.T) {
	got, err := hamming.Bytes([]byte{0x00, 0x01, 0x02}, []byte{0x00, 0xFF, 0x02})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// TestDistance_OracleFailure confirms a failing comparison aborts the
// call and surfaces both sentinels, with no partial count.
func TestDistance_OracleFailure(t *testing.T) {
	cause := errors.New("incomparable")
	eq := core.Eq[int](func(x, y int) (bool, error) {
		if x == 3 {
			return false, cause
		}
		return x == y, nil
	})

	_, err := hamming.Distance([]int{1, 2, 3, 4}, []int{9, 2, 3, 4}, eq)
	assert.ErrorIs(t, err, core.ErrComparison)
	assert.ErrorIs(t, err, cause)
}

// TestDistance_NilOracle rejects a nil equality function.
func TestDistance_NilOracle(t *testing.T) {
	_, err := hamming.Distance([]int{1}, []int{1}, nil)
	assert.ErrorIs(t, err, core.ErrNilEquality)
}

// TestNormalized covers the documented normalization pattern.
func TestNormalized(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 0.0},
		{"abc", "abc", 0.0},
		{"ab", "ac", 0.5},
		{"abc", "def", 1.0},
	}
	for _, tc := range cases {
		got, err := hamming.NormalizedStrings(tc.a, tc.b)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "%q vs %q", tc.a, tc.b)
	}
}

func randString(rng *rand.Rand, alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}
