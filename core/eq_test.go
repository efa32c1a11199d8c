package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/seqdist/core"
	"github.com/stretchr/testify/assert"
)

// TestStrict_Runes verifies native equality over codepoints.
func TestStrict_Runes(t *testing.T) {
	eq := core.Strict[rune]()

	same, err := eq('é', 'é')
	assert.NoError(t, err)
	assert.True(t, same, "identical runes must compare equal")

	same, err = eq('a', 'b')
	assert.NoError(t, err)
	assert.False(t, same, "distinct runes must compare unequal")
}

// TestStrict_Bytes verifies native equality over raw bytes.
func TestStrict_Bytes(t *testing.T) {
	eq := core.Strict[byte]()

	same, err := eq(0x00, 0x00)
	assert.NoError(t, err)
	assert.True(t, same)

	same, err = eq(0x00, 0xFF)
	assert.NoError(t, err)
	assert.False(t, same)
}

// TestRunes confirms the string adapter yields codepoints, not bytes.
func TestRunes(t *testing.T) {
	assert.Equal(t, []rune{'h', 'é', 'h'}, core.Runes("héh"))
	assert.Empty(t, core.Runes(""))
}

// TestEq_FallibleContract shows a failing Eq surfaces its cause verbatim.
func TestEq_FallibleContract(t *testing.T) {
	cause := errors.New("boom")
	eq := core.Eq[int](func(x, y int) (bool, error) { return false, cause })

	_, err := eq(1, 2)
	assert.ErrorIs(t, err, cause)
}
