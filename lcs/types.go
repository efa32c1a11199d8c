package lcs

// Position locates one occurrence of the longest common substring:
// 0-indexed start offsets in the caller's first and second operand.
type Position struct {
	I int // start in the first operand
	J int // start in the second operand
}

// Result is the outcome of Find: the maximum run length and every
// position pair attaining it, in DP discovery order. Length 0 carries
// an empty position set.
type Result struct {
	Length    int
	Positions []Position
}
