package nibble

// Perm and PermInv implement the composed state permutation of spec §4.1:
// for each source index i, a nibble first moves under a per-row left
// rotation (row r rotated by r positions), then the resulting 8x8 matrix is
// transposed. Perm[i] is the destination of source index i; PermInv is its
// inverse, used directly by the round function (state[j] = snapshot[PermInv[j]]).
var (
	Perm    [StateSize]int
	PermInv [StateSize]int
)

func init() {
	rowRotated := rowRotatePermutation()
	transposed := transposePermutation()

	for i := 0; i < StateSize; i++ {
		Perm[i] = transposed[rowRotated[i]]
	}
	for i, dest := range Perm {
		PermInv[dest] = i
	}
	if !isIndexPermutation(Perm[:]) {
		panic("nibble: Perm is not a bijection on {0,...,63}")
	}
}

// rowRotatePermutation returns, for each source index i = row*Cols+col, the
// destination index after left-rotating row `row` by `row` positions:
// dest_col = (col + Cols - row) mod Cols.
func rowRotatePermutation() [StateSize]int {
	var p [StateSize]int
	for i := 0; i < StateSize; i++ {
		row, col := i/Cols, i%Cols
		destCol := (col + Cols - row) % Cols
		p[i] = row*Cols + destCol
	}
	return p
}

// transposePermutation maps row*Cols+col (after row-rotation) to col*Cols+row.
func transposePermutation() [StateSize]int {
	var p [StateSize]int
	for i := 0; i < StateSize; i++ {
		row, col := i/Cols, i%Cols
		p[i] = col*Rows + row
	}
	return p
}

func isIndexPermutation(table []int) bool {
	seen := make([]bool, len(table))
	for _, v := range table {
		if v < 0 || v >= len(table) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
