package nibble

import "testing"

func TestPermIsBijection(t *testing.T) {
	var seen [StateSize]bool
	for i, dest := range Perm {
		if dest < 0 || dest >= StateSize {
			t.Fatalf("Perm[%d] = %d out of range", i, dest)
		}
		if seen[dest] {
			t.Fatalf("Perm is not injective: destination %d reached twice", dest)
		}
		seen[dest] = true
	}
}

func TestPermInvertsPerm(t *testing.T) {
	for i := 0; i < StateSize; i++ {
		if PermInv[Perm[i]] != i {
			t.Errorf("PermInv[Perm[%d]] = %d, want %d", i, PermInv[Perm[i]], i)
		}
	}
}

func TestPermMovesEveryIndex(t *testing.T) {
	fixedPoints := 0
	for i, dest := range Perm {
		if dest == i {
			fixedPoints++
		}
	}
	if fixedPoints == StateSize {
		t.Fatal("Perm is the identity permutation")
	}
}
