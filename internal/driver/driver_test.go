package driver

import (
	"testing"

	"quagmire_solve/internal/cipher"
)

func TestRangeIncrementerIteratesInclusiveRange(test *testing.T) {
	inc := NewRangeIncrementer("x", 5, 8)
	var got []int
	for !inc.IsMaxed() {
		got = append(got, inc.Increment())
	}
	expected := []int{6, 7}
	if len(got) != len(expected) {
		test.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			test.Errorf("index %d: expected %d, got %d", i, expected[i], got[i])
		}
	}
}

func TestOdometerRollsOverLikeNestedLoops(test *testing.T) {
	a := NewRangeIncrementer("a", 0, 2)
	b := NewRangeIncrementer("b", 0, 3)
	odo := NewIncrementerIncrementer[int]("ab", []Incrementer[int]{a, b})

	var seen [][]int
	for !odo.IsMaxed() {
		seen = append(seen, odo.Increment())
	}

	expected := [][]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(seen) != len(expected) {
		test.Fatalf("expected %d tuples, got %d: %v", len(expected), len(seen), seen)
	}
	for i := range expected {
		if seen[i][0] != expected[i][0] || seen[i][1] != expected[i][1] {
			test.Errorf("tuple %d: expected %v, got %v", i, expected[i], seen[i])
		}
	}
}

func TestCoupledFiltersVigenereToMatchingLengths(test *testing.T) {
	if !coupled(cipher.Vigenere, 5, 5, 5) {
		test.Errorf("expected matching lengths to be coupled for Vigenere")
	}
	if coupled(cipher.Vigenere, 5, 5, 6) {
		test.Errorf("expected mismatched CT length to be rejected for Vigenere")
	}
}

func TestCoupledAllowsQuagmireIVAnyLengths(test *testing.T) {
	if !coupled(cipher.QuagmireIV, 5, 7, 9) {
		test.Errorf("expected Quagmire IV to allow independent PT/CT lengths")
	}
}

func TestKeywordRangeRespectsPinnedValue(test *testing.T) {
	lo, hi := keywordRange(7, 1, 20)
	if lo != 7 || hi != 8 {
		test.Errorf("expected pinned range [7,8), got [%d,%d)", lo, hi)
	}
}

func TestKeywordRangeScansWhenUnpinned(test *testing.T) {
	lo, hi := keywordRange(0, 5, 12)
	if lo != 5 || hi != 12 {
		test.Errorf("expected scanned range [5,12), got [%d,%d)", lo, hi)
	}
}
