package perturb

import (
	"sort"
	"testing"

	"quagmire_solve/internal/rng"
)

func isPermutation(state []int) bool {
	seen := make(map[int]bool, len(state))
	for _, v := range state {
		if v < 0 || v >= len(state) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func tailIsSorted(state []int, keywordLen int) bool {
	tail := append([]int(nil), state[keywordLen:]...)
	return sort.IntsAreSorted(tail)
}

func TestRandomKeywordIsAPermutationWithSortedTail(test *testing.T) {
	p := &Perturber{Source: rng.New(1)}
	state := make([]int, 26)
	p.RandomKeyword(state, 8)

	if !isPermutation(state) {
		test.Fatalf("Expected a permutation of [0,26), got %v", state)
	}
	if !tailIsSorted(state, 8) {
		test.Errorf("Expected tail to be sorted ascending, got %v", state[8:])
	}
}

func TestKeywordPerturbationPreservesEncodingInvariant(test *testing.T) {
	p := &Perturber{Source: rng.New(2)}
	state := make([]int, 26)
	p.RandomKeyword(state, 10)

	for i := 0; i < 200; i++ {
		p.Keyword(state, 10)
		if !isPermutation(state) {
			test.Fatalf("iteration %d: state is no longer a permutation: %v", i, state)
		}
		if !tailIsSorted(state, 10) {
			test.Fatalf("iteration %d: tail is no longer sorted: %v", i, state[10:])
		}
	}
}

func TestRandomCyclewordStaysInRange(test *testing.T) {
	p := &Perturber{Source: rng.New(3)}
	cycleword := make([]int, 7)
	p.RandomCycleword(cycleword)
	for _, v := range cycleword {
		if v < 0 || v >= 26 {
			test.Errorf("Expected cycleword value in [0,26), got %d", v)
		}
	}
}

func TestCyclewordPerturbationChangesAtMostOnePosition(test *testing.T) {
	p := &Perturber{Source: rng.New(4)}
	cycleword := make([]int, 7)
	p.RandomCycleword(cycleword)
	before := append([]int(nil), cycleword...)

	p.Cycleword(cycleword)

	diffs := 0
	for i := range cycleword {
		if cycleword[i] != before[i] {
			diffs++
		}
	}
	if diffs > 1 {
		test.Errorf("Expected at most one position to change, got %d", diffs)
	}
}

func TestKeywordPerturbationHandlesFullLengthKeyword(test *testing.T) {
	p := &Perturber{Source: rng.New(6)}
	state := make([]int, 26)
	p.RandomKeyword(state, 26)

	for i := 0; i < 50; i++ {
		p.Keyword(state, 26)
		if !isPermutation(state) {
			test.Fatalf("iteration %d: state is no longer a permutation: %v", i, state)
		}
	}
}

func TestFrequencyWeightedKeywordPerturbationAlsoPreservesInvariant(test *testing.T) {
	p := &Perturber{Source: rng.New(5), FrequencyWeighted: true}
	state := make([]int, 26)
	p.RandomKeyword(state, 6)

	for i := 0; i < 100; i++ {
		p.Keyword(state, 6)
		if !isPermutation(state) {
			test.Fatalf("iteration %d: state is no longer a permutation: %v", i, state)
		}
	}
}
