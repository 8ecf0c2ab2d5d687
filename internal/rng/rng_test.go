package rng

import "testing"

func TestSameSeedProducesSameSequence(test *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		va := a.Int(0, 100)
		vb := b.Int(0, 100)
		if va != vb {
			test.Fatalf("iteration %d: expected deterministic sequence, got %d vs %d", i, va, vb)
		}
	}
}

func TestIntStaysInRange(test *testing.T) {
	source := New(7)
	for i := 0; i < 1000; i++ {
		v := source.Int(5, 10)
		if v < 5 || v >= 10 {
			test.Fatalf("Int(5, 10) returned out-of-range value %d", v)
		}
	}
}

func TestShufflePreservesElements(test *testing.T) {
	source := New(1)
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffled := append([]int(nil), values...)
	source.Shuffle(shuffled)

	seen := make(map[int]bool)
	for _, v := range shuffled {
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			test.Errorf("Shuffle lost value %d", v)
		}
	}
}
