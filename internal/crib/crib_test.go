package crib

import "testing"

func straight() []int {
	out := make([]int, 26)
	for i := range out {
		out[i] = i
	}
	return out
}

// TestSatisfiedDetectsInfeasibility covers S4: ciphertext "AAAA" (all index
// 0) with conflicting cribs at positions 0 and 2 under period 2 puts both
// cribs in the same cycleword column but demands two different plaintext
// symbols map to the same ciphertext symbol, which is infeasible.
func TestSatisfiedDetectsInfeasibility(test *testing.T) {
	ciphertext := []int{0, 0, 0, 0}
	cribs := []Crib{
		{Position: 0, Plaintext: 1},
		{Position: 2, Plaintext: 2},
	}

	if Satisfied(ciphertext, cribs, 2) {
		test.Errorf("Expected conflicting cribs in the same column to be unsatisfiable")
	}
}

func TestSatisfiedAcceptsConsistentCribs(test *testing.T) {
	ciphertext := []int{0, 1, 0, 1}
	cribs := []Crib{
		{Position: 0, Plaintext: 5},
		{Position: 2, Plaintext: 5},
		{Position: 1, Plaintext: 9},
		{Position: 3, Plaintext: 9},
	}

	if !Satisfied(ciphertext, cribs, 2) {
		test.Errorf("Expected consistent cribs to be satisfiable")
	}
}

func TestSatisfiedWithNoCribsIsTriviallyTrue(test *testing.T) {
	if !Satisfied([]int{0, 1, 2}, nil, 1) {
		test.Errorf("Expected no cribs to be trivially satisfiable")
	}
}

// TestConstrainCyclewordDetectsContradiction covers S5: two cribs landing
// on the same cycleword position but demanding different derived cycleword
// values.
func TestConstrainCyclewordDetectsContradiction(test *testing.T) {
	ciphertext := []int{5, 10}
	cribs := []Crib{
		{Position: 0, Plaintext: 0},
		{Position: 1, Plaintext: 0},
	}
	plaintextKeyword := straight()
	ciphertextKeyword := straight()
	cycleword := []int{99}
	before := append([]int(nil), cycleword...)

	contradiction := ConstrainCycleword(ciphertext, cribs, plaintextKeyword, ciphertextKeyword, cycleword, false)
	if !contradiction {
		test.Fatalf("Expected a contradiction to be detected")
	}
	for i := range cycleword {
		if cycleword[i] != before[i] {
			test.Errorf("Expected cycleword to be restored to its pre-call state on contradiction, got %v, expected %v", cycleword, before)
		}
	}
}

func TestConstrainCyclewordNoContradiction(test *testing.T) {
	ciphertext := []int{5, 7}
	cribs := []Crib{
		{Position: 0, Plaintext: 0},
		{Position: 1, Plaintext: 2},
	}
	plaintextKeyword := straight()
	ciphertextKeyword := straight()
	cycleword := make([]int, 1)

	contradiction := ConstrainCycleword(ciphertext, cribs, plaintextKeyword, ciphertextKeyword, cycleword, false)
	if contradiction {
		test.Errorf("Expected no contradiction: both cribs imply the same cycleword value")
	}
	if cycleword[0] != 5 {
		test.Errorf("Expected derived cycleword value 5, got %d", cycleword[0])
	}
}
