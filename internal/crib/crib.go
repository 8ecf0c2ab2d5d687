// Package crib implements the known-plaintext consistency gate: given a
// partial crib (some plaintext positions already known), check whether a
// candidate cycleword length admits any non-contradictory cycleword, and
// derive the cycleword positions a crib actually constrains.
package crib

import "quagmire_solve/internal/alphabet"

// Crib is one known plaintext position: the index into the ciphertext and
// the plaintext alphabet index expected there.
type Crib struct {
	Position  int
	Plaintext int
}

// Satisfied checks, for each cycleword column, whether the cribs landing in
// that column are mutually consistent: build a 26x26
// plaintext-symbol x ciphertext-symbol matrix from the crib pairs implied by
// that column, and bail out as soon as any row or column would need two
// different partners. Grounded on the original source's
// cribs_satisfied_p, including its "check after every insertion" structure
// rather than a single end-of-pass check.
func Satisfied(ciphertext []int, cribs []Crib, cyclewordLen int) bool {
	if len(cribs) == 0 {
		return true
	}

	for col := 0; col < cyclewordLen; col++ {
		var frequencies [alphabet.Size][alphabet.Size]int
		for _, c := range cribs {
			if c.Position%cyclewordLen != col {
				continue
			}
			ctSymbol := ciphertext[c.Position]
			frequencies[c.Plaintext][ctSymbol]++

			for p := 0; p < alphabet.Size; p++ {
				total := 0
				for ct := 0; ct < alphabet.Size; ct++ {
					if frequencies[p][ct] > 0 {
						total++
					}
				}
				if total > 1 {
					return false
				}
			}
			for ct := 0; ct < alphabet.Size; ct++ {
				total := 0
				for p := 0; p < alphabet.Size; p++ {
					if frequencies[p][ct] > 0 {
						total++
					}
				}
				if total > 1 {
					return false
				}
			}
		}
	}
	return true
}

const inactive = -1

// ConstrainCycleword derives cycleword values from crib alignment against
// the plaintext/ciphertext keywords, writing them into cycleword (which
// must already be length cyclewordLen) wherever a crib pins a position, and
// returns true if two cribs landing on the same cycleword position
// disagree. Grounded on the original source's constrain_cycleword.
//
// On contradiction, cycleword is restored to its pre-call contents: the
// original source leaves whatever partial writes happened before the
// clash in place, but spec.md recommends restoring, and this repo follows
// that recommendation (see DESIGN.md).
func ConstrainCycleword(ciphertext []int, cribs []Crib, plaintextKeyword, ciphertextKeyword []int, cycleword []int, variant bool) bool {
	if len(cribs) == 0 {
		return false
	}

	cyclewordLen := len(cycleword)
	before := append([]int(nil), cycleword...)
	seen := make([]int, cyclewordLen)
	for i := range seen {
		seen[i] = inactive
	}

	for i := 0; i < cyclewordLen; i++ {
		for _, c := range cribs {
			if c.Position%cyclewordLen != i {
				continue
			}

			ctSymbol := ciphertext[c.Position]
			var posnKeyword, posnCycleword int
			if variant {
				posnKeyword = positionOf(plaintextKeyword, ctSymbol)
				posnCycleword = positionOf(ciphertextKeyword, c.Plaintext)
			} else {
				posnKeyword = positionOf(ciphertextKeyword, ctSymbol)
				posnCycleword = positionOf(plaintextKeyword, c.Plaintext)
			}

			var index int
			if variant {
				index = mod26(posnCycleword - posnKeyword)
			} else {
				index = mod26(posnKeyword - posnCycleword)
			}
			derived := plaintextKeyword[index]

			if seen[i] == inactive {
				cycleword[i] = derived
				seen[i] = derived
			} else if seen[i] != derived {
				copy(cycleword, before)
				return true
			}
		}
	}
	return false
}

func positionOf(permutation []int, value int) int {
	for i, v := range permutation {
		if v == value {
			return i
		}
	}
	return -1
}

func mod26(x int) int {
	x %= alphabet.Size
	if x < 0 {
		x += alphabet.Size
	}
	return x
}
