// Package cipher implements the Vigenère-family cipher transform that
// Quagmire I-IV, Vigenère, and Beaufort all reduce to: a pair of keyword
// permutations coupled through a periodic cycleword, with an optional
// Atbash involution for Beaufort. The "variant" (encrypt-for-decrypt role
// swap) flag described in spec.md §4.1/§4.5 is not modeled here by
// swapping which keyword plays which role inside Decrypt/Encrypt - it is
// modeled by the caller choosing which of Decrypt/Encrypt to run against
// the ciphertext (see internal/climb's transform method).
package cipher

import "quagmire_solve/internal/alphabet"

// Type identifies which member of the Quagmire family a Variant
// implements. The coupling rules the driver and hill climber use to
// initialize and perturb state are keyed off this.
type Type int

const (
	Vigenere Type = iota
	QuagmireI
	QuagmireII
	QuagmireIII
	QuagmireIV
	Beaufort
)

func (t Type) String() string {
	switch t {
	case Vigenere:
		return "vigenere"
	case QuagmireI:
		return "quagmire1"
	case QuagmireII:
		return "quagmire2"
	case QuagmireIII:
		return "quagmire3"
	case QuagmireIV:
		return "quagmire4"
	case Beaufort:
		return "beaufort"
	default:
		return "unknown"
	}
}

// Variant fully parameterizes one cipher instance: the plaintext-keyword
// and ciphertext-keyword permutations of the alphabet and the periodic
// cycleword indexing the ciphertext-keyword.
type Variant struct {
	Type              Type
	PlaintextKeyword  []int // length 26, a permutation of [0,26)
	CiphertextKeyword []int // length 26, a permutation of [0,26)
	Cycleword         []int // length = period, each entry in [0,26)
}

func (v *Variant) isBeaufort() bool {
	return v.Type == Beaufort
}

// cyclewordAt returns the cycleword index to use for ciphertext position i,
// applying the Atbash involution first for Beaufort (Beaufort encryption is
// self-inverse, which falls out of applying Atbash to the running key).
func (v *Variant) cyclewordAt(i int) int {
	index := v.Cycleword[i%len(v.Cycleword)]
	if v.isBeaufort() {
		index = alphabet.Atbash(index)
	}
	return index
}

// positionOf finds the position of value within permutation.
func positionOf(permutation []int, value int) int {
	for i, v := range permutation {
		if v == value {
			return i
		}
	}
	return -1
}

// Decrypt transforms ciphertext indices into plaintext indices.
//
// For each position i: find the position of the ciphertext symbol within
// the ciphertext keyword, find the position of the (possibly Atbash'd)
// cycleword symbol within the ciphertext keyword, subtract, and use that as
// an index into the plaintext keyword.
func (v *Variant) Decrypt(ciphertext []int) []int {
	plaintext := make([]int, len(ciphertext))
	for i, c := range ciphertext {
		posnKeyword := positionOf(v.CiphertextKeyword, c)
		posnCycleword := positionOf(v.CiphertextKeyword, v.cyclewordAt(i))
		index := mod26(posnKeyword - posnCycleword)
		out := v.PlaintextKeyword[index]
		if v.isBeaufort() {
			out = alphabet.Atbash(out)
		}
		plaintext[i] = out
	}
	return plaintext
}

// Encrypt adds the position of the plaintext symbol within the plaintext
// keyword to the position of the (possibly Atbash'd) cycleword symbol
// within the ciphertext keyword, and uses the sum as an index into the
// ciphertext keyword. For every type except Beaufort, Decrypt undoes
// Encrypt. For Beaufort, Encrypt is its own inverse, and Decrypt with the
// same cycleword does not undo it.
func (v *Variant) Encrypt(plaintext []int) []int {
	ciphertext := make([]int, len(plaintext))
	for i, p := range plaintext {
		posnKeyword := positionOf(v.PlaintextKeyword, p)
		posnCycleword := positionOf(v.CiphertextKeyword, v.cyclewordAt(i))
		index := mod26(posnKeyword + posnCycleword)
		out := v.CiphertextKeyword[index]
		if v.isBeaufort() {
			out = alphabet.Atbash(out)
		}
		ciphertext[i] = out
	}
	return ciphertext
}

func mod26(x int) int {
	x %= alphabet.Size
	if x < 0 {
		x += alphabet.Size
	}
	return x
}

// OrdString converts an uppercase A-Z string into alphabet indices.
func OrdString(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.Index(s[i])
	}
	return out
}

// TextString converts alphabet indices back into an uppercase A-Z string.
func TextString(indices []int) string {
	out := make([]byte, len(indices))
	for i, idx := range indices {
		out[i] = alphabet.Letter(idx)
	}
	return string(out)
}
