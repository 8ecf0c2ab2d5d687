// Package perturb implements the keyword and cycleword perturbation
// operators used by the hill climber, plus the random-state generators
// used when a restart boundary reinitializes a Variant.
//
// A "keyword state" here is an alphabet.Size-length permutation encoding a
// keyword block of keywordLen distinct symbols followed by the remaining
// symbols in ascending order (the block-encoding invariant spec.md
// requires every perturbation to preserve).
package perturb

import (
	"quagmire_solve/internal/alphabet"
	"quagmire_solve/internal/rng"
)

// FrequencyWeighted toggles the optional frequency-weighted keyword
// perturbation variant, equivalent to the original source's
// FREQUENCY_WEIGHTED_SELECTION compile-time feature gate. A runtime flag is
// the idiomatic Go equivalent of a C preprocessor gate at this grain.
type Perturber struct {
	Source            *rng.Source
	FrequencyWeighted bool
}

// RandomKeyword fills state (length alphabet.Size) with a fresh keyword:
// keywordLen distinct symbols chosen uniformly at random in the block,
// followed by the remaining symbols in ascending order in the tail.
// Grounded on the original source's random_keyword.
func (p *Perturber) RandomKeyword(state []int, keywordLen int) {
	used := make(map[int]bool, keywordLen)
	for i := 0; i < keywordLen; i++ {
		var v int
		for {
			v = p.Source.Int(0, alphabet.Size)
			if !used[v] {
				break
			}
		}
		used[v] = true
		state[i] = v
	}

	idx := keywordLen
	for v := 0; v < alphabet.Size; v++ {
		if !used[v] {
			state[idx] = v
			idx++
		}
	}
}

// RandomCycleword fills cycleword (length = period) with uniform random
// samples in [0, alphabet.Size). Grounded on random_cycleword.
func (p *Perturber) RandomCycleword(cycleword []int) {
	for i := range cycleword {
		cycleword[i] = p.Source.Int(0, alphabet.Size)
	}
}

// Cycleword replaces one randomly chosen position in cycleword with a fresh
// random value. Grounded on perturbate_cycleword.
func (p *Perturber) Cycleword(cycleword []int) {
	i := p.Source.Int(0, len(cycleword))
	cycleword[i] = p.Source.Int(0, alphabet.Size)
}

// Keyword perturbs a keyword state in place, preserving the block-encoding
// invariant. With probability 0.2 it swaps two positions within the
// keyword block (a pure relabeling of the keyword). Otherwise (0.8) it
// swaps a keyword-block position with a tail position, which changes which
// symbols are "in" the keyword block, re-sorting the tail afterward so it
// stays in ascending order. Grounded on perturbate_keyword.
func (p *Perturber) Keyword(state []int, keywordLen int) {
	if keywordLen >= len(state) || p.Source.Float() < 0.2 {
		i := p.Source.Int(0, keywordLen)
		j := p.Source.Int(0, keywordLen)
		state[i], state[j] = state[j], state[i]
		return
	}

	var i, j int
	if p.FrequencyWeighted {
		i = p.randIntFrequencyWeighted(state, 0, keywordLen)
		j = p.randIntFrequencyWeighted(state, keywordLen, len(state))
	} else {
		i = p.Source.Int(0, keywordLen)
		j = p.Source.Int(keywordLen, len(state))
	}

	temp := state[i]
	state[i] = state[j]

	// delete state[j] by shifting the tail left
	for k := j + 1; k < len(state); k++ {
		state[k-1] = state[k]
	}

	// re-insert temp into the tail, keeping it in ascending order
	insertAt := len(state) - 1
	for k := keywordLen; k < len(state)-1; k++ {
		if state[k] > temp {
			insertAt = k
			break
		}
	}
	for k := len(state) - 1; k > insertAt; k-- {
		state[k] = state[k-1]
	}
	state[insertAt] = temp
}

// randIntFrequencyWeighted picks an index in [lo,hi) of state, weighted by
// the English monogram frequency of the symbol at that index. Grounded on
// rand_int_frequency_weighted.
func (p *Perturber) randIntFrequencyWeighted(state []int, lo, hi int) int {
	total := 0.0
	for i := lo; i < hi; i++ {
		total += alphabet.EnglishMonogramFrequency[state[i]]
	}
	if total == 0 {
		return p.Source.Int(lo, hi)
	}

	target := p.Source.Float() * total
	cumulative := 0.0
	for i := lo; i < hi; i++ {
		cumulative += alphabet.EnglishMonogramFrequency[state[i]]
		if cumulative >= target {
			return i
		}
	}
	return hi - 1
}
