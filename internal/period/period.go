// Package period implements Friedman's Index-of-Coincidence period
// estimator: for each candidate cycleword length, split the ciphertext into
// that many Caesar-shifted columns, average their IoC, z-score the results
// across all candidate lengths, and keep the ones that clear both a z-score
// and an absolute-IoC threshold.
package period

import (
	"math"
	"sort"

	"quagmire_solve/internal/alphabet"
)

// Candidate is one accepted cycleword-length hypothesis.
type Candidate struct {
	Length int
	MeanIoC    float64
	ZScore     float64
	// WordLengthScore is an auxiliary, non-filtering signal carried over
	// from the original source's dead english_word_length_frequencies
	// weighting of mean IoC by how common that length is as an English
	// word length. It does not affect acceptance; see DESIGN.md.
	WordLengthScore float64
}

// IndexOfCoincidence computes Friedman's IoC over a slice of alphabet
// indices: sum f_i*(f_i-1) over all 26 letters, divided by len*(len-1).
func IndexOfCoincidence(text []int) float64 {
	if len(text) < 2 {
		return 0
	}
	var frequencies [alphabet.Size]int
	for _, idx := range text {
		frequencies[idx]++
	}
	total := 0.0
	for _, f := range frequencies {
		total += float64(f * (f - 1))
	}
	return total / float64(len(text)*(len(text)-1))
}

// MeanIoC computes the unweighted average IoC of the `cols` Caesar-shifted
// columns formed by splitting text at stride `cols`. This matches the
// authoritative mean_ioc in the original source (not the column-length
// weighted version found in an earlier, superseded revision): every column
// contributes equally regardless of its length.
func MeanIoC(text []int, cols int) float64 {
	if cols <= 0 {
		return 0
	}
	total := 0.0
	for col := 0; col < cols; col++ {
		column := make([]int, 0, len(text)/cols+1)
		for i := col; i < len(text); i += cols {
			column = append(column, text[i])
		}
		total += IndexOfCoincidence(column)
	}
	return total / float64(cols)
}

// englishWordLengthFrequency is a standard approximate distribution of
// English word lengths by character count (index 0 unused, index i holds
// the frequency of length-i words). Used only for the auxiliary,
// non-filtering WordLengthScore signal described in SPEC_FULL.md.
var englishWordLengthFrequency = []float64{
	0, 0.03, 0.16, 0.21, 0.16, 0.11, 0.09, 0.07, 0.05, 0.04, 0.03, 0.02,
	0.01, 0.01, 0.005, 0.005,
}

func wordLengthFrequency(length int) float64 {
	if length < len(englishWordLengthFrequency) {
		return englishWordLengthFrequency[length]
	}
	return 0.001
}

// Estimate returns candidate cycleword lengths in [1, maxLength], sorted by
// descending z-score, whose z-scored mean IoC clears nSigmaThreshold and
// whose raw mean IoC clears iocThreshold.
func Estimate(text []int, maxLength int, nSigmaThreshold, iocThreshold float64) []Candidate {
	if maxLength < 1 {
		return nil
	}

	meanIoCs := make([]float64, maxLength)
	for i := 0; i < maxLength; i++ {
		meanIoCs[i] = MeanIoC(text, i+1)
	}

	mu := mean(meanIoCs)
	sigma := stddev(meanIoCs, mu)

	candidates := make([]Candidate, 0, maxLength)
	for i, m := range meanIoCs {
		length := i + 1
		z := 0.0
		if sigma > 0 {
			z = (m - mu) / sigma
		}
		if z > nSigmaThreshold && m > iocThreshold {
			candidates = append(candidates, Candidate{
				Length:          length,
				MeanIoC:         m,
				ZScore:          z,
				WordLengthScore: wordLengthFrequency(length) * m,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ZScore > candidates[j].ZScore
	})
	return candidates
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func stddev(values []float64, mu float64) float64 {
	total := 0.0
	for _, v := range values {
		total += math.Pow(v-mu, 2)
	}
	return math.Sqrt(total / float64(len(values)))
}
