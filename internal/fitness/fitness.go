// Package fitness implements the composite scoring function the hill
// climber optimizes: a weighted blend of n-gram log-likelihood,
// crib-match fraction, IoC-proximity-to-English, and
// entropy-proximity-to-English, calibrated by a fixed constant carried
// over from the original source.
package fitness

import (
	"math"

	"quagmire_solve/internal/alphabet"
	"quagmire_solve/internal/crib"
	"quagmire_solve/internal/ngram"
	"quagmire_solve/internal/period"
)

// English-language target constants the IoC and entropy components score
// proximity to. Carried over unchanged from the original source.
const (
	englishIoCTarget     = 1.742 // Friedman's IoC x 26 for English
	englishEntropyTarget = 2.85  // nats
	// calibration is the original source's 3.41 constant: "score for
	// example cipher of length 97 (using the current weighting scheme)".
	// Kept as-is per spec.md's instruction to preserve it unchanged.
	calibration = 3.41
)

// Weights holds the four component weights from spec.md §4.5's CLI flags.
type Weights struct {
	Ngram   float64
	Crib    float64
	IoC     float64
	Entropy float64
}

// Score computes the composite fitness of decrypted plaintext (alphabet
// indices) given the n-gram model, any cribs, and the component weights.
// Grounded on the original source's state_score.
func Score(decrypted []int, model *ngram.Model, cribs []crib.Crib, weights Weights) float64 {
	ngramScore := model.Score(decrypted)
	cribScore := CribScore(decrypted, cribs)
	iocScore := math.Exp(-math.Pow(float64(alphabet.Size)*period.IndexOfCoincidence(decrypted)-englishIoCTarget, 2))
	entropyScore := math.Exp(-math.Pow(Entropy(decrypted)-englishEntropyTarget, 2))

	sumWeights := weights.Ngram + weights.Crib + weights.IoC + weights.Entropy
	weighted := weights.Ngram*ngramScore + weights.Crib*cribScore + weights.IoC*iocScore + weights.Entropy*entropyScore
	return weighted / sumWeights / calibration
}

// CribScore is the fraction of cribs whose position in decrypted matches
// the expected plaintext symbol. Naive: it does not exploit any symmetry
// of the cipher transform, matching the original source's crib_score.
func CribScore(decrypted []int, cribs []crib.Crib) float64 {
	if len(cribs) == 0 {
		return 0
	}
	matches := 0
	for _, c := range cribs {
		if decrypted[c.Position] == c.Plaintext {
			matches++
		}
	}
	return float64(matches) / float64(len(cribs))
}

// Entropy computes the Shannon entropy (in nats) of decrypted text's
// letter distribution. Grounded on the original source's entropy.
func Entropy(decrypted []int) float64 {
	var frequencies [alphabet.Size]int
	for _, idx := range decrypted {
		frequencies[idx]++
	}

	length := float64(len(decrypted))
	entropy := 0.0
	for _, f := range frequencies {
		if f == 0 {
			continue
		}
		p := float64(f) / length
		entropy -= p * math.Log(p)
	}
	return entropy
}

// ChiSquared is a diagnostic-only statistic (not part of the composite
// score, and not called anywhere in this repository) comparing decrypted's letter distribution
// against the English monogram frequencies. Grounded on the original
// source's chi_squared, which is likewise unused in scoring.
func ChiSquared(decrypted []int) float64 {
	var frequencies [alphabet.Size]int
	for _, idx := range decrypted {
		frequencies[idx]++
	}

	chiSquared := 0.0
	for i, f := range frequencies {
		expected := alphabet.EnglishMonogramFrequency[i]
		diff := float64(f) - expected
		chiSquared += diff * diff / expected
	}
	return chiSquared
}
