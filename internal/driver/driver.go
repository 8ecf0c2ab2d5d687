// Package driver enumerates the (cycleword length, plaintext-keyword
// length, ciphertext-keyword length) search space for a given cipher type,
// filtering tuples the cipher type's coupling rules rule out or the crib
// gate rejects, running the hill climber over each survivor, and keeping
// the best result across the whole search. Grounded on the original
// source's main() driver loop.
package driver

import (
	"quagmire_solve/internal/cipher"
	"quagmire_solve/internal/climb"
	"quagmire_solve/internal/crib"
	"quagmire_solve/internal/fitness"
	"quagmire_solve/internal/ngram"
	"quagmire_solve/internal/period"
	"quagmire_solve/internal/perturb"
	"quagmire_solve/internal/rng"
)

// Request bundles everything the driver needs to run a full search over
// one ciphertext.
type Request struct {
	CipherType cipher.Type
	Swap       bool
	Ciphertext []int
	Cribs      []crib.Crib
	Model      *ngram.Model
	Weights    fitness.Weights

	CyclewordLengths []int // candidate periods, e.g. from period.Estimate
	// If positive, pins the exact length instead of scanning the range.
	PlaintextKeywordLen  int
	CiphertextKeywordLen int
	MinKeywordLen        int
	MaxPlaintextKeywordLen  int
	MaxCiphertextKeywordLen int

	Iterations      int
	Restarts        int
	BacktrackProb   float64
	KeywordPermProb float64
	SlipProb        float64

	FrequencyWeightedPerturbation bool
	CheckCribsBeforeClimbing      bool
	Seed                          uint64
}

// Best is the overall best result across every surviving tuple, annotated
// with the tuple it came from.
type Best struct {
	climb.Result
	CyclewordLen         int
	PlaintextKeywordLen  int
	CiphertextKeywordLen int
}

// Run enumerates every (cycleword length, PT keyword length, CT keyword
// length) tuple permitted by req.CipherType's coupling rule, skips any
// that the crib gate rejects (when req.CheckCribsBeforeClimbing is set),
// runs the hill climber on every survivor, and returns the best.
func Run(req Request) *Best {
	source := rng.New(req.Seed)
	perturber := &perturb.Perturber{Source: source, FrequencyWeighted: req.FrequencyWeightedPerturbation}

	ptLo, ptHi := keywordRange(req.PlaintextKeywordLen, req.MinKeywordLen, req.MaxPlaintextKeywordLen)
	ctLo, ctHi := keywordRange(req.CiphertextKeywordLen, req.MinKeywordLen, req.MaxCiphertextKeywordLen)

	if len(req.CyclewordLengths) == 0 {
		return nil
	}

	var best *Best

	cwInc := NewSliceIncrementer[int]("cycleword-len", req.CyclewordLengths)
	ptInc := NewRangeIncrementer("plaintext-keyword-len", ptLo, ptHi)
	ctInc := NewRangeIncrementer("ciphertext-keyword-len", ctLo, ctHi)
	odo := NewIncrementerIncrementer[int]("search-tuple", []Incrementer[int]{cwInc, ptInc, ctInc})

	tryTuple := func(cwLen, ptLen, ctLen int) {
		if !coupled(req.CipherType, cwLen, ptLen, ctLen) {
			return
		}

		if req.CheckCribsBeforeClimbing && !crib.Satisfied(req.Ciphertext, req.Cribs, cwLen) {
			return
		}

		cfg := climb.Config{
			CipherType:           req.CipherType,
			Ciphertext:           req.Ciphertext,
			Cribs:                req.Cribs,
			Model:                req.Model,
			Weights:              req.Weights,
			PlaintextKeywordLen:  ptLen,
			CiphertextKeywordLen: ctLen,
			CyclewordLen:         cwLen,
			Iterations:           req.Iterations,
			Restarts:             req.Restarts,
			BacktrackProb:        req.BacktrackProb,
			KeywordPermProb:      req.KeywordPermProb,
			SlipProb:             req.SlipProb,
			Swap:                 req.Swap,
			Perturber:            perturber,
		}

		result := climb.Run(cfg)
		if best == nil || result.Score > best.Score {
			best = &Best{Result: result, CyclewordLen: cwLen, PlaintextKeywordLen: ptLen, CiphertextKeywordLen: ctLen}
		}
	}

	// The odometer only emits a value on Increment, so the very first
	// (un-incremented) tuple has to be tried explicitly.
	tryTuple(cwInc.GetCurrentValue(), ptInc.GetCurrentValue(), ctInc.GetCurrentValue())
	for !odo.IsMaxed() {
		vals := odo.Increment()
		tryTuple(vals[0], vals[1], vals[2])
	}

	return best
}

// coupled implements the per-cipher-type tuple filters from the original
// source's driver loop: Vigenere and Quagmire III require PT len == CT
// len; Vigenere additionally requires both to equal the cycleword length;
// Beaufort only ever searches the trivial keyword-length pair (1,1) since
// its keywords are fixed to the identity permutation regardless of length.
func coupled(cipherType cipher.Type, cyclewordLen, ptLen, ctLen int) bool {
	switch cipherType {
	case cipher.Vigenere:
		return ptLen == ctLen && cyclewordLen == ptLen
	case cipher.QuagmireIII:
		return ptLen == ctLen
	case cipher.Beaufort:
		return ptLen == 1 && ctLen == 1
	default:
		return true
	}
}

// keywordRange resolves a user-pinned keyword length (if positive) or
// scans [max(minLen,1), maxLen).
func keywordRange(pinned, minLen, maxLen int) (int, int) {
	if pinned > 0 {
		return pinned, pinned + 1
	}
	lo := minLen
	if lo < 1 {
		lo = 1
	}
	hi := maxLen
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// EstimatePeriods is a thin re-export of period.Estimate for callers that
// only import the driver package.
func EstimatePeriods(text []int, maxLength int, nSigmaThreshold, iocThreshold float64) []period.Candidate {
	return period.Estimate(text, maxLength, nSigmaThreshold, iocThreshold)
}
