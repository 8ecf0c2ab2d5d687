// Package climb implements the shotgun-restarted hill climber: for a fixed
// (period, plaintext-keyword-length, ciphertext-keyword-length) tuple,
// repeatedly restart from a fresh or backtracked-to-best state and walk
// uphill on the composite fitness score, occasionally accepting a
// worse-scoring move (slip) or being forced to perturb the keyword by a
// crib contradiction.
package climb

import (
	"quagmire_solve/internal/cipher"
	"quagmire_solve/internal/crib"
	"quagmire_solve/internal/fitness"
	"quagmire_solve/internal/ngram"
	"quagmire_solve/internal/perturb"
)

// Config parameterizes one hill-climb run over a single
// (period, PT-keyword-length, CT-keyword-length) tuple.
type Config struct {
	CipherType           cipher.Type
	Ciphertext           []int
	Cribs                []crib.Crib
	Model                *ngram.Model
	Weights              fitness.Weights
	PlaintextKeywordLen  int
	CiphertextKeywordLen int
	CyclewordLen         int
	Iterations           int // hill-climb steps per restart
	Restarts             int
	BacktrackProb        float64
	KeywordPermProb      float64
	SlipProb             float64
	Swap                 bool
	Perturber            *perturb.Perturber
}

// Result is the best state found across every restart.
type Result struct {
	Score             float64
	PlaintextKeyword  []int
	CiphertextKeyword []int
	Cycleword         []int
	Decrypted         []int
	Backtracks        int
	Slips             int
	Contradictions    int
}

type state struct {
	pt, ct, cw []int
}

func (s *state) clone() *state {
	return &state{
		pt: append([]int(nil), s.pt...),
		ct: append([]int(nil), s.ct...),
		cw: append([]int(nil), s.cw...),
	}
}

func (cfg *Config) variant(s *state) *cipher.Variant {
	return &cipher.Variant{
		Type:              cfg.CipherType,
		PlaintextKeyword:  s.pt,
		CiphertextKeyword: s.ct,
		Cycleword:         s.cw,
	}
}

// transform runs the cipher transform appropriate for cfg.Swap (the
// "variant" flag): decrypt for non-variant, encrypt for variant
// (spec.md §4.5; quagmire.c:1632 applies quagmire_encrypt to the
// ciphertext under -variant with keywords in normal order).
func (cfg *Config) transform(s *state) []int {
	v := cfg.variant(s)
	if cfg.Swap {
		return v.Encrypt(cfg.Ciphertext)
	}
	return v.Decrypt(cfg.Ciphertext)
}

func (cfg *Config) score(s *state) float64 {
	decrypted := cfg.transform(s)
	return fitness.Score(decrypted, cfg.Model, cfg.Cribs, cfg.Weights)
}

// Run performs cfg.Restarts shotgun restarts, each walking cfg.Iterations
// hill-climbing steps, and returns the best state found. Grounded on the
// original source's quagmire_shotgun_hill_climber.
func Run(cfg Config) Result {
	var best *state
	bestScore := negInf

	var backtracks, slips, contradictions int

	for restart := 0; restart < cfg.Restarts; restart++ {
		var current *state
		if best != nil && bestScore > 0 && cfg.Perturber.Source.Float() < cfg.BacktrackProb {
			current = best.clone()
			backtracks++
		} else {
			current = cfg.freshState()
		}

		result := cfg.runRestart(current)
		slips += result.slips
		contradictions += result.contradictions
		if result.score > bestScore {
			bestScore = result.score
			best = result.state
		}
	}

	if best == nil {
		best = cfg.freshState()
	}

	decrypted := cfg.transform(best)
	return Result{
		Score:             bestScore,
		PlaintextKeyword:  best.pt,
		CiphertextKeyword: best.ct,
		Cycleword:         best.cw,
		Decrypted:         decrypted,
		Backtracks:        backtracks,
		Slips:             slips,
		Contradictions:    contradictions,
	}
}

const negInf = -1e18

type restartResult struct {
	state          *state
	score          float64
	slips          int
	contradictions int
}

// runRestart walks cfg.Iterations steps from the given starting state,
// using crib contradictions to force keyword perturbation and occasional
// slips to escape local maxima, and returns the best state seen.
//
// mustPerturbKW starts false on every fresh restart (spec.md §4.7), rather
// than true as the original source's restart initializer sets it - that
// initial value never survives past the first contradiction check anyway,
// so this is a faithful rendering of the documented algorithm.
func (cfg *Config) runRestart(current *state) restartResult {
	currentScore := cfg.score(current)

	bestInRestart := current.clone()
	bestScoreInRestart := currentScore

	mustPerturbKW := false
	var slips, contradictions int

	for iter := 0; iter < cfg.Iterations; iter++ {
		local := current.clone()

		perturbKeyword := cfg.CipherType != cipher.Beaufort &&
			(mustPerturbKW || cfg.CipherType == cipher.Vigenere || cfg.Perturber.Source.Float() < cfg.KeywordPermProb)

		if perturbKeyword {
			cfg.perturbKeywords(local)
		} else {
			cfg.Perturber.Cycleword(local.cw)
		}

		if cfg.CipherType != cipher.Vigenere && cfg.CipherType != cipher.Beaufort {
			mustPerturbKW = false
			contradiction := crib.ConstrainCycleword(cfg.Ciphertext, cfg.Cribs, local.pt, local.ct, local.cw, cfg.Swap)
			if contradiction {
				mustPerturbKW = true
				contradictions++
			}
		}

		localScore := cfg.score(local)

		if localScore > currentScore {
			current = local
			currentScore = localScore
		} else if cfg.Perturber.Source.Float() < cfg.SlipProb {
			current = local
			currentScore = localScore
			slips++
		}

		if currentScore > bestScoreInRestart {
			bestScoreInRestart = currentScore
			bestInRestart = current.clone()
		}
	}

	return restartResult{state: bestInRestart, score: bestScoreInRestart, slips: slips, contradictions: contradictions}
}

// perturbKeywords applies the keyword perturbation move appropriate to the
// cipher type's coupling rule.
func (cfg *Config) perturbKeywords(s *state) {
	switch cfg.CipherType {
	case cipher.Vigenere:
		// W = P for Vigenère, and the keyword IS the cycleword (spec.md
		// §4.1), so the cycleword must be re-synced on every perturbation,
		// not just at init (quagmire.c:984).
		cfg.Perturber.Keyword(s.pt, cfg.PlaintextKeywordLen)
		copy(s.ct, s.pt)
		copy(s.cw, s.pt[:cfg.CyclewordLen])
	case cipher.QuagmireIII:
		cfg.Perturber.Keyword(s.pt, cfg.PlaintextKeywordLen)
		copy(s.ct, s.pt)
	case cipher.QuagmireI:
		cfg.Perturber.Keyword(s.pt, cfg.PlaintextKeywordLen)
	case cipher.QuagmireII:
		cfg.Perturber.Keyword(s.ct, cfg.CiphertextKeywordLen)
	case cipher.QuagmireIV:
		if cfg.Perturber.Source.Float() < 0.5 {
			cfg.Perturber.Keyword(s.pt, cfg.PlaintextKeywordLen)
		} else {
			cfg.Perturber.Keyword(s.ct, cfg.CiphertextKeywordLen)
		}
	}
}

// freshState initializes a new random state following each cipher type's
// coupling rule, grounded on the restart-boundary switch in
// quagmire_shotgun_hill_climber.
func (cfg *Config) freshState() *state {
	s := &state{
		pt: make([]int, 26),
		ct: make([]int, 26),
		cw: make([]int, cfg.CyclewordLen),
	}

	switch cfg.CipherType {
	case cipher.Vigenere:
		cfg.Perturber.RandomKeyword(s.pt, cfg.PlaintextKeywordLen)
		copy(s.ct, s.pt)
		copy(s.cw, s.pt[:cfg.CyclewordLen])
	case cipher.QuagmireI:
		cfg.Perturber.RandomKeyword(s.pt, cfg.PlaintextKeywordLen)
		straight(s.ct)
		cfg.Perturber.RandomCycleword(s.cw)
	case cipher.QuagmireII:
		straight(s.pt)
		cfg.Perturber.RandomKeyword(s.ct, cfg.CiphertextKeywordLen)
		cfg.Perturber.RandomCycleword(s.cw)
	case cipher.QuagmireIII:
		cfg.Perturber.RandomKeyword(s.pt, cfg.PlaintextKeywordLen)
		copy(s.ct, s.pt)
		cfg.Perturber.RandomCycleword(s.cw)
	case cipher.QuagmireIV:
		cfg.Perturber.RandomKeyword(s.pt, cfg.PlaintextKeywordLen)
		cfg.Perturber.RandomKeyword(s.ct, cfg.CiphertextKeywordLen)
		cfg.Perturber.RandomCycleword(s.cw)
	case cipher.Beaufort:
		straight(s.pt)
		straight(s.ct)
		cfg.Perturber.RandomCycleword(s.cw)
	}

	return s
}

func straight(dst []int) {
	for i := range dst {
		dst[i] = i
	}
}
