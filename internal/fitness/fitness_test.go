package fitness

import (
	"strings"
	"testing"

	"quagmire_solve/internal/cipher"
	"quagmire_solve/internal/crib"
	"quagmire_solve/internal/ngram"
)

func ord(s string) []int {
	return cipher.OrdString(s)
}

// TestIoCNormalizationMatchesFriedmanScale covers S6: on the IoC x
// alphabet.Size scale, a skewed (English-like) letter distribution sits
// above the flat ~1.0 of a uniform distribution.
func TestIoCNormalizationMatchesFriedmanScale(test *testing.T) {
	english := ord(strings.Repeat("ETAOINSHRDLUETAOINSHRDLUETAOIN", 20))
	flat := ord(strings.Repeat("ABCDEFGHIJKLMNOPQRSTUVWXYZ", 20))

	englishIoC := 26 * indexOfCoincidence(english)
	flatIoC := 26 * indexOfCoincidence(flat)

	if englishIoC <= flatIoC {
		test.Errorf("Expected skewed letter distribution to have higher scaled IoC than a flat one: %v vs %v", englishIoC, flatIoC)
	}
}

func TestCribScoreCountsMatches(test *testing.T) {
	decrypted := ord("HELLO")
	cribs := []crib.Crib{
		{Position: 0, Plaintext: ord("H")[0]},
		{Position: 1, Plaintext: ord("X")[0]},
	}
	score := CribScore(decrypted, cribs)
	if score != 0.5 {
		test.Errorf("Expected crib score of 0.5, got %v", score)
	}
}

func TestCribScoreWithNoCribsIsZero(test *testing.T) {
	if CribScore(ord("HELLO"), nil) != 0 {
		test.Errorf("Expected crib score of 0 with no cribs")
	}
}

func TestEntropyOfSingleLetterIsZero(test *testing.T) {
	text := ord(strings.Repeat("A", 50))
	if e := Entropy(text); e != 0 {
		test.Errorf("Expected entropy 0 for a single repeated letter, got %v", e)
	}
}

func TestScoreRewardsCribMatches(test *testing.T) {
	model, err := ngram.Load(strings.NewReader("TH\t10\nHE\t10\n"), 2)
	if err != nil {
		test.Fatalf("Load returned error: %v", err)
	}

	decrypted := ord("THEYWEREHERE")
	weights := Weights{Ngram: 1, Crib: 10, IoC: 1, Entropy: 1}

	matching := []crib.Crib{{Position: 0, Plaintext: decrypted[0]}}
	mismatching := []crib.Crib{{Position: 0, Plaintext: (decrypted[0] + 1) % 26}}

	withMatch := Score(decrypted, model, matching, weights)
	withMismatch := Score(decrypted, model, mismatching, weights)

	if withMatch <= withMismatch {
		test.Errorf("Expected a matching crib to score higher: %v vs %v", withMatch, withMismatch)
	}
}

func indexOfCoincidence(text []int) float64 {
	var frequencies [26]int
	for _, idx := range text {
		frequencies[idx]++
	}
	total := 0.0
	for _, f := range frequencies {
		total += float64(f * (f - 1))
	}
	return total / float64(len(text)*(len(text)-1))
}
