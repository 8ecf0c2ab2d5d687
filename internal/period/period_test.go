package period

import (
	"strings"
	"testing"

	"quagmire_solve/internal/cipher"
)

func ord(s string) []int {
	return cipher.OrdString(s)
}

func TestIndexOfCoincidenceOfSingleLetterIsOne(test *testing.T) {
	text := ord(strings.Repeat("A", 20))
	// all one letter: IoC should be at its maximum of 1
	if ioc := IndexOfCoincidence(text); ioc < 0.99 {
		test.Errorf("Expected IoC of 1.0 for a single repeated letter, got %v", ioc)
	}
}

func TestIndexOfCoincidenceOfFlatDistributionIsLow(test *testing.T) {
	text := ord(strings.Repeat("ABCDEFGHIJKLMNOPQRSTUVWXYZ", 10))
	ioc := IndexOfCoincidence(text)
	if ioc > 0.05 {
		test.Errorf("Expected a near-uniform distribution to have low IoC, got %v", ioc)
	}
}

// TestEstimateFindsKnownPeriod covers S3: Vigenere-encrypting
// English-like (skewed letter frequency) plaintext with a period-7 key
// should surface 7 among the accepted candidate periods.
func TestEstimateFindsKnownPeriod(test *testing.T) {
	plaintext := strings.Repeat(
		"THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDTHENATUREOFTHESEATTACKSATDAWNISTHATTHEEEEEEEEEEE", 6)

	keyword := ord("KRYPTOSABCDEFGHIJLMNQUVWXZ")
	variant := &cipher.Variant{
		Type:              cipher.Vigenere,
		PlaintextKeyword:  keyword,
		CiphertextKeyword: keyword,
		Cycleword:         ord("KOMITET")[:7],
	}

	ciphertext := variant.Encrypt(ord(plaintext))

	candidates := Estimate(ciphertext, 20, 1.0, 0.04)
	found := false
	for _, c := range candidates {
		if c.Length == 7 {
			found = true
		}
	}
	if !found {
		test.Errorf("Expected period 7 among accepted candidates, got %+v", candidates)
	}
}
