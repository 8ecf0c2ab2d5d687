package ngram

import (
	"strings"
	"testing"
)

func TestIndexRoundTrip(test *testing.T) {
	tests := map[string]int{
		"AA": 0,
		"BA": 1,
		"AB": 26,
		"ZZ": 25 + 25*26,
	}
	for gram, expected := range tests {
		got, err := Index(gram)
		if err != nil {
			test.Fatalf("Index(%q) returned error: %v", gram, err)
		}
		if got != expected {
			test.Errorf("Index(%q) = %d, expected %d", gram, got, expected)
		}
	}
}

func TestIndexRejectsNonLetters(test *testing.T) {
	if _, err := Index("A1"); err == nil {
		test.Errorf("Expected an error for non-letter input, got nil")
	}
}

func TestLoadNormalizesToSumOne(test *testing.T) {
	data := "AA\t10\nAB\t5\nBA\t1\n"
	model, err := Load(strings.NewReader(data), 2)
	if err != nil {
		test.Fatalf("Load returned error: %v", err)
	}

	total := 0.0
	for _, v := range model.table {
		total += v
	}
	if total < 0.999 || total > 1.001 {
		test.Errorf("Expected table to sum to ~1.0 after normalization, got %v", total)
	}
}

func TestLoadRejectsMismatchedLength(test *testing.T) {
	data := "AAA\t10\n"
	if _, err := Load(strings.NewReader(data), 2); err == nil {
		test.Errorf("Expected an error for mismatched ngram length, got nil")
	}
}

func TestScoreHigherForMoreFrequentNgrams(test *testing.T) {
	data := "TH\t1000\nXQ\t1\n"
	model, err := Load(strings.NewReader(data), 2)
	if err != nil {
		test.Fatalf("Load returned error: %v", err)
	}

	th := []int{19, 7, 19, 7, 19, 7} // THTHTH as indices
	xq := []int{23, 16, 23, 16, 23, 16}

	if model.Score(th) <= model.Score(xq) {
		test.Errorf("Expected THTHTH to score higher than XQXQXQ")
	}
}
