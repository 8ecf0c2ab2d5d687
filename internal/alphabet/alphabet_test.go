package alphabet

import "testing"

func TestIndexLetterRoundTrip(test *testing.T) {
	for _, letter := range []byte("ABCXYZ") {
		index := Index(letter)
		if got := Letter(index); got != letter {
			test.Errorf("Letter(Index(%c)) = %c, expected %c", letter, got, letter)
		}
	}
}

func TestAtbash(test *testing.T) {
	tests := map[int]int{
		0:  25,
		25: 0,
		1:  24,
		12: 13,
	}
	for input, expected := range tests {
		if got := Atbash(input); got != expected {
			test.Errorf("Atbash(%d) = %d, expected %d", input, got, expected)
		}
	}
}

func TestStraight(test *testing.T) {
	straight := Straight()
	if len(straight) != Size {
		test.Fatalf("Expected %d entries, got %d", Size, len(straight))
	}
	for i, v := range straight {
		if v != i {
			test.Errorf("Straight()[%d] = %d, expected %d", i, v, i)
		}
	}
}

func TestEnglishMonogramFrequencySumsNearOne(test *testing.T) {
	total := 0.0
	for _, f := range EnglishMonogramFrequency {
		total += f
	}
	if total < 0.99 || total > 1.01 {
		test.Errorf("Expected frequencies to sum to ~1.0, got %v", total)
	}
}
