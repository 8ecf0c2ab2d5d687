package cmd

import (
	"strings"
	"testing"

	"quagmire_solve/internal/ngram"
)

func TestIsAllLetters(t *testing.T) {
	if !isAllLetters("HELLO") {
		t.Errorf("expected HELLO to be all letters")
	}
	if isAllLetters("HELLO1") {
		t.Errorf("expected HELLO1 to be rejected")
	}
	if isAllLetters("") {
		t.Errorf("expected empty string to be rejected")
	}
}

func TestIsAllLettersOrBlank(t *testing.T) {
	if !isAllLettersOrBlank("HE_LO") {
		t.Errorf("expected HE_LO to be accepted")
	}
	if isAllLettersOrBlank("HE LO") {
		t.Errorf("expected a space to be rejected")
	}
}

func TestResolvePinnedPrefersPerRole(t *testing.T) {
	if got := resolvePinned(5, 8); got != 8 {
		t.Errorf("expected per-role pin 8 to win, got %d", got)
	}
	if got := resolvePinned(5, 0); got != 5 {
		t.Errorf("expected shared pin 5 when no per-role pin set, got %d", got)
	}
	if got := resolvePinned(0, 0); got != 0 {
		t.Errorf("expected 0 (unpinned) when neither is set, got %d", got)
	}
}

func TestResolveSeedValuePassesThroughNonzero(t *testing.T) {
	if got := resolveSeedValue(42); got != 42 {
		t.Errorf("expected nonzero seed to pass through unchanged, got %d", got)
	}
	if got := resolveSeedValue(0); got == 0 {
		t.Errorf("expected a zero seed to be replaced by a clock-derived value")
	}
}

func TestPerformSolveRejectsBadCipherType(t *testing.T) {
	params := DefaultSolveParams()
	params.CipherType = 9
	if _, err := PerformSolve("ABCDEF", nil, nil, params); err == nil {
		t.Fatalf("expected an error for an out-of-range cipher type")
	}
}

func TestPerformSolveRejectsShortCiphertext(t *testing.T) {
	params := DefaultSolveParams()
	if _, err := PerformSolve("A", nil, nil, params); err == nil {
		t.Fatalf("expected an error for a too-short ciphertext")
	}
}

func TestPerformSolveRejectsNonLetterCiphertext(t *testing.T) {
	params := DefaultSolveParams()
	if _, err := PerformSolve("ABC123", nil, nil, params); err == nil {
		t.Fatalf("expected an error for a non-letter ciphertext symbol")
	}
}

func TestPerformSolveRejectsMismatchedCribLength(t *testing.T) {
	params := DefaultSolveParams()
	params.Crib = "AB"
	if _, err := PerformSolve("ABCDEF", nil, nil, params); err == nil {
		t.Fatalf("expected an error for a crib/ciphertext length mismatch")
	}
}

func TestPerformSolveRunsEndToEndForVigenere(t *testing.T) {
	model, err := ngram.Load(strings.NewReader("ABCD\t5\n"), 4)
	if err != nil {
		t.Fatalf("ngram.Load: %v", err)
	}

	params := DefaultSolveParams()
	params.Seed = 1
	params.NRestarts = 2
	params.NHillClimbs = 5
	params.CyclewordLen = 3

	result, err := PerformSolve("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGGOES", model, nil, params)
	if err != nil {
		t.Fatalf("PerformSolve: %v", err)
	}
	if len(result.Plaintext) != len("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGGOES") {
		t.Errorf("expected decrypted plaintext to be the same length as the ciphertext")
	}
	if result.CyclewordLen != 3 {
		t.Errorf("expected the pinned cycleword length 3, got %d", result.CyclewordLen)
	}
}
