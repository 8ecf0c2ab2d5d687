// Package ngram implements the n-gram language model used by the fitness
// function: a table of log-scaled, normalized n-gram frequencies loaded
// from a "NGRAM\tCOUNT" file, indexed by a Horner-style base-26 encoding of
// the n-gram's letters.
package ngram

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"quagmire_solve/internal/alphabet"
)

// Model is a loaded, normalized n-gram frequency table.
type Model struct {
	Size  int
	table []float64
}

// Load reads "NGRAM\tCOUNT" lines (one per line) from r, converts each raw
// count via log(1+count), and normalizes the whole table so it sums to 1.
// This mirrors the original source's load_ngrams: log-scaling raw corpus
// counts rather than consuming pre-normalized frequencies directly.
func Load(r io.Reader, ngramSize int) (*Model, error) {
	tableSize := intPow(alphabet.Size, ngramSize)
	table := make([]float64, tableSize)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("ngram: malformed line %q, expected NGRAM\\tCOUNT", line)
		}
		gram := parts[0]
		if len(gram) != ngramSize {
			return nil, fmt.Errorf("ngram: entry %q has length %d, expected %d", gram, len(gram), ngramSize)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("ngram: invalid count in line %q: %w", line, err)
		}
		index, err := Index(gram)
		if err != nil {
			return nil, err
		}
		table[index] += math.Log(1. + float64(count))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	total := 0.0
	for _, v := range table {
		total += v
	}
	if total > 0 {
		for i := range table {
			table[i] /= total
		}
	}

	return &Model{Size: ngramSize, table: table}, nil
}

// Index computes the Horner-style base-26 index of an n-gram: the first
// character is the least-significant digit, matching the original source's
// ngram_index_str/ngram_index_int.
func Index(gram string) (int, error) {
	index := 0
	base := 1
	for i := 0; i < len(gram); i++ {
		c := gram[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("ngram: %q contains non-uppercase-letter byte %q", gram, c)
		}
		index += alphabet.Index(c) * base
		base *= alphabet.Size
	}
	return index, nil
}

// Score evaluates the composite n-gram log-likelihood of decrypted text
// (a slice of alphabet indices 0-25), matching the original source's
// ngram_score: sum the table value at each sliding-window index, then
// normalize by 26^n / (len - n).
func (m *Model) Score(decrypted []int) float64 {
	n := m.Size
	if len(decrypted) <= n {
		return 0
	}

	score := 0.0
	for start := 0; start+n < len(decrypted); start++ {
		index := 0
		base := 1
		for j := 0; j < n; j++ {
			index += decrypted[start+j] * base
			base *= alphabet.Size
		}
		score += m.table[index]
	}

	denominator := float64(len(decrypted) - n)
	return math.Pow(float64(alphabet.Size), float64(n)) * score / denominator
}

func intPow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp%2 == 1 {
			result *= base
		}
		exp /= 2
		base *= base
	}
	return result
}
