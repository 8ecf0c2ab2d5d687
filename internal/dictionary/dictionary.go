// Package dictionary implements the post-hoc dictionary word spotter: given
// a loaded word list and a stretch of recovered plaintext, report which
// dictionary words appear as substrings. Grounded on the original source's
// find_dictionary_words/load_dictionary, re-expressed with a trie lookup
// instead of a linear per-candidate scan, matching the teacher's trie idiom
// used throughout cmd/ for word lookups (cmd/trie.go).
package dictionary

import (
	"bufio"
	"io"
	"strings"
)

// MinWordLength is the shortest substring considered a dictionary hit,
// carried over from the original source's min_word_len.
const MinWordLength = 3

const asciiA = 'A'

// node is one trie node over the 26-letter alphabet. Unlike cmd/trie.go's
// TrieNode this only needs to answer "is this prefix a word", so it carries
// no value payload or word-boundary sentinel child.
type node struct {
	isWord   bool
	children [26]*node
}

// Trie is an uppercase-letter word trie used to look up every dictionary
// word occurring as a substring of a candidate plaintext.
type Trie struct {
	root *node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Load reads one uppercase word per line from r and inserts it into the
// trie. Lines are upper-cased on the way in, mirroring the teacher's
// feedDictionaryReaders convention of normalizing dictionary input to
// uppercase.
func (t *Trie) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		t.Add(word)
	}
	return scanner.Err()
}

// Add inserts word (assumed uppercase A-Z) into the trie.
func (t *Trie) Add(word string) {
	cur := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - asciiA
		if idx > 25 {
			return
		}
		if cur.children[idx] == nil {
			cur.children[idx] = &node{}
		}
		cur = cur.children[idx]
	}
	cur.isWord = true
}

// Has reports whether word is present in the trie.
func (t *Trie) Has(word string) bool {
	cur := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - asciiA
		if idx > 25 || cur.children[idx] == nil {
			return false
		}
		cur = cur.children[idx]
	}
	return cur.isWord
}

// FindWords scans every substring of text of length >= MinWordLength and
// returns the distinct dictionary words found, in first-occurrence order.
// Grounded on find_dictionary_words's sliding window over the decrypted
// plaintext.
func (t *Trie) FindWords(text string) []string {
	seen := make(map[string]bool)
	var found []string

	for start := 0; start < len(text); start++ {
		cur := t.root
		for end := start; end < len(text); end++ {
			idx := text[end] - asciiA
			if idx > 25 || cur.children[idx] == nil {
				break
			}
			cur = cur.children[idx]
			length := end - start + 1
			if length >= MinWordLength && cur.isWord {
				word := text[start : end+1]
				if !seen[word] {
					seen[word] = true
					found = append(found, word)
				}
			}
		}
	}
	return found
}
