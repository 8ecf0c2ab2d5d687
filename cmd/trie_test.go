package cmd

import (
	"testing"
	"time"
)

func TestAdds(test *testing.T) {
	trie := newTrie()
	trie.addValueForString("HELLO", nil)

	childTrie := trie.children['H'-ASCII_A]
	if childTrie == nil {
		test.Errorf("H should have been present as a child but was not")
	}

	if childTrie.children['E'-ASCII_A] == nil {
		test.Errorf("E should have been present within H but was not")
	}
}

type addRetrieveTest struct {
	input           string
	value           interface{}
	shouldBePresent bool
}

func TestAddingRetrieving(test *testing.T) {
	tests := []addRetrieveTest{
		addRetrieveTest{"THIRSTY", 123, true},
		addRetrieveTest{"THI", nil, true},
		addRetrieveTest{"THIS", nil, false},
	}
	for index, testCase := range tests {
		trie := newTrie()
		if testCase.shouldBePresent {
			trie.addValueForString(testCase.input, testCase.value)
		}

		value, stringWasPresent := trie.GetValueForString(testCase.input)
		if stringWasPresent != testCase.shouldBePresent {
			test.Errorf("Test case %d: expected %v for string's presence, got %v", index, testCase.shouldBePresent, stringWasPresent)
		}

		if value != testCase.value {
			test.Errorf("Test case %d: Expected value of %v but got %v", index, testCase.value, value)
		}
	}
}

func TestIterateWords(test *testing.T) {
	tests := map[string]int{
		"STRINGING": 123,
		"STRING":    456,
	}

	trie := newTrie()
	for testWord, testValue := range tests {
		trie.addValueForString(testWord, testValue)
	}

	words := make(chan TrieWord)
	timer := time.NewTimer(1 * time.Second)

	go trie.FeedWordsToChannel(words)
	found := 0
	for found < len(tests) {
		select {
		case foundTrieWord := <-words:
			testCount, wasPresent := tests[foundTrieWord.Word]
			if !wasPresent {
				test.Errorf("Channel put out a word that's not in test case: %s", foundTrieWord.Word)
			}
			if testCount != foundTrieWord.Value.(int) {
				test.Errorf("Expected count of %d for %s but got %d", testCount, foundTrieWord.Word, foundTrieWord.Value)
			}
			found++
		case <-timer.C:
			test.Errorf("Timed out waiting for %d more words", len(tests)-found)
			return
		}
	}
}
