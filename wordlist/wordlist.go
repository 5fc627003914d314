// Package wordlist loads and validates newline-delimited word lists. The
// solver core never performs I/O; every word passes through here first.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mfranklin/wordlehelper/solver"
)

// Load reads newline-delimited tokens, lowercases them, and keeps the
// five-letter alphabetic ones. Invalid lines and duplicates are skipped;
// input order is preserved.
func Load(r io.Reader) ([]solver.Word, error) {
	seen := make(map[solver.Word]bool)
	var words []solver.Word
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		token := strings.ToLower(strings.TrimSpace(scanner.Text()))
		word, err := solver.ParseWord(token)
		if err != nil {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadFile loads a word list from a file.
func LoadFile(path string) ([]solver.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	words, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Intersect keeps the answers that appear in words. The answer pool only
// biases ranking, so an empty intersection falls back to the full word
// list rather than leaving the solver without answers.
func Intersect(answers, words []solver.Word) []solver.Word {
	inWords := make(map[solver.Word]bool, len(words))
	for _, w := range words {
		inWords[w] = true
	}
	var ret []solver.Word
	for _, w := range answers {
		if inWords[w] {
			ret = append(ret, w)
		}
	}
	if len(ret) == 0 {
		return words
	}
	return ret
}
