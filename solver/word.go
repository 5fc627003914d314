// Package solver is the core of a Wordle helper: it turns a history of
// guess/feedback pairs into the set of words still consistent with the
// evidence, and ranks the next guess. Every operation is a pure function
// of its arguments; the caller owns the history and the word lists, and
// nothing here performs I/O or keeps state between calls.
package solver

import "errors"

// WordLength is the puzzle word length.
const WordLength = 5

var (
	ErrWordLen  = errors.New("word is not five letters")
	ErrWordChar = errors.New("word has a letter outside a-z")
)

// Word is an immutable five-letter lowercase word.
type Word [WordLength]rune

// ParseWord validates s as a lowercase alphabetic word of WordLength
// letters.
func ParseWord(s string) (Word, error) {
	var w Word
	runes := []rune(s)
	if len(runes) != WordLength {
		return w, ErrWordLen
	}
	for i, r := range runes {
		if r < 'a' || r > 'z' {
			return w, ErrWordChar
		}
		w[i] = r
	}
	return w, nil
}

func (w Word) String() string {
	return string(w[:])
}

func StringsToWords(words []string) ([]Word, error) {
	ret := make([]Word, 0, len(words))
	for _, s := range words {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, w := range words {
		ret = append(ret, w.String())
	}
	return ret
}
