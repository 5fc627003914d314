package solver

import (
	"github.com/bits-and-blooms/bitset"
)

/*
poolIndex indexes a candidate pool for set-wise filtering.

letters[0]['a'] is the set of pool words whose first letter is 'a';
count['b'][1] is the set of pool words with two or more b's. A word is
represented by its index into words. The index is rebuilt for every
filter call so no cached state can drift from the history that should
produce it.
*/
type poolIndex struct {
	words   []Word
	letters [WordLength]map[rune]*bitset.BitSet
	count   map[rune][]*bitset.BitSet
}

func newPoolIndex(words []Word) *poolIndex {
	idx := &poolIndex{
		words: words,
		count: make(map[rune][]*bitset.BitSet, 26),
	}
	for w, word := range words {
		wordLetters := make(map[rune]int, WordLength)
		for i, letter := range word {
			if idx.letters[i] == nil {
				idx.letters[i] = make(map[rune]*bitset.BitSet)
			}
			if _, ok := idx.letters[i][letter]; !ok {
				idx.letters[i][letter] = bitset.New(uint(len(words)))
			}
			idx.letters[i][letter].Set(uint(w))
			wordLetters[letter]++
		}
		for letter, n := range wordLetters {
			for len(idx.count[letter]) < n {
				idx.count[letter] = append(idx.count[letter], bitset.New(uint(len(words))))
			}
			for k := 0; k < n; k++ {
				idx.count[letter][k].Set(uint(w))
			}
		}
	}
	return idx
}

// FilterCandidates returns the words in pool satisfying every predicate of
// the constraint state simultaneously. The predicates are a pure
// conjunction with no ordering dependency. An empty history leaves pool
// unchanged; an empty result is a valid output.
func FilterCandidates(pool []Word, c *Constraints) []Word {
	if len(pool) == 0 {
		return nil
	}
	idx := newPoolIndex(pool)
	live := bitset.New(uint(len(pool))).Complement()

	for i, letter := range c.known {
		if letter == 0 {
			continue
		}
		set, ok := idx.letters[i][letter]
		if !ok {
			return nil
		}
		live.InPlaceIntersection(set)
	}

	// minCount covers the plain "present somewhere" predicate: any letter
	// seen correct or present has a minimum count of at least one.
	for letter, n := range c.minCount {
		counts := idx.count[letter]
		if len(counts) < n {
			return nil
		}
		live.InPlaceIntersection(counts[n-1])
	}

	for letter, exact := range c.exactCount {
		counts := idx.count[letter]
		if exact > 0 {
			if len(counts) < exact {
				return nil
			}
			live.InPlaceIntersection(counts[exact-1])
		}
		if len(counts) > exact {
			live.InPlaceDifference(counts[exact])
		}
	}

	for _, v := range c.excluded.ToSlice() {
		if counts := idx.count[v.(rune)]; len(counts) > 0 {
			live.InPlaceDifference(counts[0])
		}
	}

	for i := range c.excludedAt {
		for _, v := range c.excludedAt[i].ToSlice() {
			if set, ok := idx.letters[i][v.(rune)]; ok {
				live.InPlaceDifference(set)
			}
		}
	}

	indices := make([]uint, live.Count())
	live.NextSetMany(0, indices)
	ret := make([]Word, len(indices))
	for i, n := range indices {
		ret[i] = idx.words[n]
	}
	return ret
}
