package solver

import (
	"errors"

	mapset "github.com/deckarep/golang-set"
)

var ErrEmptyWordList = errors.New("word list is empty")

// Constraints is the state derived from a history. It decomposes a single
// invariant: a word passes FilterCandidates iff replaying every guess in
// the history against it reproduces the recorded feedback.
type Constraints struct {
	known      [WordLength]rune // confirmed letter per position, 0 unknown
	excludedAt [WordLength]mapset.Set
	present    mapset.Set
	excluded   mapset.Set
	minCount   map[rune]int
	exactCount map[rune]int
}

// Conflict records contradictory feedback across guesses, which honest
// play never produces. The most recent deduction wins; the conflict is
// surfaced so the caller can warn. For an exact-count disagreement
// Position is -1 and Prev/Next are counts; for an overwritten known
// position they are the prior and superseding letters.
type Conflict struct {
	Letter   rune
	Position int
	Prev     int
	Next     int
}

// NewConstraints returns the all-empty state of an empty history.
func NewConstraints() *Constraints {
	c := &Constraints{
		present:    mapset.NewThreadUnsafeSet(),
		excluded:   mapset.NewThreadUnsafeSet(),
		minCount:   make(map[rune]int),
		exactCount: make(map[rune]int),
	}
	for i := range c.excludedAt {
		c.excludedAt[i] = mapset.NewThreadUnsafeSet()
	}
	return c
}

// DeriveConstraints rebuilds the constraint state from the full history.
//
// Within a guess the passes run correct, then present, then absent. The
// ordering matters for duplicated letters: a letter that is non-absent in
// one slot and absent in another pins an exact occurrence count and must
// not reach the global excluded set, or words carrying it once would be
// wrongly purged.
func DeriveConstraints(history History) (*Constraints, []Conflict) {
	c := NewConstraints()
	var conflicts []Conflict
	for _, g := range history {
		var total, nonAbsent [26]int
		for _, letter := range g.Word {
			total[letter-'a']++
		}
		for i, letter := range g.Word {
			if g.Feedback[i] != Correct {
				continue
			}
			if prev := c.known[i]; prev != 0 && prev != letter {
				conflicts = append(conflicts, Conflict{Letter: letter, Position: i, Prev: int(prev), Next: int(letter)})
			}
			c.known[i] = letter
			c.present.Add(letter)
			nonAbsent[letter-'a']++
		}
		for i, letter := range g.Word {
			if g.Feedback[i] != Present {
				continue
			}
			c.excludedAt[i].Add(letter)
			c.present.Add(letter)
			nonAbsent[letter-'a']++
		}
		for i, letter := range g.Word {
			if g.Feedback[i] != Absent {
				continue
			}
			// An absent letter cannot sit at its own slot either, or it
			// would have come back green.
			c.excludedAt[i].Add(letter)
			if !c.present.Contains(letter) && !c.knownSomewhere(letter) {
				c.excluded.Add(letter)
			}
		}
		seen := make(map[rune]bool, WordLength)
		for _, letter := range g.Word {
			if seen[letter] {
				continue
			}
			seen[letter] = true
			n := nonAbsent[letter-'a']
			if n > c.minCount[letter] {
				c.minCount[letter] = n
			}
			if n < total[letter-'a'] {
				// an absent duplicate caps the letter at exactly n
				if prev, ok := c.exactCount[letter]; ok && prev != n {
					conflicts = append(conflicts, Conflict{Letter: letter, Position: -1, Prev: prev, Next: n})
				}
				c.exactCount[letter] = n
			}
		}
	}
	// a letter proven present by any guess is never globally excluded
	for _, letter := range c.present.ToSlice() {
		c.excluded.Remove(letter)
	}
	return c, conflicts
}

func (c *Constraints) knownSomewhere(letter rune) bool {
	for _, k := range c.known {
		if k == letter {
			return true
		}
	}
	return false
}

// ComputeCandidates derives constraints from history and filters pool down
// to the words consistent with every guess. An empty result is a valid
// terminal state, not an error; an empty pool is the one unrecoverable
// condition.
func ComputeCandidates(history History, pool []Word) ([]Word, []Conflict, error) {
	if len(pool) == 0 {
		return nil, nil, ErrEmptyWordList
	}
	c, conflicts := DeriveConstraints(history)
	return FilterCandidates(pool, c), conflicts, nil
}
