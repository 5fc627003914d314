package solver

import (
	"errors"
	"math"
	"sort"
)

// Mode selects the ranking strategy. ModeNormal scores only live
// candidates; ModeElimination scores the full word list, trading
// likelihood of being the answer for information gained.
type Mode int

const (
	ModeNormal Mode = iota
	ModeElimination
)

var ErrNoCandidates = errors.New("no candidate words remain")

// Suggestion is one ranked guess. Candidate reports whether the word is
// still a possible answer.
type Suggestion struct {
	Word      Word
	Score     float64
	Candidate bool
}

const (
	misplacedPenalty  = 50.0
	eliminationWeight = 0.5
	candidateBonus    = 1.2
	repeatPenalty     = 0.9
)

// poolStats are letter frequencies over the candidate set, the signal the
// scoring function ranks against.
type poolStats struct {
	positional [WordLength][26]int
	global     [26]int
}

func newPoolStats(pool []Word) *poolStats {
	var s poolStats
	for _, word := range pool {
		for i, letter := range word {
			s.positional[i][letter-'a']++
			s.global[letter-'a']++
		}
	}
	return &s
}

// scoreWord scores one guess. A word carrying a globally excluded letter,
// or contradicting a known position, scores negative infinity: it is
// provably not the answer and no numeric score may resurrect it.
func scoreWord(word Word, c *Constraints, stats *poolStats, mode Mode, candidate bool) float64 {
	var seen [26]bool
	distinct := 0
	score := 0.0
	for i, letter := range word {
		if c.excluded.Contains(letter) {
			return math.Inf(-1)
		}
		if c.known[i] != 0 && c.known[i] != letter {
			return math.Inf(-1)
		}
		// known present but misplaced here: still legal, rarely useful
		if c.present.Contains(letter) && c.excludedAt[i].Contains(letter) {
			score -= misplacedPenalty
		}
		if seen[letter-'a'] {
			continue
		}
		seen[letter-'a'] = true
		distinct++
		score += float64(stats.positional[i][letter-'a'])
		if mode == ModeElimination {
			score += eliminationWeight * float64(stats.global[letter-'a'])
		}
	}
	if candidate && mode != ModeElimination {
		score *= candidateBonus
	}
	if distinct < WordLength {
		score *= repeatPenalty
	}
	return score
}

// Suggest ranks the best next guesses. Frequency statistics always come
// from the candidate set; ModeElimination only widens which words get
// scored. Spent guesses are never re-suggested, disqualified words never
// appear in any mode, and ties break by live-candidate first, then
// lexicographically, so identical inputs always produce identical output.
// k limits the result length; k <= 0 returns everything.
func Suggest(candidates, wordList []Word, history History, mode Mode, k int) ([]Suggestion, error) {
	if len(wordList) == 0 {
		return nil, ErrEmptyWordList
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) == 1 {
		// the sole survivor is the answer, even if already played
		return []Suggestion{{Word: candidates[0], Candidate: true}}, nil
	}

	c, _ := DeriveConstraints(history)
	stats := newPoolStats(candidates)
	isCandidate := make(map[Word]bool, len(candidates))
	for _, w := range candidates {
		isCandidate[w] = true
	}

	pool := candidates
	if mode == ModeElimination {
		pool = wordList
	}
	ranked := make([]Suggestion, 0, len(pool))
	for _, word := range pool {
		if history.Seen(word) {
			continue
		}
		score := scoreWord(word, c, stats, mode, isCandidate[word])
		if math.IsInf(score, -1) {
			continue
		}
		ranked = append(ranked, Suggestion{Word: word, Score: score, Candidate: isCandidate[word]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Candidate != ranked[j].Candidate {
			return ranked[i].Candidate
		}
		return ranked[i].Word.String() < ranked[j].Word.String()
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}
