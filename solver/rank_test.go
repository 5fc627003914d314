package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestSingleWord(t *testing.T) {
	words := pool("apple")
	suggestions, err := Suggest(words, words, Reset(), ModeNormal, 5)
	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, wd("apple"), suggestions[0].Word)
	assert.True(t, suggestions[0].Candidate)
}

func TestSuggestEmptyWordList(t *testing.T) {
	_, err := Suggest(pool("crane"), nil, Reset(), ModeNormal, 5)
	assert.ErrorIs(t, err, ErrEmptyWordList)
}

func TestSuggestNoCandidates(t *testing.T) {
	_, err := Suggest(nil, pool("crane"), Reset(), ModeNormal, 5)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

// no word carrying an excluded letter or fighting a known position is ever
// suggested, in either mode, for any k
func TestDisqualificationDominance(t *testing.T) {
	assert := assert.New(t)
	words := pool(
		"crane", "corny", "moody", "slimy", "early", "brand", "candy",
		"stood", "gloom", "spiky",
	)
	history := hist("crane", "rrrrr", "stood", "grrrr")
	candidates, _, err := ComputeCandidates(history, words)
	assert.NoError(err)

	for _, mode := range []Mode{ModeNormal, ModeElimination} {
		for _, k := range []int{0, 1, 3, 100} {
			suggestions, err := Suggest(candidates, words, history, mode, k)
			assert.NoError(err)
			for _, s := range suggestions {
				for _, letter := range s.Word {
					assert.NotContains([]rune("crane"), letter, "mode %v k %d word %s", mode, k, s.Word)
				}
				assert.Equal('s', s.Word[0], "mode %v k %d word %s", mode, k, s.Word)
			}
		}
	}
}

func TestSuggestDeterminism(t *testing.T) {
	words := pool(
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
	)
	history := hist("humph", "rrrrr")
	candidates, _, err := ComputeCandidates(history, words)
	assert.NoError(t, err)
	first, err1 := Suggest(candidates, words, history, ModeElimination, 0)
	second, err2 := Suggest(candidates, words, history, ModeElimination, 0)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestSuggestTieBreakLexicographic(t *testing.T) {
	// abcde and abced are positionally symmetric, so they tie on score and
	// the lexicographically smaller word must come first
	words := pool("abcde", "abced")
	suggestions, err := Suggest(words, words, Reset(), ModeNormal, 0)
	assert.NoError(t, err)
	assert.Len(t, suggestions, 2)
	assert.Equal(t, wd("abcde"), suggestions[0].Word)
	assert.Equal(t, suggestions[0].Score, suggestions[1].Score)
}

func TestSuggestSkipsSpentGuesses(t *testing.T) {
	assert := assert.New(t)
	words := pool("steal", "tales", "least", "slate")
	// feedback all present keeps every word alive and nothing excluded
	history := hist("steal", "yyyyy")
	candidates, _, err := ComputeCandidates(history, words)
	assert.NoError(err)
	assert.NotContains(WordsToStrings(candidates), "steal")

	suggestions, err := Suggest(candidates, words, history, ModeElimination, 0)
	assert.NoError(err)
	for _, s := range suggestions {
		assert.NotEqual(wd("steal"), s.Word)
	}
}

func TestEliminationModeWidensPool(t *testing.T) {
	assert := assert.New(t)
	words := pool("about", "bound", "strut", "quash", "brash", "milky")
	// u proven present but not in slot two; l, c, k, y proven out
	history := hist("lucky", "ryrrr")
	candidates, _, err := ComputeCandidates(history, words)
	assert.NoError(err)
	assert.Equal(pool("about", "bound", "strut"), candidates)

	normal, err := Suggest(candidates, words, history, ModeNormal, 0)
	assert.NoError(err)
	for _, s := range normal {
		assert.True(s.Candidate)
	}

	// quash and brash are inconsistent with the evidence but carry no
	// excluded letter, so elimination mode may still score them
	elimination, err := Suggest(candidates, words, history, ModeElimination, 0)
	assert.NoError(err)
	nonCandidates := 0
	for _, s := range elimination {
		assert.NotEqual(wd("milky"), s.Word)
		if !s.Candidate {
			nonCandidates++
		}
	}
	assert.Equal(2, nonCandidates)
}

func TestScoreWordMisplacedPenalty(t *testing.T) {
	assert := assert.New(t)
	c, _ := DeriveConstraints(hist("aback", "yrrrr"))
	stats := newPoolStats(pool("toast", "talon", "adapt"))
	// guessing a back at its known-misplaced slot is penalized but legal
	atSlot := scoreWord(wd("angry"), c, stats, ModeNormal, false)
	elsewhere := scoreWord(wd("nagry"), c, stats, ModeNormal, false)
	assert.False(math.IsInf(atSlot, -1))
	assert.Less(atSlot, elsewhere)
}

func TestScoreWordRepeatPenalty(t *testing.T) {
	stats := newPoolStats(pool("moody", "stood", "gloom"))
	c := NewConstraints()
	// stool repeats o, so its positive base score is scaled down
	repeated := scoreWord(wd("stool"), c, stats, ModeNormal, false)
	assert.Greater(t, repeated, 0.0)
	assert.Less(t, repeated, repeated/repeatPenalty)
}

func BenchmarkSuggest(b *testing.B) {
	words := pool(
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
		"stink", "grade", "quiet", "bench", "abate", "feign", "major",
		"death", "fresh", "crust", "stool", "colon", "abase", "marry",
	)
	history := hist("cigar", "rrryr")
	candidates, _, err := ComputeCandidates(history, words)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Suggest(candidates, words, history, ModeElimination, 10)
	}
}
