package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateFindsSolution(t *testing.T) {
	assert := assert.New(t)
	words := pool(
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
		"stink", "grade", "quiet", "bench", "abate", "feign",
	)
	history, err := Simulate(words, wd("karma"), wd("cigar"), 6)
	assert.NoError(err)
	assert.NotEmpty(history)
	last := history[len(history)-1]
	assert.Equal(wd("karma"), last.Word)
	assert.True(last.Feedback.AllCorrect())
	// the recorded feedback replays against the solution
	for _, g := range history {
		assert.Equal(ComputeFeedback(wd("karma"), g.Word), g.Feedback)
	}
}

func TestSimulateEveryWordSolvable(t *testing.T) {
	assert := assert.New(t)
	words := pool(
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
	)
	for _, solution := range words {
		history, err := Simulate(words, solution, wd("serve"), 8)
		assert.NoError(err, "solution %s", solution)
		assert.Equal(solution, history[len(history)-1].Word)
	}
}

func TestSimulateSolutionMissing(t *testing.T) {
	words := pool("aaaaa")
	_, err := Simulate(words, wd("bbbbb"), wd("aaaaa"), 6)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSimulateOutOfGuesses(t *testing.T) {
	words := pool("fight", "might", "night", "right")
	_, err := Simulate(words, wd("right"), wd("fight"), 1)
	assert.ErrorIs(t, err, ErrOutOfGuesses)
}

func TestPickMode(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(ModeElimination, PickMode(Reset(), 100))
	assert.Equal(ModeNormal, PickMode(Reset(), 5))
	deep := hist("crane", "rrrrr", "moody", "rrrrr")
	assert.Equal(ModeNormal, PickMode(deep, 100))
}
