package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfranklin/wordlehelper/solver"
)

func TestLoadFiltersInvalidEntries(t *testing.T) {
	assert := assert.New(t)
	input := strings.Join([]string{
		"crane",
		"CRANE", // duplicate after lowercasing
		"SLATE",
		"short",
		"too",
		"toolong",
		"cran3",
		"",
		"  moody  ",
	}, "\n")
	words, err := Load(strings.NewReader(input))
	assert.NoError(err)
	assert.Equal([]string{"crane", "slate", "short", "moody"}, solver.WordsToStrings(words))
}

func TestLoadEmpty(t *testing.T) {
	words, err := Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("no-such-file.txt")
	assert.Error(t, err)
}

func TestIntersect(t *testing.T) {
	assert := assert.New(t)
	words, err := Load(strings.NewReader("crane\nslate\nmoody"))
	assert.NoError(err)
	answers, err := Load(strings.NewReader("slate\nnomad"))
	assert.NoError(err)

	assert.Equal([]string{"slate"}, solver.WordsToStrings(Intersect(answers, words)))

	// nothing in common falls back to the full word list
	disjoint, err := Load(strings.NewReader("nomad"))
	assert.NoError(err)
	assert.Equal(words, Intersect(disjoint, words))
}
