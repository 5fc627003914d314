package solver

// Guess is one played guess and the feedback it earned.
type Guess struct {
	Word     Word
	Feedback Feedback
}

// History is the ordered evidence of a game. It is the sole source of
// truth: every derived constraint is recomputed from it, never kept
// alongside it.
type History []Guess

// AppendGuess returns history extended with one guess. The input slice is
// left untouched so earlier prefixes stay valid.
func AppendGuess(history History, word Word, feedback Feedback) History {
	ret := make(History, len(history), len(history)+1)
	copy(ret, history)
	return append(ret, Guess{Word: word, Feedback: feedback})
}

// Reset returns the empty history of a fresh game.
func Reset() History {
	return nil
}

// Seen reports whether word has already been played.
func (h History) Seen(word Word) bool {
	for _, g := range h {
		if g.Word == word {
			return true
		}
	}
	return false
}
