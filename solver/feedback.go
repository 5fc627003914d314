package solver

import "errors"

// Symbol is one tile of feedback: g for a correct letter, y for a letter
// present elsewhere, r for a letter not in the word (with duplicate-count
// caveats, see DeriveConstraints).
type Symbol rune

const (
	Absent  Symbol = 'r'
	Present Symbol = 'y'
	Correct Symbol = 'g'
)

var ErrInvalidFeedback = errors.New("feedback must be five of r, y, g")

// Feedback is one row of tiles, aligned with the guess positions.
type Feedback [WordLength]Symbol

// ParseFeedback validates s as a feedback string like "rygrr".
func ParseFeedback(s string) (Feedback, error) {
	var f Feedback
	runes := []rune(s)
	if len(runes) != WordLength {
		return f, ErrInvalidFeedback
	}
	for i, r := range runes {
		switch Symbol(r) {
		case Absent, Present, Correct:
			f[i] = Symbol(r)
		default:
			return f, ErrInvalidFeedback
		}
	}
	return f, nil
}

func (f Feedback) String() string {
	runes := make([]rune, WordLength)
	for i, s := range f {
		runes[i] = rune(s)
	}
	return string(runes)
}

func (f Feedback) AllCorrect() bool {
	for _, s := range f {
		if s != Correct {
			return false
		}
	}
	return true
}

// ComputeFeedback returns the feedback Wordle would give for guess against
// solution. Greens are assigned first; the remaining solution letters are
// then consumed left to right to turn guesses yellow, so a duplicated
// guess letter goes yellow at most as many times as it remains in the
// solution.
func ComputeFeedback(solution, guess Word) Feedback {
	var f Feedback
	var remaining [26]int
	for i, letter := range solution {
		if guess[i] == letter {
			f[i] = Correct
		} else {
			f[i] = Absent
			remaining[letter-'a']++
		}
	}
	for i, letter := range guess {
		if f[i] == Absent && remaining[letter-'a'] > 0 {
			f[i] = Present
			remaining[letter-'a']--
		}
	}
	return f
}
