package solver

import "errors"

var ErrOutOfGuesses = errors.New("out of guesses")

// eliminationTurns and eliminationFloor gate the early-game switch to
// ModeElimination: while few guesses have been played and many candidates
// remain, an information-maximizing guess beats a likely one.
const (
	eliminationTurns = 2
	eliminationFloor = 20
)

// PickMode returns the ranking mode Simulate (and interactive callers)
// use for the next guess.
func PickMode(history History, candidates int) Mode {
	if len(history) < eliminationTurns && candidates > eliminationFloor {
		return ModeElimination
	}
	return ModeNormal
}

// Simulate plays a complete game against a known solution, opening with
// the given guess and following the top suggestion afterwards. It returns
// the guesses played, ending with the all-correct one. The word list
// doubles as the answer pool.
func Simulate(words []Word, solution, opening Word, maxGuesses int) (History, error) {
	history := Reset()
	guess := opening
	for turn := 0; turn < maxGuesses; turn++ {
		feedback := ComputeFeedback(solution, guess)
		history = AppendGuess(history, guess, feedback)
		if feedback.AllCorrect() {
			return history, nil
		}
		candidates, _, err := ComputeCandidates(history, words)
		if err != nil {
			return history, err
		}
		next, err := Suggest(candidates, words, history, PickMode(history, len(candidates)), 1)
		if err != nil {
			return history, err
		}
		guess = next[0].Word
	}
	return history, ErrOutOfGuesses
}
