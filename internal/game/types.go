// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Status: lifecycle of a single game (in_progress → won | lost).
//   - Guess: a submitted word together with its feedback.
//   - State: the immutable game state every engine operation returns.

package game

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this position.
//   - "present": letter is in the secret at a different position.
//   - "absent":  letter is not in the secret (or all its occurrences are used up).
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
)

// rank orders verdicts for keyboard colouring: a letter keeps its best verdict.
func (v Verdict) rank() int {
	switch v {
	case VerdictCorrect:
		return 3
	case VerdictPresent:
		return 2
	case VerdictAbsent:
		return 1
	}
	return 0
}

// Status is the coarse game state. Won and Lost are terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Guess is a submitted word and the feedback computed for it.
type Guess struct {
	Word     string    `json:"word"`
	Feedback []Verdict `json:"feedback"`
}

// Dictionary reports whether a word may be submitted.
// A nil Dictionary accepts every full-length guess.
type Dictionary interface {
	Contains(word string) bool
}

// WordSource picks a secret of the requested length.
type WordSource interface {
	Random(length int) (string, error)
}

// State holds a single game. Every operation returns a new State and leaves the
// receiver untouched, so a State can be shared freely between readers.
//
// The zero State is inert: it has no secret and rejects all input.
type State struct {
	secret  string
	length  int
	guesses []Guess
	current []byte
	status  Status
	dict    Dictionary
}
