// internal/game/engine.go
//
// Core game engine for a single Wordle game.
// Responsibilities:
//   - Create games for any supported word length (3–6 letters, 6 attempts).
//   - Apply keyboard input: letters, backspace, submit.
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Every operation is a pure function of the receiver; callers keep or
//     discard the returned State.
//   - Invalid input is a no-op. Submit additionally reports why it refused.
package game

import (
	"fmt"
	"strings"
)

const (
	// MaxAttempts is the number of guesses a player gets.
	MaxAttempts = 6
	// DefaultLength is the word length used when none is selected.
	DefaultLength = 5
)

// SupportedLengths lists the selectable word lengths, ascending.
var SupportedLengths = []int{3, 4, 5, 6}

// SupportsLength reports whether n is a selectable word length.
func SupportsLength(n int) bool {
	for _, l := range SupportedLengths {
		if l == n {
			return true
		}
	}
	return false
}

// New starts a game with a secret of the given length drawn from src.
// Unsupported lengths and lengths src has no words for are rejected; the
// caller keeps whatever game it had before.
func New(src WordSource, length int) (State, error) {
	if !SupportsLength(length) {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedLength, length)
	}
	secret, err := src.Random(length)
	if err != nil {
		return State{}, fmt.Errorf("pick %d-letter secret: %w", length, err)
	}
	return NewWithSecret(secret)
}

// NewWithSecret starts a game with a fixed secret.
func NewWithSecret(secret string) (State, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if !SupportsLength(len(secret)) {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedLength, len(secret))
	}
	if !isAlpha(secret) {
		return State{}, ErrInvalidSecret
	}
	return State{
		secret: secret,
		length: len(secret),
		status: StatusInProgress,
	}, nil
}

// WithDictionary returns a copy of s that only accepts guesses known to d.
func (s State) WithDictionary(d Dictionary) State {
	s.dict = d
	return s
}

// AppendLetter adds ch to the current guess.
// No-op when the game is over, the guess is full, or ch is not an ASCII letter.
func (s State) AppendLetter(ch rune) State {
	if s.status != StatusInProgress || len(s.current) >= s.length {
		return s
	}
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch < 'a' || ch > 'z' {
		return s
	}
	next := make([]byte, len(s.current), s.length)
	copy(next, s.current)
	s.current = append(next, byte(ch))
	return s
}

// Backspace removes the last letter of the current guess. No-op when empty.
func (s State) Backspace() State {
	if s.status != StatusInProgress || len(s.current) == 0 {
		return s
	}
	// Reslicing is safe: appends always copy into a fresh array.
	s.current = s.current[:len(s.current)-1]
	return s
}

// Submit scores the current guess and records it.
//
// Validation rules (state is returned unchanged with the reason):
//   - Game must be in progress (ErrGameOver).
//   - Current guess must fill the word (ErrIncompleteGuess).
//   - With a dictionary attached, the word must be known (ErrNotInWordList).
//
// State transitions:
//   - All letters correct → won.
//   - Else MaxAttempts guesses used → lost.
func (s State) Submit() (State, error) {
	if s.status != StatusInProgress {
		return s, ErrGameOver
	}
	if len(s.current) != s.length {
		return s, ErrIncompleteGuess
	}
	word := string(s.current)
	if s.dict != nil && !s.dict.Contains(word) {
		return s, ErrNotInWordList
	}

	marks := Score(s.secret, word)
	guesses := make([]Guess, len(s.guesses), len(s.guesses)+1)
	copy(guesses, s.guesses)
	s.guesses = append(guesses, Guess{Word: word, Feedback: marks})
	s.current = nil

	switch {
	case allCorrect(marks):
		s.status = StatusWon
	case len(s.guesses) >= MaxAttempts:
		s.status = StatusLost
	}
	return s, nil
}

// Secret returns the hidden word.
func (s State) Secret() string { return s.secret }

// Length returns the word length of the game.
func (s State) Length() int { return s.length }

// Status returns the current status.
func (s State) Status() Status { return s.status }

// Over reports whether the game reached a terminal status.
func (s State) Over() bool { return s.status == StatusWon || s.status == StatusLost }

// Current returns the in-progress guess.
func (s State) Current() string { return string(s.current) }

// AttemptsLeft returns how many guesses remain.
func (s State) AttemptsLeft() int { return MaxAttempts - len(s.guesses) }

// Guesses returns a copy of the submitted guesses, oldest first.
func (s State) Guesses() []Guess {
	out := make([]Guess, len(s.guesses))
	for i, g := range s.guesses {
		out[i] = Guess{Word: g.Word, Feedback: append([]Verdict(nil), g.Feedback...)}
	}
	return out
}

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non‑matched) secret letters.
//
// Pass 2:
//   - For each unmarked guess letter: if there is remaining count for that
//     letter, mark present and decrement; otherwise mark absent.
//
// This keeps correct+present marks for a letter at or below its count in the
// secret. Returns nil when the lengths differ.
func Score(secret, guess string) []Verdict {
	n := len(guess)
	if len(secret) != n {
		return nil
	}
	res := make([]Verdict, n)

	// Letter frequency for the unmatched positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = VerdictCorrect
		} else if j := idx(secret[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == VerdictCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = VerdictPresent
			counts[j]--
		} else {
			res[i] = VerdictAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func allCorrect(m []Verdict) bool {
	for _, x := range m {
		if x != VerdictCorrect {
			return false
		}
	}
	return true
}
