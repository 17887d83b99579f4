// internal/game/view.go
//
// Read-only projections of a State for renderers:
//   - Board:    MaxAttempts rows × word-length cells (submitted, current, empty).
//   - Keyboard: best verdict seen per letter, for colouring a virtual keyboard.
//   - Snapshot: JSON-friendly view; the secret is only revealed once the game is over.

package game

import (
	"fmt"
	"strings"
)

// Cell is one square of the board. Verdict is empty for unsubmitted letters.
type Cell struct {
	Letter  string  `json:"letter"`
	Verdict Verdict `json:"verdict,omitempty"`
}

// Board lays the game out as MaxAttempts rows of Length cells.
func (s State) Board() [][]Cell {
	rows := make([][]Cell, MaxAttempts)
	for r := range rows {
		rows[r] = make([]Cell, s.length)
	}
	for r, g := range s.guesses {
		for c := 0; c < s.length && c < len(g.Word); c++ {
			rows[r][c] = Cell{Letter: g.Word[c : c+1], Verdict: g.Feedback[c]}
		}
	}
	if s.status == StatusInProgress && len(s.guesses) < MaxAttempts {
		for c, b := range s.current {
			rows[len(s.guesses)][c] = Cell{Letter: string(b)}
		}
	}
	return rows
}

// Keyboard returns the best verdict recorded for each letter guessed so far.
// Letters never guessed are absent from the map.
func (s State) Keyboard() map[string]Verdict {
	out := make(map[string]Verdict)
	for _, g := range s.guesses {
		for i := 0; i < len(g.Word) && i < len(g.Feedback); i++ {
			k := g.Word[i : i+1]
			if v := g.Feedback[i]; v.rank() > out[k].rank() {
				out[k] = v
			}
		}
	}
	return out
}

// Snapshot is what clients see of a game.
type Snapshot struct {
	Length       int                `json:"length"`
	Status       Status             `json:"status"`
	Guesses      []Guess            `json:"guesses"`
	Current      string             `json:"current"`
	AttemptsLeft int                `json:"attemptsLeft"`
	Board        [][]Cell           `json:"board"`
	Keyboard     map[string]Verdict `json:"keyboard"`
	Answer       string             `json:"answer,omitempty"`
}

// Snapshot captures the state for rendering.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Length:       s.length,
		Status:       s.status,
		Guesses:      s.Guesses(),
		Current:      s.Current(),
		AttemptsLeft: s.AttemptsLeft(),
		Board:        s.Board(),
		Keyboard:     s.Keyboard(),
	}
	if s.Over() {
		snap.Answer = s.secret
	}
	return snap
}

// Instructions returns the how-to-play text for a word length.
func Instructions(length int) string {
	if !SupportsLength(length) {
		length = DefaultLength
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Guess the hidden %d-letter word in %d tries.\n", length, MaxAttempts)
	b.WriteString("Type letters, use Backspace to erase and Enter to submit a full word.\n")
	b.WriteString("After each guess every letter is marked:\n")
	b.WriteString("  correct - the letter is in the word and in the right spot\n")
	b.WriteString("  present - the letter is in the word but in a different spot\n")
	b.WriteString("  absent  - the letter is not in the word (or not that many times)\n")
	b.WriteString("Changing the word length starts a new game.\n")
	return b.String()
}
