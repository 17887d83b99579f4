package game

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

type fixedSource map[int]string

func (f fixedSource) Random(length int) (string, error) {
	w, ok := f[length]
	if !ok {
		return "", errors.New("no words")
	}
	return w, nil
}

// typeWord feeds every letter of w into s.
func typeWord(s State, w string) State {
	for _, r := range w {
		s = s.AppendLetter(r)
	}
	return s
}

func mustGame(t *testing.T, secret string) State {
	t.Helper()
	s, err := NewWithSecret(secret)
	if err != nil {
		t.Fatalf("NewWithSecret(%q): %v", secret, err)
	}
	return s
}

func guess(t *testing.T, s State, w string) State {
	t.Helper()
	next, err := typeWord(s, w).Submit()
	if err != nil {
		t.Fatalf("submit %q: %v", w, err)
	}
	return next
}

const (
	C = VerdictCorrect
	P = VerdictPresent
	A = VerdictAbsent
)

func TestScore(t *testing.T) {
	tests := []struct {
		secret, guess string
		want          []Verdict
	}{
		{"apple", "alley", []Verdict{C, P, A, P, A}},
		{"apple", "apple", []Verdict{C, C, C, C, C}},
		{"abbey", "babes", []Verdict{P, P, C, C, A}},
		{"cat", "aaa", []Verdict{A, C, A}},
		{"otter", "robot", []Verdict{P, P, A, A, P}},
		{"mood", "doom", []Verdict{P, C, C, P}},
		{"xyz", "abc", []Verdict{A, A, A}},
	}
	for _, tt := range tests {
		got := Score(tt.secret, tt.guess)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
		}
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	if got := Score("apple", "app"); got != nil {
		t.Errorf("expected nil for mismatched lengths, got %v", got)
	}
}

// Repeated letters stress the counting pass, so draw from a tiny alphabet.
func TestScore_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	word := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "abc"[rng.Intn(3)]
		}
		return string(b)
	}

	for i := 0; i < 2000; i++ {
		n := SupportedLengths[rng.Intn(len(SupportedLengths))]
		secret, g := word(n), word(n)
		marks := Score(secret, g)

		for j := 0; j < n; j++ {
			if (marks[j] == VerdictCorrect) != (g[j] == secret[j]) {
				t.Fatalf("Score(%q, %q)[%d] = %s: correct iff letters match", secret, g, j, marks[j])
			}
		}
		for _, l := range "abc" {
			marked := 0
			for j := 0; j < n; j++ {
				if rune(g[j]) == l && marks[j] != VerdictAbsent {
					marked++
				}
			}
			if k := strings.Count(secret, string(l)); marked > k {
				t.Fatalf("Score(%q, %q): %d marks for %c, secret has %d", secret, g, marked, l, k)
			}
		}
	}
}

func TestNew(t *testing.T) {
	src := fixedSource{3: "cat", 4: "Moon", 6: "planet"}

	s, err := New(src, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Secret() != "moon" || s.Length() != 4 {
		t.Errorf("got secret %q length %d", s.Secret(), s.Length())
	}
	if s.Status() != StatusInProgress || s.Current() != "" || len(s.Guesses()) != 0 {
		t.Errorf("new game not reset: %+v", s.Snapshot())
	}

	if _, err := New(src, 7); !errors.Is(err, ErrUnsupportedLength) {
		t.Errorf("expected ErrUnsupportedLength, got %v", err)
	}
	if _, err := New(src, 5); err == nil {
		t.Error("expected error when the source has no 5-letter words")
	}
}

func TestNewWithSecret_Invalid(t *testing.T) {
	if _, err := NewWithSecret("ab"); !errors.Is(err, ErrUnsupportedLength) {
		t.Errorf("expected ErrUnsupportedLength, got %v", err)
	}
	if _, err := NewWithSecret("ab1d"); !errors.Is(err, ErrInvalidSecret) {
		t.Errorf("expected ErrInvalidSecret, got %v", err)
	}
}

func TestAppendLetter(t *testing.T) {
	s := mustGame(t, "cat")

	s = s.AppendLetter('D').AppendLetter('o').AppendLetter('7').AppendLetter('g')
	if s.Current() != "dog" {
		t.Errorf("expected dog, got %q", s.Current())
	}

	// Full: further letters are ignored.
	s = s.AppendLetter('x')
	if s.Current() != "dog" {
		t.Errorf("overflow should be a no-op, got %q", s.Current())
	}
}

func TestBackspace(t *testing.T) {
	s := mustGame(t, "cat")

	if got := s.Backspace(); got.Current() != "" {
		t.Errorf("backspace on empty guess changed state: %q", got.Current())
	}

	s = typeWord(s, "do").Backspace()
	if s.Current() != "d" {
		t.Errorf("expected d, got %q", s.Current())
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	s0 := mustGame(t, "cats")
	s1 := s0.AppendLetter('a')
	s2 := s1.Backspace()
	s3 := s2.AppendLetter('b')

	if s0.Current() != "" || s1.Current() != "a" || s2.Current() != "" || s3.Current() != "b" {
		t.Fatalf("states leaked: %q %q %q %q", s0.Current(), s1.Current(), s2.Current(), s3.Current())
	}

	done := guess(t, typeWord(s0, ""), "dogs")
	if len(s0.Guesses()) != 0 {
		t.Error("submit mutated the receiver")
	}
	g := done.Guesses()
	g[0].Feedback[0] = VerdictCorrect
	if done.Guesses()[0].Feedback[0] == VerdictCorrect {
		t.Error("Guesses must return a copy")
	}
}

func TestSubmit_Incomplete(t *testing.T) {
	s := typeWord(mustGame(t, "apple"), "app")
	got, err := s.Submit()
	if !errors.Is(err, ErrIncompleteGuess) {
		t.Fatalf("expected ErrIncompleteGuess, got %v", err)
	}
	if got.Current() != "app" || len(got.Guesses()) != 0 {
		t.Errorf("rejected submit changed state: %+v", got.Snapshot())
	}
}

func TestSubmit_RecordsFeedback(t *testing.T) {
	s := guess(t, mustGame(t, "apple"), "alley")

	g := s.Guesses()
	if len(g) != 1 || g[0].Word != "alley" {
		t.Fatalf("unexpected guesses: %+v", g)
	}
	if !reflect.DeepEqual(g[0].Feedback, []Verdict{C, P, A, P, A}) {
		t.Errorf("unexpected feedback %v", g[0].Feedback)
	}
	if s.Current() != "" || s.Status() != StatusInProgress || s.AttemptsLeft() != MaxAttempts-1 {
		t.Errorf("unexpected state after submit: %+v", s.Snapshot())
	}
}

func TestSubmit_WinImmediately(t *testing.T) {
	s := guess(t, mustGame(t, "apple"), "apple")
	if s.Status() != StatusWon || !s.Over() {
		t.Fatalf("expected won, got %s", s.Status())
	}
	if s.AttemptsLeft() != MaxAttempts-1 {
		t.Errorf("expected %d attempts left, got %d", MaxAttempts-1, s.AttemptsLeft())
	}

	after := typeWord(s, "pear")
	if after.Current() != "" {
		t.Errorf("input after win should be ignored, got %q", after.Current())
	}
	if _, err := after.Submit(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestSubmit_LoseAfterMaxAttempts(t *testing.T) {
	s := mustGame(t, "apple")
	for i := 0; i < MaxAttempts; i++ {
		if s.Status() != StatusInProgress {
			t.Fatalf("game ended early after %d guesses", i)
		}
		s = guess(t, s, "crane")
	}
	if s.Status() != StatusLost {
		t.Fatalf("expected lost, got %s", s.Status())
	}
	if len(s.Guesses()) != MaxAttempts {
		t.Errorf("expected %d guesses, got %d", MaxAttempts, len(s.Guesses()))
	}

	s = typeWord(s, "apple")
	if s.Current() != "" {
		t.Errorf("input after loss should be ignored, got %q", s.Current())
	}
	if _, err := s.Backspace().Submit(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestSubmit_WinOnLastAttempt(t *testing.T) {
	s := mustGame(t, "cat")
	for i := 0; i < MaxAttempts-1; i++ {
		s = guess(t, s, "dog")
	}
	s = guess(t, s, "cat")
	if s.Status() != StatusWon {
		t.Errorf("expected won on final attempt, got %s", s.Status())
	}
}

type setDict map[string]bool

func (d setDict) Contains(w string) bool { return d[w] }

func TestSubmit_Dictionary(t *testing.T) {
	s := mustGame(t, "cat").WithDictionary(setDict{"cat": true, "dog": true})

	got, err := typeWord(s, "xyz").Submit()
	if !errors.Is(err, ErrNotInWordList) {
		t.Fatalf("expected ErrNotInWordList, got %v", err)
	}
	if got.Current() != "xyz" || len(got.Guesses()) != 0 {
		t.Errorf("rejected word changed state: %+v", got.Snapshot())
	}

	if _, err := typeWord(s, "dog").Submit(); err != nil {
		t.Errorf("known word rejected: %v", err)
	}
}

func TestLengthChangeResets(t *testing.T) {
	src := fixedSource{4: "moon", 5: "apple"}
	s, _ := New(src, 5)
	s = typeWord(guess(t, s, "crane"), "ap")

	s, err := New(src, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Guesses()) != 0 || s.Current() != "" || s.Length() != 4 {
		t.Errorf("length change did not reset: %+v", s.Snapshot())
	}
}

func TestZeroStateIsInert(t *testing.T) {
	var s State
	s = typeWord(s, "abc")
	if s.Current() != "" {
		t.Errorf("zero state accepted input %q", s.Current())
	}
	if _, err := s.Submit(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}
