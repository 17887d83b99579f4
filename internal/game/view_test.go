package game

import (
	"strings"
	"testing"
)

func TestBoard(t *testing.T) {
	s := guess(t, mustGame(t, "apple"), "alley")
	s = typeWord(s, "pl")

	b := s.Board()
	if len(b) != MaxAttempts {
		t.Fatalf("expected %d rows, got %d", MaxAttempts, len(b))
	}
	for r, row := range b {
		if len(row) != 5 {
			t.Fatalf("row %d has %d cells", r, len(row))
		}
	}

	if b[0][0] != (Cell{Letter: "a", Verdict: VerdictCorrect}) {
		t.Errorf("unexpected cell 0,0: %+v", b[0][0])
	}
	if b[0][4] != (Cell{Letter: "y", Verdict: VerdictAbsent}) {
		t.Errorf("unexpected cell 0,4: %+v", b[0][4])
	}
	if b[1][0] != (Cell{Letter: "p"}) || b[1][1] != (Cell{Letter: "l"}) || b[1][2] != (Cell{}) {
		t.Errorf("current row not rendered: %+v", b[1])
	}
	for r := 2; r < MaxAttempts; r++ {
		for c, cell := range b[r] {
			if cell != (Cell{}) {
				t.Errorf("cell %d,%d should be empty: %+v", r, c, cell)
			}
		}
	}
}

func TestBoard_Lengths(t *testing.T) {
	for _, secret := range []string{"cat", "moon", "apple", "planet"} {
		b := mustGame(t, secret).Board()
		if len(b) != MaxAttempts || len(b[0]) != len(secret) {
			t.Errorf("%s: board is %dx%d", secret, len(b), len(b[0]))
		}
	}
}

func TestKeyboard_KeepsBestVerdict(t *testing.T) {
	s := guess(t, mustGame(t, "apple"), "plate") // p present, l present, a present, e correct
	s = guess(t, s, "ample")                     // p correct

	kb := s.Keyboard()
	want := map[string]Verdict{
		"p": VerdictCorrect,
		"l": VerdictCorrect,
		"a": VerdictCorrect,
		"t": VerdictAbsent,
		"e": VerdictCorrect,
		"m": VerdictAbsent,
	}
	for k, v := range want {
		if kb[k] != v {
			t.Errorf("key %s: got %q, want %q", k, kb[k], v)
		}
	}
	if _, ok := kb["z"]; ok {
		t.Error("unguessed letters must not appear")
	}
}

func TestSnapshot_HidesAnswerUntilOver(t *testing.T) {
	s := mustGame(t, "cat")
	if snap := s.Snapshot(); snap.Answer != "" {
		t.Errorf("answer leaked while in progress: %q", snap.Answer)
	}

	s = guess(t, s, "cat")
	snap := s.Snapshot()
	if snap.Answer != "cat" || snap.Status != StatusWon {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestInstructions(t *testing.T) {
	if got := Instructions(4); !strings.Contains(got, "4-letter") {
		t.Errorf("instructions should mention the word length: %q", got)
	}
	if got := Instructions(9); !strings.Contains(got, "5-letter") {
		t.Errorf("unsupported length should fall back to default: %q", got)
	}
}
