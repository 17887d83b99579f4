package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordlelab/internal/game"
	"github.com/robalobadob/wordlelab/internal/session"
	"github.com/robalobadob/wordlelab/internal/words"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	cat := words.New(map[int][]string{
		5: {"apple"},
		6: {"planet"},
	})
	mgr := session.NewManager(session.NewMemoryStore(), cat, session.Options{})

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	app := New(screen, mgr, cat.Lengths())
	if err := app.Start(context.Background(), 5, session.ModeRandom); err != nil {
		t.Fatalf("start: %v", err)
	}
	return app, screen
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func letter(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func typeWord(t *testing.T, a *App, w string) {
	t.Helper()
	for _, r := range w {
		if _, err := a.HandleKey(context.Background(), letter(r)); err != nil {
			t.Fatal(err)
		}
	}
}

func press(t *testing.T, a *App, k tcell.Key) bool {
	t.Helper()
	quit, err := a.HandleKey(context.Background(), key(k))
	if err != nil {
		t.Fatal(err)
	}
	return quit
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTypingAndBackspace(t *testing.T) {
	a, _ := newTestApp(t)

	typeWord(t, a, "ab")
	if got := a.Session().State.Current(); got != "ab" {
		t.Fatalf("current = %q", got)
	}
	press(t, a, tcell.KeyBackspace2)
	if got := a.Session().State.Current(); got != "a" {
		t.Errorf("after backspace = %q", got)
	}
}

func TestIncompleteSubmitShowsMessage(t *testing.T) {
	a, _ := newTestApp(t)
	typeWord(t, a, "ap")
	press(t, a, tcell.KeyEnter)

	if !strings.Contains(a.Message(), "Not enough letters") {
		t.Errorf("message = %q", a.Message())
	}
	if len(a.Session().State.Guesses()) != 0 {
		t.Errorf("guess recorded")
	}
}

func TestWinAndNewGame(t *testing.T) {
	a, _ := newTestApp(t)
	typeWord(t, a, "apple")
	press(t, a, tcell.KeyEnter)

	if a.Session().State.Status() != game.StatusWon {
		t.Fatalf("status = %s", a.Session().State.Status())
	}
	if !strings.Contains(a.Message(), "Solved in 1") {
		t.Errorf("message = %q", a.Message())
	}

	typeWord(t, a, "x")
	if !strings.Contains(a.Message(), "Game over") {
		t.Errorf("message after win = %q", a.Message())
	}

	press(t, a, tcell.KeyCtrlN)
	if st := a.Session().State; st.Status() != game.StatusInProgress || len(st.Guesses()) != 0 {
		t.Errorf("new game not started: %s", st.Status())
	}
	if a.Session().Stats.Wins != 1 {
		t.Errorf("stats lost across new game: %+v", a.Session().Stats)
	}
}

func TestTabCyclesLength(t *testing.T) {
	a, _ := newTestApp(t)

	press(t, a, tcell.KeyTab)
	if n := a.Session().State.Length(); n != 6 {
		t.Fatalf("length = %d, want 6", n)
	}
	press(t, a, tcell.KeyTab)
	if n := a.Session().State.Length(); n != 5 {
		t.Errorf("length = %d, want 5", n)
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	if !press(t, a, tcell.KeyEscape) || !press(t, a, tcell.KeyCtrlC) {
		t.Error("escape and ctrl-c should quit")
	}
	if press(t, a, tcell.KeyF1) {
		t.Error("F1 should not quit")
	}
}

func TestDrawBoard(t *testing.T) {
	a, s := newTestApp(t)
	typeWord(t, a, "alley")
	press(t, a, tcell.KeyEnter)
	typeWord(t, a, "pl")
	a.Draw()

	if got := rowText(s, 0); !strings.Contains(got, "WORDLE  5 letters  random  1/6") {
		t.Errorf("title = %q", got)
	}
	if got := rowText(s, boardTop); got != "   A   L   L   E   Y" {
		t.Errorf("first row = %q", got)
	}
	if got := rowText(s, boardTop+1); got != "   P   L   _   _   _" {
		t.Errorf("current row = %q", got)
	}

	// apple vs alley: correct, present, absent, present, absent.
	want := []tcell.Color{tcell.ColorGreen, tcell.ColorYellow, tcell.ColorDarkGray, tcell.ColorYellow, tcell.ColorDarkGray}
	for c, bg := range want {
		_, _, st, _ := s.GetContent(left+c*cellW+1, boardTop)
		if _, got, _ := st.Decompose(); got != bg {
			t.Errorf("cell %d background = %v, want %v", c, got, bg)
		}
	}

	// Keyboard: "a" (first key of the second row) is correct.
	kbTop := boardTop + game.MaxAttempts + 1
	_, _, st, _ := s.GetContent(left+1, kbTop+1)
	if _, bg, _ := st.Decompose(); bg != tcell.ColorGreen {
		t.Errorf("keyboard A background = %v", bg)
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	a, s := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()
	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
	if got := a.Session().State.Current(); got != "a" {
		t.Errorf("current = %q", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
