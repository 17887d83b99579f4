// Package tui is a keyboard-driven terminal front end for a single session.
// It drives the same session.Manager the HTTP server uses, with an in-memory
// store owned by the process.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/game"
	"github.com/robalobadob/wordlelab/internal/session"
	"github.com/robalobadob/wordlelab/internal/words"
)

// App holds the screen and the session being played.
type App struct {
	screen  tcell.Screen
	mgr     *session.Manager
	lengths []int

	sess *session.Session
	msg  string
}

// New binds a screen to a manager. lengths are the word lengths Tab cycles
// through, usually the catalog's Lengths().
func New(screen tcell.Screen, mgr *session.Manager, lengths []int) *App {
	return &App{screen: screen, mgr: mgr, lengths: lengths}
}

// Start opens the session the UI plays in.
func (a *App) Start(ctx context.Context, length int, mode session.Mode) error {
	s, err := a.mgr.Start(ctx, length, mode)
	if err != nil {
		return err
	}
	a.sess = s
	a.msg = ""
	return nil
}

// Session returns the session currently shown.
func (a *App) Session() *session.Session { return a.sess }

// Message returns the status line text.
func (a *App) Message() string { return a.msg }

// Run draws and handles events until the user quits or ctx is cancelled.
// The screen must already be initialised; Run does not finalise it.
func (a *App) Run(ctx context.Context) error {
	if a.sess == nil {
		return errors.New("tui: no session started")
	}
	go func() {
		<-ctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		a.Draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			quit, err := a.HandleKey(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// HandleKey applies one key press. It reports whether the user asked to quit.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	var (
		res session.Result
		err error
	)
	id := a.sess.ID
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyEnter:
		res, err = a.mgr.Submit(ctx, id)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		res, err = a.mgr.Backspace(ctx, id)
	case tcell.KeyCtrlN:
		res, err = a.mgr.NewGame(ctx, id, 0, "")
	case tcell.KeyTab:
		res, err = a.mgr.SetLength(ctx, id, a.nextLength())
	case tcell.KeyRune:
		res, err = a.mgr.Letter(ctx, id, ev.Rune())
	default:
		return false, nil
	}
	if err != nil {
		return false, err
	}
	a.sess = res.Session
	a.msg = message(res)
	if res.Rejected != nil {
		log.Debug().Err(res.Rejected).Msg("key rejected")
	}
	return false, nil
}

// nextLength returns the length after the current one, wrapping around.
func (a *App) nextLength() int {
	cur := a.sess.State.Length()
	if len(a.lengths) == 0 {
		return cur
	}
	for i, n := range a.lengths {
		if n == cur {
			return a.lengths[(i+1)%len(a.lengths)]
		}
	}
	return a.lengths[0]
}

// message turns an input result into a status line.
func message(res session.Result) string {
	g := res.Session.State
	switch err := res.Rejected; {
	case err == nil:
	case errors.Is(err, game.ErrIncompleteGuess):
		return fmt.Sprintf("Not enough letters (need %d)", g.Length())
	case errors.Is(err, game.ErrNotInWordList):
		return "Not in word list"
	case errors.Is(err, game.ErrUnsupportedLength), errors.Is(err, words.ErrNoWords):
		return "That word length is not available"
	case errors.Is(err, game.ErrGameOver):
		return "Game over. Ctrl-N starts a new one"
	default:
		return ""
	}
	switch g.Status() {
	case game.StatusWon:
		return fmt.Sprintf("Solved in %d! Ctrl-N for a new game", len(g.Guesses()))
	case game.StatusLost:
		return "The word was " + strings.ToUpper(g.Secret()) + ". Ctrl-N for a new game"
	}
	return ""
}
