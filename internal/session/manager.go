// internal/session/manager.go
//
// Manager applies engine operations to stored sessions.
// Responsibilities:
//   - Start sessions and (re)start games for a length and mode.
//   - Route keyboard input (letters, backspace, enter, new, length:N) to the engine.
//   - Fold finished games into session stats.
//   - Report activity to an Observer (metrics) and expire idle sessions.
//
// Input that the engine ignores is not an error: it comes back as Result.Rejected
// next to the unchanged session. Errors are reserved for unknown sessions and
// store failures.

package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/daily"
	"github.com/robalobadob/wordlelab/internal/game"
)

var (
	// ErrInputIgnored: a letter or backspace had no effect on the current guess.
	ErrInputIgnored = errors.New("input ignored")

	// ErrUnknownKey: Key received a name it does not understand.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownMode: the requested mode is neither random nor daily.
	ErrUnknownMode = errors.New("unknown mode")
)

// Catalog is everything the manager needs from the word list.
type Catalog interface {
	game.WordSource
	game.Dictionary
	daily.Indexed
}

// Observer receives game lifecycle events. metrics.Recorder implements it.
type Observer interface {
	GameStarted(length int, mode string)
	GameFinished(status string)
	GuessSubmitted(accepted bool)
	SessionsActive(n int)
}

type nopObserver struct{}

func (nopObserver) GameStarted(int, string) {}
func (nopObserver) GameFinished(string)     {}
func (nopObserver) GuessSubmitted(bool)     {}
func (nopObserver) SessionsActive(int)      {}

// Options tune a Manager. Zero values pick the defaults.
type Options struct {
	// Strict rejects guesses that are not in the catalog.
	Strict bool
	// DailySalt keys the daily puzzle selection.
	DailySalt string
	// DefaultLength is used when a session starts without a length.
	DefaultLength int
	Observer      Observer
	Now           func() time.Time
}

// Manager is safe for concurrent use; all state lives in the Store.
type Manager struct {
	store   Store
	catalog Catalog
	opts    Options
}

// NewManager wires a store and catalog.
func NewManager(st Store, cat Catalog, opts Options) *Manager {
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !game.SupportsLength(opts.DefaultLength) {
		opts.DefaultLength = game.DefaultLength
	}
	return &Manager{store: st, catalog: cat, opts: opts}
}

// Result is the outcome of an input. Rejected explains a no-op.
type Result struct {
	Session  *Session
	Rejected error
}

// Start creates a session with a fresh game. A zero length uses the default
// and an empty mode means random.
func (m *Manager) Start(ctx context.Context, length int, mode Mode) (*Session, error) {
	if length == 0 {
		length = m.opts.DefaultLength
	}
	if mode == "" {
		mode = ModeRandom
	}
	g, err := m.newGame(length, mode)
	if err != nil {
		return nil, err
	}
	now := m.opts.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Length:    length,
		Mode:      mode,
		State:     g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	m.opts.Observer.GameStarted(length, string(mode))
	m.opts.Observer.SessionsActive(m.store.Len())
	log.Debug().Str("session", s.ID).Int("length", length).Str("mode", string(mode)).Msg("session started")
	return s, nil
}

// Get returns the session.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// End discards the session.
func (m *Manager) End(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.opts.Observer.SessionsActive(m.store.Len())
	return nil
}

// NewGame replaces the session's game. Zero length and empty mode keep the
// session's current choice. An unsupported length or one without words is
// rejected and the running game is kept.
func (m *Manager) NewGame(ctx context.Context, id string, length int, mode Mode) (Result, error) {
	var started bool
	return m.apply(ctx, id, func(s *Session) error {
		if length == 0 {
			length = s.Length
		}
		if mode == "" {
			mode = s.Mode
		}
		g, err := m.newGame(length, mode)
		if err != nil {
			return err
		}
		s.State, s.Length, s.Mode = g, length, mode
		started = true
		return nil
	}, func() {
		if started {
			m.opts.Observer.GameStarted(length, string(mode))
		}
	})
}

// SetLength switches the word length, which always starts a new game.
func (m *Manager) SetLength(ctx context.Context, id string, length int) (Result, error) {
	return m.NewGame(ctx, id, length, "")
}

// Letter appends ch to the current guess.
func (m *Manager) Letter(ctx context.Context, id string, ch rune) (Result, error) {
	return m.apply(ctx, id, func(s *Session) error {
		next := s.State.AppendLetter(ch)
		if next.Current() == s.State.Current() {
			return ignored(s.State)
		}
		s.State = next
		return nil
	}, nil)
}

// Backspace removes the last letter of the current guess.
func (m *Manager) Backspace(ctx context.Context, id string) (Result, error) {
	return m.apply(ctx, id, func(s *Session) error {
		next := s.State.Backspace()
		if next.Current() == s.State.Current() {
			return ignored(s.State)
		}
		s.State = next
		return nil
	}, nil)
}

// Submit scores the current guess.
func (m *Manager) Submit(ctx context.Context, id string) (Result, error) {
	var finished game.Status
	res, err := m.apply(ctx, id, func(s *Session) error {
		next, err := s.State.Submit()
		if err != nil {
			return err
		}
		s.State = next
		if next.Over() {
			s.Stats.record(next)
			finished = next.Status()
		}
		return nil
	}, nil)
	if err != nil {
		return res, err
	}

	m.opts.Observer.GuessSubmitted(res.Rejected == nil)
	if finished != "" {
		m.opts.Observer.GameFinished(string(finished))
		log.Info().Str("session", id).Str("status", string(finished)).
			Int("guesses", len(res.Session.State.Guesses())).Msg("game finished")
	}
	return res, nil
}

// Key dispatches a named key: a single letter, "enter", "backspace",
// "new" or "length:N".
func (m *Manager) Key(ctx context.Context, id, key string) (Result, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch {
	case key == "enter" || key == "return":
		return m.Submit(ctx, id)
	case key == "backspace" || key == "delete":
		return m.Backspace(ctx, id)
	case key == "new":
		return m.NewGame(ctx, id, 0, "")
	case strings.HasPrefix(key, "length:"):
		n, err := strconv.Atoi(strings.TrimPrefix(key, "length:"))
		if err != nil {
			return m.reject(ctx, id, fmt.Errorf("%w: %s", ErrUnknownKey, key))
		}
		return m.SetLength(ctx, id, n)
	case len(key) == 1:
		return m.Letter(ctx, id, rune(key[0]))
	}
	return m.reject(ctx, id, fmt.Errorf("%w: %s", ErrUnknownKey, key))
}

// Sweep drops sessions idle for longer than ttl.
func (m *Manager) Sweep(ctx context.Context, ttl time.Duration) int {
	n := m.store.Sweep(ctx, m.opts.Now().Add(-ttl))
	if n > 0 {
		m.opts.Observer.SessionsActive(m.store.Len())
		log.Debug().Int("removed", n).Msg("swept idle sessions")
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (m *Manager) RunSweeper(ctx context.Context, ttl, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep(ctx, ttl)
		}
	}
}

// newGame builds a game for the length and mode, honouring strict mode.
func (m *Manager) newGame(length int, mode Mode) (game.State, error) {
	var src game.WordSource = m.catalog
	switch mode {
	case ModeRandom:
	case ModeDaily:
		src = daily.Source{Words: m.catalog, Date: m.opts.Now(), Salt: m.opts.DailySalt}
	default:
		return game.State{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	g, err := game.New(src, length)
	if err != nil {
		return game.State{}, err
	}
	if m.opts.Strict {
		g = g.WithDictionary(m.catalog)
	}
	return g, nil
}

// apply runs fn through Store.Update. Errors from fn are rejections: the
// session is returned unchanged with the reason. after runs on success.
func (m *Manager) apply(ctx context.Context, id string, fn func(*Session) error, after func()) (Result, error) {
	var rejected error
	s, err := m.store.Update(ctx, id, func(s *Session) error {
		if err := fn(s); err != nil {
			rejected = err
			return err
		}
		s.UpdatedAt = m.opts.Now()
		return nil
	})
	if rejected != nil {
		log.Debug().Str("session", id).Err(rejected).Msg("input rejected")
		return Result{Session: s, Rejected: rejected}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if after != nil {
		after()
	}
	return Result{Session: s}, nil
}

// reject returns the unchanged session with a reason.
func (m *Manager) reject(ctx context.Context, id string, reason error) (Result, error) {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}
	return Result{Session: s, Rejected: reason}, nil
}

func ignored(g game.State) error {
	if g.Over() {
		return game.ErrGameOver
	}
	return ErrInputIgnored
}
