// Package session owns game states on behalf of clients. A Session holds the
// current game, the selected word length and mode, and statistics for the
// games finished during the session's lifetime.
package session

import (
	"time"

	"github.com/robalobadob/wordlelab/internal/game"
)

// Mode selects how secrets are chosen.
type Mode string

const (
	// ModeRandom draws a fresh random secret for every game.
	ModeRandom Mode = "random"
	// ModeDaily uses the deterministic puzzle of the current UTC day.
	ModeDaily Mode = "daily"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeRandom || m == ModeDaily }

// Stats aggregates finished games.
type Stats struct {
	Played    int `json:"played"`
	Wins      int `json:"wins"`
	Streak    int `json:"streak"`
	MaxStreak int `json:"maxStreak"`
	// Distribution[i] counts wins that took i+1 guesses.
	Distribution [game.MaxAttempts]int `json:"distribution"`
}

// record folds a finished game into the stats.
func (s *Stats) record(g game.State) {
	s.Played++
	if g.Status() != game.StatusWon {
		s.Streak = 0
		return
	}
	s.Wins++
	s.Streak++
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	if n := len(g.Guesses()); n >= 1 && n <= game.MaxAttempts {
		s.Distribution[n-1]++
	}
}

// Session is one client's game context.
type Session struct {
	ID        string
	Length    int
	Mode      Mode
	State     game.State
	Stats     Stats
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View is the JSON shape of a session returned to clients.
type View struct {
	SessionID string        `json:"sessionId"`
	Mode      Mode          `json:"mode"`
	Game      game.Snapshot `json:"game"`
	Stats     Stats         `json:"stats"`
}

// View renders the session for clients.
func (s *Session) View() View {
	return View{
		SessionID: s.ID,
		Mode:      s.Mode,
		Game:      s.State.Snapshot(),
		Stats:     s.Stats,
	}
}
