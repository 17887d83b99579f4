// internal/httpserver/routes_game.go
//
// Game routes. Every input endpoint answers with the session view:
//   { sessionId, mode, game: Snapshot, stats, rejected? }
// `rejected` carries a reason code when the input was a no-op.

package httpserver

import (
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/game"
	"github.com/robalobadob/wordlelab/internal/session"
)

// gameRes is the response for every game endpoint.
type gameRes struct {
	session.View
	Rejected string `json:"rejected,omitempty"`
}

// newGameReq is the payload for POST /session and POST /game/new.
type newGameReq struct {
	Length int    `json:"length"` // 0 keeps the current (or default) length
	Mode   string `json:"mode"`   // "random" | "daily"; empty keeps the current mode
}

// startRes is returned by POST /session.
type startRes struct {
	gameRes
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleStart creates a session with a fresh game, signs a token and sets the cookie.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.mgr.Start(r.Context(), req.Length, session.Mode(req.Mode))
	if err != nil {
		if code := reasonCode(err); code != "rejected" {
			writeError(w, http.StatusBadRequest, code)
			return
		}
		log.Error().Err(err).Msg("start session")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	writeJSON(w, http.StatusCreated, startRes{
		gameRes:   gameRes{View: sess.View()},
		Token:     tok,
		ExpiresAt: exp,
	})
}

// handleEnd discards the session and clears the cookie.
func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	if err := s.mgr.End(r.Context(), sessionID(r.Context())); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.mgr.Get(r.Context(), sessionID(r.Context()))
	s.respond(w, session.Result{Session: sess}, err)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess, err := s.mgr.Get(r.Context(), sessionID(r.Context()))
	if err != nil {
		s.respond(w, session.Result{}, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Stats)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, err := s.mgr.NewGame(r.Context(), sessionID(r.Context()), req.Length, session.Mode(req.Mode))
	s.respond(w, res, err)
}

type lengthReq struct {
	Length int `json:"length"`
}

func (s *Server) handleLength(w http.ResponseWriter, r *http.Request) {
	var req lengthReq
	if err := decodeBody(r, &req); err != nil || req.Length == 0 {
		writeError(w, http.StatusBadRequest, "bad_length")
		return
	}
	res, err := s.mgr.SetLength(r.Context(), sessionID(r.Context()), req.Length)
	s.respond(w, res, err)
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := decodeBody(r, &req); err != nil || utf8.RuneCountInString(req.Letter) != 1 {
		writeError(w, http.StatusBadRequest, "bad_letter")
		return
	}
	ch, _ := utf8.DecodeRuneInString(req.Letter)
	res, err := s.mgr.Letter(r.Context(), sessionID(r.Context()), ch)
	s.respond(w, res, err)
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	res, err := s.mgr.Backspace(r.Context(), sessionID(r.Context()))
	s.respond(w, res, err)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	res, err := s.mgr.Submit(r.Context(), sessionID(r.Context()))
	s.respond(w, res, err)
}

// keyReq is the payload for POST /game/key and websocket frames.
type keyReq struct {
	Key string `json:"key"` // letter | enter | backspace | new | length:N
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := decodeBody(r, &req); err != nil || req.Key == "" {
		writeError(w, http.StatusBadRequest, "bad_key")
		return
	}
	res, err := s.mgr.Key(r.Context(), sessionID(r.Context()), req.Key)
	s.respond(w, res, err)
}

// respond writes the session view or maps the error to a status.
func (s *Server) respond(w http.ResponseWriter, res session.Result, err error) {
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found")
			return
		}
		log.Error().Err(err).Msg("apply input")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, gameRes{View: res.Session.View(), Rejected: reasonCode(res.Rejected)})
}

// -----------------------------------------------------------------------------
// reference data

type instructionsRes struct {
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
	Text        string `json:"text"`
}

// handleInstructions returns the how-to-play text for ?length= (default 5).
func (s *Server) handleInstructions(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r, "length", game.DefaultLength)
	if !game.SupportsLength(n) {
		n = game.DefaultLength
	}
	writeJSON(w, http.StatusOK, instructionsRes{Length: n, MaxAttempts: game.MaxAttempts, Text: game.Instructions(n)})
}

type wordsRes struct {
	Lengths []int       `json:"lengths"`
	Counts  map[int]int `json:"counts"`
}

// handleWords lists the selectable lengths and the word count for each.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wordsRes{Lengths: s.words.Lengths(), Counts: s.words.Stats()})
}
