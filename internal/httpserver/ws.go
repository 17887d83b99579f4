// internal/httpserver/ws.go
//
// Websocket key stream. A client sends frames {"key":"a"} / {"key":"enter"} /
// {"key":"length:6"} and receives the session view after each one. The first
// frame written by the server is the current view.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/session"
)

// wsError is written when a frame cannot be processed.
type wsError struct {
	Error string `json:"error"`
}

// checkOrigin accepts same-host pages, the configured client and non-browser
// clients that send no Origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.opts.ClientOrigin {
		return true
	}
	return strings.EqualFold(origin, "http://"+r.Host) || strings.EqualFold(origin, "https://"+r.Host)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r.Context())
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Debug().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	logger := log.With().Str("session", id).Logger()
	logger.Debug().Msg("websocket connected")

	sess, err := s.mgr.Get(r.Context(), id)
	if err != nil {
		_ = conn.WriteJSON(wsError{Error: "session_not_found"})
		return
	}
	if err := conn.WriteJSON(gameRes{View: sess.View()}); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket closed")
			}
			return
		}

		var req keyReq
		if err := json.Unmarshal(data, &req); err != nil || req.Key == "" {
			if err := conn.WriteJSON(wsError{Error: "bad_json"}); err != nil {
				return
			}
			continue
		}

		res, err := s.mgr.Key(r.Context(), id, req.Key)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				_ = conn.WriteJSON(wsError{Error: "session_expired"})
				return
			}
			logger.Error().Err(err).Msg("websocket key")
			_ = conn.WriteJSON(wsError{Error: "server_error"})
			return
		}
		if err := conn.WriteJSON(gameRes{View: res.Session.View(), Rejected: reasonCode(res.Rejected)}); err != nil {
			return
		}
	}
}
