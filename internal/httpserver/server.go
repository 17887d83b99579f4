// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle service.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, request logging,
//     CORS, JSON content type, handler timeouts).
//   - Public endpoints: "/", "/health", "/metrics", "/instructions", "/words",
//     POST /session.
//   - Session endpoints (token required): /game, /game/*, /stats, DELETE /session.
//   - Websocket key stream: GET /game/ws (outside the handler timeout).
//   - Graceful shutdown.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled so the session cookie works.
//   - Rejected inputs answer 200 with the unchanged game and a `rejected` code.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlelab/internal/game"
	"github.com/robalobadob/wordlelab/internal/metrics"
	"github.com/robalobadob/wordlelab/internal/session"
	"github.com/robalobadob/wordlelab/internal/words"
)

// Options configures the server. Zero durations pick defaults.
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	ClientOrigin   string
	SecureCookies  bool
	RequestTimeout time.Duration
}

// Server bundles router, session manager, word catalog and metrics.
type Server struct {
	r        *chi.Mux
	mgr      *session.Manager
	words    *words.Catalog
	opts     Options
	upgrader websocket.Upgrader
}

// New constructs a Server, installs middleware, and registers routes.
// rec may be nil, in which case /metrics is not mounted.
func New(mgr *session.Manager, cat *words.Catalog, rec *metrics.Recorder, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), mgr: mgr, words: cat, opts: opts}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(requestLogger)
	s.r.Use(s.cors)

	// Websocket lives outside the timeout group: connections are long-lived.
	s.r.With(s.requireSession).Get("/game/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(opts.RequestTimeout))
		r.Use(jsonContentType)

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wordlelab","endpoints":["/health","/instructions","/words","POST /session","/game","/game/ws","/stats"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/instructions", s.handleInstructions)
		r.Get("/words", s.handleWords)

		r.Post("/session", s.handleStart)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Delete("/session", s.handleEnd)
			r.Get("/game", s.handleGet)
			r.Post("/game/new", s.handleNewGame)
			r.Post("/game/length", s.handleLength)
			r.Post("/game/letter", s.handleLetter)
			r.Post("/game/backspace", s.handleBackspace)
			r.Post("/game/submit", s.handleSubmit)
			r.Post("/game/key", s.handleKey)
			r.Get("/stats", s.handleStats)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	if rec != nil {
		s.r.Handle("/metrics", rec.Handler())
	}
	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// decodeBody decodes an optional JSON body into v. An empty body is not an error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// reasonCode maps a rejection to the code clients see.
func reasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrIncompleteGuess):
		return "incomplete_guess"
	case errors.Is(err, game.ErrNotInWordList):
		return "not_in_word_list"
	case errors.Is(err, game.ErrUnsupportedLength):
		return "unsupported_length"
	case errors.Is(err, words.ErrNoWords):
		return "no_words_for_length"
	case errors.Is(err, session.ErrInputIgnored):
		return "ignored"
	case errors.Is(err, session.ErrUnknownKey):
		return "unknown_key"
	case errors.Is(err, session.ErrUnknownMode):
		return "unknown_mode"
	}
	return "rejected"
}

// queryInt reads an integer query parameter, returning def when absent or invalid.
func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return def
}
