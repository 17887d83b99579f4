// Package metrics exposes Prometheus counters for games and sessions.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a registry so tests and multiple servers don't collide on the
// global one.
type Recorder struct {
	Registry *prometheus.Registry

	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	guesses  *prometheus.CounterVec
	active   prometheus.Gauge
}

// New registers the wordle collectors plus Go runtime metrics.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)

	return &Recorder{
		Registry: reg,
		started: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_games_started_total",
			Help: "Games started, by word length and mode",
		}, []string{"length", "mode"}),
		finished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_games_finished_total",
			Help: "Games finished, by final status",
		}, []string{"status"}),
		guesses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_guesses_total",
			Help: "Guess submissions, accepted or rejected",
		}, []string{"result"}),
		active: f.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_sessions_active",
			Help: "Sessions currently held in memory",
		}),
	}
}

// GameStarted counts a new game.
func (r *Recorder) GameStarted(length int, mode string) {
	r.started.WithLabelValues(strconv.Itoa(length), mode).Inc()
}

// GameFinished counts a game reaching won or lost.
func (r *Recorder) GameFinished(status string) {
	r.finished.WithLabelValues(status).Inc()
}

// GuessSubmitted counts a submit attempt.
func (r *Recorder) GuessSubmitted(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	r.guesses.WithLabelValues(result).Inc()
}

// SessionsActive sets the live session gauge.
func (r *Recorder) SessionsActive(n int) {
	r.active.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}
