// Package metrics exposes Prometheus collectors for message resolution and
// remote calls.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Resolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konsultabot_resolutions_total",
			Help: "Bot replies by source and kind",
		},
		[]string{"source", "kind"},
	)

	RemoteAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "konsultabot_remote_attempts_total",
			Help: "Remote API attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	RemoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "konsultabot_remote_duration_seconds",
			Help:    "Duration of remote API attempts",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method"},
	)
)

var once sync.Once

// Init registers the collectors with the default registry. It is safe to
// call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(Resolutions, RemoteAttempts, RemoteDuration, RequestCounter, RequestDuration)
	})
}

// ObserveResolution counts one bot reply.
func ObserveResolution(source, kind string) {
	Resolutions.WithLabelValues(source, kind).Inc()
}

// ObserveRemote records one remote attempt.
func ObserveRemote(provider string, err error, took time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RemoteAttempts.WithLabelValues(provider, outcome).Inc()
	RemoteDuration.WithLabelValues(provider).Observe(took.Seconds())
}

// Middleware records request counts and durations.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		RequestCounter.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		RequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
