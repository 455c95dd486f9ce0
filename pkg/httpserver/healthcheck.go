package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// CheckFunc probes one dependency; a nil error means it is usable.
type CheckFunc func(context.Context) error

// Liveness answers 200 "ALIVE" as long as the process serves requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// Readiness runs every check with the request context. It answers 200 "READY"
// when all pass and 503 "NOT_READY" on the first failure, which is logged
// with the check name.
func Readiness(log *slog.Logger, checks map[string]CheckFunc) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed", logger.Component(name), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
