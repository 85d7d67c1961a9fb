package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/riteshkumar/networth-tracker/internal/metrics"
	"github.com/riteshkumar/networth-tracker/internal/service"
	u "github.com/riteshkumar/networth-tracker/internal/utils"
)

// NewRouter wires every handler, the health and metrics endpoints and the
// request logging middleware onto one router.
func NewRouter(netWorthService service.NetWorthService, recorder *metrics.Recorder, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()

	NewAccountHandler(netWorthService, logger).RegisterRoutes(router)
	NewSnapshotHandler(netWorthService, logger).RegisterRoutes(router)
	NewSummaryHandler(netWorthService, logger).RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		if netWorthService.IsLoading() {
			status = "loading"
		}
		u.WriteJSON(w, http.StatusOK, map[string]string{"status": status})
	}).Methods(http.MethodGet)

	router.Handle("/metrics", recorder.Handler()).Methods(http.MethodGet)

	router.Use(loggingMiddleware(logger))
	return router
}

// loggingMiddleware logs incoming HTTP requests
func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info("incoming request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
