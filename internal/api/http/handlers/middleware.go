package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func LoggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// NewRouter registers every gateway route on a fresh mux.
func NewRouter(log *zap.Logger, dashboard *DashboardHandler, cat *CatalogHandler, suggestions *SuggestionsHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", Health)
	mux.HandleFunc("/v1/catalog", cat.GetCatalog)
	mux.HandleFunc("/v1/dashboard", dashboard.GetDashboard)
	mux.HandleFunc("/v1/suggestions/recent", suggestions.GetRecent)

	return LoggingMiddleware(log, mux)
}
