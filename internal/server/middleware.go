package server

import (
	"net/http"

	"github.com/go-sod/clsdemo/internal/logging"
	"github.com/go-sod/clsdemo/internal/metric"
	"go.uber.org/zap"
)

// WithObservability attaches logger to every request context and counts
// requests per route pattern.
func WithObservability(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithLogger(r.Context(), logger.With("method", r.Method, "path", r.URL.Path))
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metric.RecordRequest(ctx, route)
	})
}
