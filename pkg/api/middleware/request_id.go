package middleware

import (
	"net/http"
	"sync/atomic"

	"levantd/pkg/logger"
)

var requestCounter int64

// RequestID stamps every request with a monotonically increasing id,
// carried in the context so log lines of one request correlate.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := atomic.AddInt64(&requestCounter, 1)
		ctx := logger.ContextWithRequestID(r.Context(), id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
