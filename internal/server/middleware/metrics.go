package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iudanet/gophchat/internal/server/metrics"
)

// Metrics записывает длительность запроса в metrics.HTTPRequestDuration.
// Маршрут берется из r.Pattern, который проставляет ServeMux,
// поэтому middleware должен оборачивать mux целиком
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequestDuration.
				WithLabelValues(route, statusClass(wrapped.statusCode)).
				Observe(time.Since(start).Seconds())
		})
	}
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
