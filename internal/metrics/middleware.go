package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Route label for requests no route matched.
const routeUnmatched = "unmatched"

// scrapeRoute is left out of the HTTP series so scrapes don't count themselves.
const scrapeRoute = "/metrics"

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "detailmatch",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds by route.",
			// Matching a handful of labels is sub-millisecond; the tail is the store.
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "detailmatch",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status class (2xx, 4xx, 5xx).",
		},
		[]string{"method", "route", "class"},
	)
)

// Middleware records per-route latency and request counts. It must run inside
// the chi router so the route pattern is resolved.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := routeLabel(r)
			if route == scrapeRoute {
				return
			}
			httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(r.Method, route, statusClass(ww.Status())).Inc()
		})
	}
}

// routeLabel returns the matched chi pattern, never the raw path, so query
// strings and unknown URLs can't inflate cardinality.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return routeUnmatched
	}
	return rctx.RoutePattern()
}

// statusClass maps a status code to "2xx".."5xx". A handler that never wrote
// a header answered 200.
func statusClass(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status/100) + "xx"
}
