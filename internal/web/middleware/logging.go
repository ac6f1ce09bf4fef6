package middleware

import (
	"log"
	"net/http"
	"time"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Observer receives the outcome of every request.
type Observer interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// RequestLogging logs one line per request and reports it to observer when
// observer is non-nil. routeOf names the matched route for metrics labels.
func RequestLogging(observer Observer, routeOf func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			log.Printf("%s %s %d %v request_id=%s",
				r.Method, r.URL.Path, rec.status, elapsed, GetRequestID(r.Context()))

			if observer != nil {
				route := r.URL.Path
				if routeOf != nil {
					route = routeOf(r)
				}
				observer.ObserveRequest(route, r.Method, rec.status, elapsed)
			}
		})
	}
}
