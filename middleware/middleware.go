package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const httpHeaderRequestID = "X-Request-Id"

// AddLogging logs every request at debug level and attaches a request scoped
// logger to the request context.
func AddLogging(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(httpHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		logger := log.With().Str("request", requestID).Logger()
		r = r.WithContext(logger.WithContext(r.Context()))
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug().Msgf("%s %s from %s took %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	}
	return http.HandlerFunc(fn)
}
