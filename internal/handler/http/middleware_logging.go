package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/logger"
)

// withLogging writes one access log entry per request. Rejected submissions
// are logged at warn level together with the response body so the reason
// shown to the operator can be found in the receiver log.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusBadRequest {
			event = log.Warn().Bytes("response", lw.body)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("content_type", r.Header.Get("Content-Type")).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
