package http

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the request correlation id, echoed back on every
// response so clients can quote it when reporting a failure.
const traceIDHeader = "X-Trace-ID"

// withTraceID correlates every log line of a request under one trace id.
// A client-supplied X-Trace-ID is honored; otherwise a fresh UUID is minted.
// The tagged child logger is stored in the request context, where
// [logger.FromRequest] picks it up downstream.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
