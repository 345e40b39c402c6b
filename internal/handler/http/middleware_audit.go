// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
)

// auditWriteTimeout bounds the detached goroutine that persists one audit
// entry after the response has gone out.
const auditWriteTimeout = 5 * time.Second

// auditNote accumulates audit information about one in-flight request.
//
// A note is placed in the request context by withAudit and tagged along the
// way: the auth middleware marks rejections, handlers mark validation
// failures and attach details. After the response is written, withAudit
// reads the note once and persists exactly one entry per request.
//
// The audit write happens on a separate goroutine, so access is guarded.
type auditNote struct {
	mu       sync.Mutex
	outcome  string
	detalhes map[string]any
}

// setOutcome overrides the outcome that would otherwise be derived from the
// response status code. The last caller wins.
func (n *auditNote) setOutcome(outcome string) {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcome = outcome
}

// addDetail records one key/value pair into the entry's detalhes document.
func (n *auditNote) addDetail(key string, value any) {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.detalhes == nil {
		n.detalhes = make(map[string]any)
	}
	n.detalhes[key] = value
}

// snapshot returns the tagged outcome and a copy of the collected details.
func (n *auditNote) snapshot() (string, map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.detalhes) == 0 {
		return n.outcome, nil
	}
	detalhes := make(map[string]any, len(n.detalhes))
	for k, v := range n.detalhes {
		detalhes[k] = v
	}
	return n.outcome, detalhes
}

type auditNoteCtxKey struct{}

// noteFromContext returns the request's audit note, or nil when the request
// did not pass through withAudit. All note methods tolerate a nil receiver,
// so callers never need to check.
func noteFromContext(ctx context.Context) *auditNote {
	note, _ := ctx.Value(auditNoteCtxKey{}).(*auditNote)
	return note
}

// withAudit is the access-log middleware. It wraps the response writer to
// capture the status code, emits the request log line, and persists exactly
// one audit entry per request. The entry's detalhes always carry the raw
// query string (when present), the response status and the duration in
// milliseconds, on top of whatever the handlers tagged along the way.
//
// The entry's outcome is the note's tagged outcome when set; otherwise it is
// derived from the response: CORS preflights are "preflight", statuses >= 400
// are "erro", everything else "sucesso". The write runs on its own goroutine
// with a detached bounded context, so a slow or failing audit backend never
// delays or breaks the response.
func (h *Handler) withAudit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		note := &auditNote{}
		ctx := context.WithValue(r.Context(), auditNoteCtxKey{}, note)
		r = r.WithContext(ctx)

		lw := &responseWriter{ResponseWriter: w}

		start := time.Now()
		next.ServeHTTP(lw, r)
		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			// handler returned without writing anything
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()

		if query := r.URL.RawQuery; query != "" {
			note.addDetail("query", query)
		}
		note.addDetail("status", status)
		note.addDetail("duration_ms", duration.Milliseconds())

		outcome, detalhes := note.snapshot()
		if outcome == "" {
			switch {
			case r.Method == http.MethodOptions:
				outcome = models.OutcomePreflight
			case status >= http.StatusBadRequest:
				outcome = models.OutcomeErro
			default:
				outcome = models.OutcomeSucesso
			}
		}

		origem := originFromRemoteAddr(r.RemoteAddr)
		endpoint := r.Method + " " + r.URL.Path

		auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
		go func() {
			defer cancel()
			h.services.Log.Record(auditCtx, origem, outcome, endpoint, detalhes)
		}()
	})
}

// originFromRemoteAddr reduces a remote "host:port" address to the bare
// host. Addresses without a port component are returned unchanged.
func originFromRemoteAddr(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
