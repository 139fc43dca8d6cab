// Package middleware is the ingress pipeline (C4): correlation id, security
// headers, body size cap, rate limiting, API key auth, panic recovery, and
// the terminal error renderer. Handlers run behind all of these in the
// fixed order spec §4.4 defines.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

const requestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// wellFormed reports whether id is acceptable to echo back as a correlation
// id: non-empty, at most 128 bytes, and printable ASCII. It deliberately
// does not require a UUID — a caller's own distributed-trace id (e.g.
// "trace-abc-123") is honoured as-is, per spec §4.4.
func wellFormed(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// RequestID assigns a correlation id to every request: a well-formed
// incoming X-Request-Id is reused verbatim, otherwise a fresh UUID is
// minted. The id is echoed back on the response header and stashed in the
// context for the terminal error renderer.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !wellFormed(id) {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the correlation id stashed by RequestID, or
// "" if none is present (e.g. in a unit test that calls a handler directly).
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
