package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// Recovery converts a panicking handler into an InternalError response
// instead of killing the connection bare, logging the recovered value with
// the request's correlation id attached.
func Recovery(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// Recovery wraps RequestID, so r's context has no id; read
					// it back from the response header RequestID already set.
					id := RequestIDFromContext(r.Context())
					if id == "" {
						id = w.Header().Get(requestIDHeader)
					}
					log.WithFields(logrus.Fields{
						"requestId": id,
						"panic":     rec,
					}).Error("recovered from panic")
					Render(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)), apperror.Internal(fmt.Errorf("panic: %v", rec)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
