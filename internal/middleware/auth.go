package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// Auth accepts a caller whose presented key, constant-time compared,
// matches any configured key. Authorization: Bearer <key> takes precedence
// over X-API-Key when both are present, per spec §6.2.
func Auth(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := bearerToken(r.Header.Get("Authorization"))
			if presented == "" {
				presented = r.Header.Get("X-API-Key")
			}
			if presented == "" || !matchesAny(presented, keys) {
				Render(w, r, apperror.Unauthorized())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func matchesAny(presented string, keys []string) bool {
	matched := 0
	for _, k := range keys {
		matched |= subtle.ConstantTimeCompare([]byte(presented), []byte(k))
	}
	return matched == 1
}
