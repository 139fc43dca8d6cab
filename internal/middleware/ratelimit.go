package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// bucket is one client's sliding-window request log: timestamps of
// requests still inside the current window, oldest first.
type bucket struct {
	mu   sync.Mutex
	hits []time.Time
}

// maxTrackedClients bounds the rate limiter's own memory: the LRU evicts
// the least recently seen client bucket once the table is full, which
// simply resets that client's window — an acceptable tradeoff for an
// operator-facing gateway, not a public endpoint facing unbounded churn.
const maxTrackedClients = 10000

// RateLimit enforces a sliding-window budget of max requests per window
// per client, keyed by the caller's remote address (or the first hop of
// X-Forwarded-For when present, for deployments behind a trusted proxy).
func RateLimit(window time.Duration, max int) func(http.Handler) http.Handler {
	buckets, _ := lru.New[string, *bucket](maxTrackedClients)
	var tableMu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			tableMu.Lock()
			b, ok := buckets.Get(key)
			if !ok {
				b = &bucket{}
				buckets.Add(key, b)
			}
			tableMu.Unlock()

			b.mu.Lock()
			now := time.Now()
			cutoff := now.Add(-window)
			kept := b.hits[:0]
			for _, t := range b.hits {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			b.hits = kept
			if len(b.hits) >= max {
				b.mu.Unlock()
				Render(w, r, apperror.RateLimitExceeded())
				return
			}
			b.hits = append(b.hits, now)
			b.mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		if first := strings.TrimSpace(fwd); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
