package middleware

import "net/http"

// maxBodyBytes bounds a single request body at 1 MiB. No operation this
// gateway exposes — deploy parameters, mint/burn/transfer amounts, a
// metadata URI — legitimately needs more.
const maxBodyBytes = 1 << 20

// BodyLimit wraps the request body in http.MaxBytesReader so an oversized
// payload fails fast on first read instead of exhausting memory.
func BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
