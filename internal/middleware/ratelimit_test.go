package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitAllowsUpToMaxThenRejects(t *testing.T) {
	h := RateLimit(time.Minute, 2)(okHandler())

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
		req.RemoteAddr = "203.0.113.7:4444"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestRateLimitTracksClientsIndependently(t *testing.T) {
	h := RateLimit(time.Minute, 1)(okHandler())

	reqA := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	reqA.RemoteAddr = "203.0.113.1:1"
	recA := httptest.NewRecorder()
	h.ServeHTTP(recA, reqA)
	assert.Equal(t, http.StatusOK, recA.Code)

	reqB := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	reqB.RemoteAddr = "203.0.113.2:1"
	recB := httptest.NewRecorder()
	h.ServeHTTP(recB, reqB)
	assert.Equal(t, http.StatusOK, recB.Code)
}

func TestRateLimitWindowSlides(t *testing.T) {
	h := RateLimit(50*time.Millisecond, 1)(okHandler())

	req1 := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req1.RemoteAddr = "203.0.113.9:1"
	rec1 := httptest.NewRecorder()
	h.ServeHTTP(rec1, req1)
	assert.Equal(t, http.StatusOK, rec1.Code)

	time.Sleep(60 * time.Millisecond)

	req2 := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req2.RemoteAddr = "203.0.113.9:1"
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusOK, rec2.Code, "window should have slid past the first request")
}
