package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingCredentials(t *testing.T) {
	h := Auth([]string{"secret"})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAcceptsXAPIKey(t *testing.T) {
	h := Auth([]string{"secret"})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizationHeaderWinsOverXAPIKey(t *testing.T) {
	h := Auth([]string{"good-key"})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req.Header.Set("Authorization", "Bearer good-key")
	req.Header.Set("X-API-Key", "wrong-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRejectsUnknownKey(t *testing.T) {
	h := Auth([]string{"good-key"})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
