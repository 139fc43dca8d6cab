package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

func TestRenderExposableError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens/1", nil)
	rec := httptest.NewRecorder()
	Render(rec, req, apperror.BadRequest("symbol is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BadRequest", body.Name)
	assert.Equal(t, "symbol is required", body.Error)
}

func TestRenderRedactsInternalCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens/1", nil)
	rec := httptest.NewRecorder()
	Render(rec, req, apperror.Internal(errors.New("db connection string leaked here")))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InternalError", body.Name)
	assert.NotContains(t, body.Error, "leaked")
}

func TestRenderIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/tokens/1", nil)
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Render(w, r, apperror.NotFound("token 9 not found"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RequestID)
}
