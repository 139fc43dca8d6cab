package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// errorBody is the error shape Render writes to the wire: {error, name,
// requestId}. The receipt-wait timeout body written by api.finishAsync
// adds a txHash field to it.
type errorBody struct {
	Error     string `json:"error"`
	Name      string `json:"name"`
	RequestID string `json:"requestId"`
}

// Render writes err as the gateway's terminal error response. A non-nil,
// non-*apperror.Error is wrapped as an InternalError first. When the error
// is not Exposable, the wire message is replaced with a generic one — the
// cause is never leaked to the caller. Render itself logs nothing, whatever
// the status; the only error that reaches the server log is a recovered
// panic, which Recovery logs before rendering it.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperror.As(err)
	msg := ae.Message
	if !ae.Exposable {
		msg = "internal server error"
	}
	body := errorBody{
		Error:     msg,
		Name:      ae.Name,
		RequestID: RequestIDFromContext(r.Context()),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.Status)
	_ = json.NewEncoder(w).Encode(body)
}
