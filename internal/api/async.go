package api

import (
	"net/http"

	"github.com/synnergy-chain/token-gateway/internal/chain"
	"github.com/synnergy-chain/token-gateway/internal/middleware"
)

// finishAsync records a completed submission in the ledger and renders the
// async-operation envelope, or — on a receipt-wait timeout — a 503
// UpstreamTimeout body that still carries the transaction hash so the
// caller never loses track of it.
func (s *Server) finishAsync(w http.ResponseWriter, r *http.Request, id string, outcome *chain.ReceiptOutcome, payload any) {
	s.Ledger.MarkSubmitted(id, outcome.TxHash)

	if outcome.TimedOut {
		s.Ledger.MarkFailed(id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = writeJSON(w, struct {
			Error     string `json:"error"`
			Name      string `json:"name"`
			RequestID string `json:"requestId"`
			TxHash    string `json:"txHash"`
		}{
			Error:     "timed out waiting for transaction receipt",
			Name:      "UpstreamTimeout",
			RequestID: middleware.RequestIDFromContext(r.Context()),
			TxHash:    outcome.TxHash,
		})
		return
	}

	if outcome.Confirmed {
		s.Ledger.MarkConfirmed(id, outcome.BlockNumber)
	} else {
		s.Ledger.MarkFailed(id)
	}

	op, _ := s.Ledger.Get(id)
	respond(w, http.StatusCreated, AsyncOp{
		ID:     id,
		Status: string(op.Status),
		TxHash: outcome.TxHash,
		Data:   payload,
	})
}
