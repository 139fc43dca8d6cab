// Package api is the HTTP Surface (C5) and Health Probe (C6): thin
// handlers that validate input, call the chain.Gateway (one operation, plus
// a token read where the handler prices an existing token), record the
// outcome in the operation ledger, and render one of the three fixed
// response envelopes.
package api

// Resource is the envelope for point reads: a single object.
type Resource struct {
	Data any `json:"data"`
}

// Pagination describes a page's position within a larger collection.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// Paginated is the envelope for list reads.
type Paginated struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// AsyncOp is the envelope for every state-changing endpoint. Status
// reflects the ledger's state at response time — since every handler here
// waits for the receipt before responding, that status is always
// terminal (Confirmed or Failed) except on a receipt-wait timeout, where
// the handler itself returns 503 UpstreamTimeout with the tx hash still
// attached.
type AsyncOp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	TxHash string `json:"txHash,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func newPaginated(data any, count, total, limit, offset int) Paginated {
	return Paginated{
		Data: data,
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+count < total,
		},
	}
}
