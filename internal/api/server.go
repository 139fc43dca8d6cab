package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
	"github.com/synnergy-chain/token-gateway/internal/chain"
	"github.com/synnergy-chain/token-gateway/internal/ledger"
	"github.com/synnergy-chain/token-gateway/internal/middleware"
)

// Version is the gateway's reported build version. It is a var, not a
// const, so a release build can overwrite it with -ldflags.
var Version = "dev"

// Server holds the dependencies every handler needs. There is no
// package-level state; handlers are methods on this value.
type Server struct {
	Chain  *chain.Gateway
	Ledger *ledger.Ledger
	Log    *logrus.Logger
}

func writeJSON(w http.ResponseWriter, body any) error {
	return json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	middleware.Render(w, r, err)
}

// decodeJSON reads and validates a JSON request body into dst. An empty
// body is treated as {} so optional-everything endpoints don't need a
// special case.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperror.BadRequest("malformed JSON body: " + err.Error())
	}
	return nil
}
