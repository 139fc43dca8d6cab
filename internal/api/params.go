package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	gethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

func pathTokenID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("token id must be a positive integer")
	}
	return id, nil
}

func pathAddress(r *http.Request, param string) (gethcommon.Address, error) {
	raw := chi.URLParam(r, param)
	if !gethcommon.IsHexAddress(raw) {
		return gethcommon.Address{}, apperror.BadRequest(param + " must be a valid hex address")
	}
	return gethcommon.HexToAddress(raw), nil
}

func bodyAddress(raw string, field string, required bool) (gethcommon.Address, error) {
	if raw == "" {
		if required {
			return gethcommon.Address{}, apperror.BadRequest(field + " is required")
		}
		return gethcommon.Address{}, nil
	}
	if !gethcommon.IsHexAddress(raw) {
		return gethcommon.Address{}, apperror.BadRequest(field + " must be a valid hex address")
	}
	addr := gethcommon.HexToAddress(raw)
	if addr == (gethcommon.Address{}) {
		return gethcommon.Address{}, apperror.BadRequest(field + " must not be the zero address")
	}
	return addr, nil
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
