package api

import (
	"net/http"
	"time"
)

type blockchainInfo struct {
	Connected      bool   `json:"connected"`
	BlockNumber    uint64 `json:"blockNumber"`
	ChainID        int64  `json:"chainId"`
	SignerAddress  string `json:"signerAddress"`
	FactoryAddress string `json:"factoryAddress"`
}

type healthyBody struct {
	Status     string         `json:"status"`
	Version    string         `json:"version"`
	Uptime     int64          `json:"uptime"`
	Blockchain blockchainInfo `json:"blockchain"`
}

type unhealthyBody struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Health is the C6 liveness probe. It is mounted outside the auth/rate
// limit group and never consumes a rate-limit budget.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	uptime := int64(time.Since(s.Chain.StartedAt()).Seconds())

	result, err := s.Chain.HealthCheck(r.Context())
	if err != nil {
		respond(w, http.StatusServiceUnavailable, unhealthyBody{
			Status: "unhealthy",
			Error:  err.Error(),
		})
		return
	}

	respond(w, http.StatusOK, healthyBody{
		Status:  "healthy",
		Version: Version,
		Uptime:  uptime,
		Blockchain: blockchainInfo{
			Connected:      true,
			BlockNumber:    result.BlockNumber,
			ChainID:        result.ChainID,
			SignerAddress:  result.SignerAddress,
			FactoryAddress: result.FactoryAddress,
		},
	})
}
