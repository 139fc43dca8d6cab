package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// tokenCreated mirrors the factory's TokenCreated event.
type tokenCreated struct {
	ID          *big.Int
	KindTag     uint8
	TokenAddr   common.Address `abi:"tokenAddress"`
	Owner       common.Address
	Name        string
	Symbol      string
	MetadataURI string
}

// decodeTokenCreated scans receipt logs for the factory's TokenCreated
// event. Per spec §4.2/§7, event decoding is wrapped per log: a single
// malformed log is skipped and never aborts the fold, and an absent event
// is reported via the returned bool rather than an error.
func decodeTokenCreated(contract *bind.BoundContract, logs []*gethtypes.Log, factoryAddr common.Address) (tokenCreated, bool) {
	for _, lg := range logs {
		if lg == nil || lg.Address != factoryAddr {
			continue
		}
		var out tokenCreated
		if err := contract.UnpackLog(&out, "TokenCreated", *lg); err != nil {
			continue // isolated: this log's decode failure never aborts the fold
		}
		return out, true
	}
	return tokenCreated{}, false
}

// decodeMetadataURIUpdated scans receipt logs for MetadataURIUpdated.
func decodeMetadataURIUpdated(contract *bind.BoundContract, logs []*gethtypes.Log, factoryAddr common.Address) (string, bool) {
	for _, lg := range logs {
		if lg == nil || lg.Address != factoryAddr {
			continue
		}
		var out struct {
			ID  *big.Int
			URI string
		}
		if err := contract.UnpackLog(&out, "MetadataURIUpdated", *lg); err != nil {
			continue
		}
		return out.URI, true
	}
	return "", false
}
