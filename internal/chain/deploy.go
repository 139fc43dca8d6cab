package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// DeployResult is returned by createFungible/createNonFungible. TokenID is
// nil and TokenAddr is empty when the TokenCreated event could not be found
// in the receipt — per spec §4.2 that is reported as a Failed operation with
// null id/address rather than an error.
type DeployResult struct {
	Outcome     *ReceiptOutcome
	TokenID     *uint64
	TokenAddr   string
}

// CreateFungible deploys a new fungible child token. initialSupply is a
// decimal string in the token's display unit, converted to an atomic
// amount using decimals before submission.
func (g *Gateway) CreateFungible(ctx context.Context, name, symbol, initialSupply string, decimals uint8, metadataURI string, burnable, pausable, listOnDex bool) (*DeployResult, error) {
	atomicSupply, err := ParseAmount(initialSupply, decimals)
	if err != nil {
		return nil, err
	}

	factory, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return factory.Transact(opts, "createERC20", name, symbol, atomicSupply, metadataURI, burnable, pausable, listOnDex)
	})
	if err != nil {
		return nil, err
	}
	return g.finishDeploy(ctx, outcome)
}

// CreateNonFungible deploys a new non-fungible child token collection.
func (g *Gateway) CreateNonFungible(ctx context.Context, name, symbol, baseURI string, burnable bool) (*DeployResult, error) {
	factory, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return factory.Transact(opts, "createERC721", name, symbol, baseURI, burnable)
	})
	if err != nil {
		return nil, err
	}
	return g.finishDeploy(ctx, outcome)
}

func (g *Gateway) finishDeploy(ctx context.Context, outcome *ReceiptOutcome) (*DeployResult, error) {
	result := &DeployResult{Outcome: outcome}
	if outcome.TimedOut || !outcome.Confirmed {
		return result, nil
	}
	factory, err := g.factory(ctx)
	if err != nil {
		return result, nil
	}
	created, ok := decodeTokenCreated(factory, outcome.Receipt.Logs, g.factoryAddr)
	if !ok {
		// Event absent: both id and address are reported null, and the
		// caller (ledger/api layer) treats this as Failed per spec §4.2.
		outcome.Confirmed = false
		return result, nil
	}
	id := tokenIDFromBig(created.ID)
	addr := created.TokenAddr.Hex()
	result.TokenID = &id
	result.TokenAddr = addr
	return result, nil
}

func tokenIDFromBig(v *big.Int) uint64 {
	if v == nil {
		return 0
	}
	return v.Uint64()
}
