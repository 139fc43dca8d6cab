package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// childContract binds a deployed child contract on demand using the
// minimal ABI appropriate to its kind. No per-token code generation:
// exactly two ABIs cover every deployed child, per spec §4.2.
func (g *Gateway) childContract(ctx context.Context, kind TokenKind, addr common.Address) (*bind.BoundContract, error) {
	client, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Fungible:
		return bind.NewBoundContract(addr, fungibleABI, client, client, client), nil
	case NonFungible:
		return bind.NewBoundContract(addr, nonFungibleABI, client, client, client), nil
	default:
		return bind.NewBoundContract(addr, fungibleABI, client, client, client), nil
	}
}
