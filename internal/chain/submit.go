package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// ReceiptOutcome is the result of submitting a transaction and waiting for
// it to be mined.
type ReceiptOutcome struct {
	TxHash      string
	BlockNumber uint64
	Confirmed   bool // true iff receipt.Status == 1; finishDeploy clears it when the TokenCreated event is absent
	TimedOut    bool // true iff no receipt was observed within the deadline
	Receipt     *gethtypes.Receipt
}

// submitAndWait serialises nonce-acquire/sign/broadcast through the
// submission lease, then waits for the receipt OUTSIDE the lease so other
// submissions can proceed while this one is still being mined (spec §5).
func (g *Gateway) submitAndWait(ctx context.Context, txFn func(opts *bind.TransactOpts) (*gethtypes.Transaction, error)) (*ReceiptOutcome, error) {
	client, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	signer, err := g.signer(ctx)
	if err != nil {
		return nil, err
	}

	if err := g.acquireLease(ctx); err != nil {
		return nil, err
	}
	opts := *signer
	opts.Context = ctx
	tx, txErr := txFn(&opts)
	g.releaseLease()
	if txErr != nil {
		return nil, txErr
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), g.receiptWait)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, client, tx)
	if err != nil {
		// Transaction was broadcast and is not abandoned — its hash is
		// still returned so the caller never loses track of it.
		return &ReceiptOutcome{TxHash: tx.Hash().Hex(), TimedOut: true}, nil
	}
	return &ReceiptOutcome{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Confirmed:   receipt.Status == gethtypes.ReceiptStatusSuccessful,
		Receipt:     receipt,
	}, nil
}

// call performs a read-only contract call. Reads never touch the
// submission lease and may run concurrently with writes and with each
// other.
func call(ctx context.Context, contract *bind.BoundContract, out *[]interface{}, method string, params ...interface{}) error {
	return contract.Call(&bind.CallOpts{Context: ctx}, out, method, params...)
}
