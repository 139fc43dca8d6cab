package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// Mint issues new units of tokenID to `to`. For a fungible token, amount is
// a decimal string converted via the child's decimals; for a non-fungible
// token, uri is the (possibly empty) per-unit metadata URI and the minted
// unit identifier appears in the returned transaction's logs, decoded by
// the caller if needed.
func (g *Gateway) Mint(ctx context.Context, tokenID uint64, to common.Address, amount, uri string) (*ReceiptOutcome, error) {
	if to == (common.Address{}) {
		return nil, apperror.BadRequest("to is required")
	}
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	kind := TokenKind(raw.KindTag)
	child, err := g.childContract(ctx, kind, raw.TokenAddr)
	if err != nil {
		return nil, err
	}

	if kind == Fungible {
		decimals, err := g.fungibleDecimals(ctx, raw.TokenAddr)
		if err != nil {
			return nil, err
		}
		atomic, err := ParseAmount(amount, decimals)
		if err != nil {
			return nil, err
		}
		return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
			return child.Transact(opts, "mint", to, atomic)
		})
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return child.Transact(opts, "mint", to, uri)
	})
}

// Burn destroys units of tokenID. For a fungible token the operator burns
// from its own balance; for a non-fungible token, unitID identifies the
// specific child unit.
func (g *Gateway) Burn(ctx context.Context, tokenID uint64, amount string, unitID uint64) (*ReceiptOutcome, error) {
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	kind := TokenKind(raw.KindTag)
	if kind == Fungible && !raw.Burnable {
		return nil, apperror.Conflict("token is not burnable")
	}
	child, err := g.childContract(ctx, kind, raw.TokenAddr)
	if err != nil {
		return nil, err
	}

	if kind == Fungible {
		decimals, err := g.fungibleDecimals(ctx, raw.TokenAddr)
		if err != nil {
			return nil, err
		}
		atomic, err := ParseAmount(amount, decimals)
		if err != nil {
			return nil, err
		}
		return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
			return child.Transact(opts, "burn", atomic)
		})
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return child.Transact(opts, "burn", big(int64(unitID)))
	})
}

// Transfer moves tokenID units between accounts. The fungible path ignores
// from — the signer transfers its own balance via transfer(to, amount).
// The non-fungible path uses transferFrom(from, to, unitID), defaulting
// from to the signer when the caller omits it.
func (g *Gateway) Transfer(ctx context.Context, tokenID uint64, from, to common.Address, amount string, unitID uint64) (*ReceiptOutcome, error) {
	if to == (common.Address{}) {
		return nil, apperror.BadRequest("to is required")
	}
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	kind := TokenKind(raw.KindTag)
	child, err := g.childContract(ctx, kind, raw.TokenAddr)
	if err != nil {
		return nil, err
	}

	if kind == Fungible {
		decimals, err := g.fungibleDecimals(ctx, raw.TokenAddr)
		if err != nil {
			return nil, err
		}
		atomic, err := ParseAmount(amount, decimals)
		if err != nil {
			return nil, err
		}
		return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
			return child.Transact(opts, "transfer", to, atomic)
		})
	}

	sender := from
	if sender == (common.Address{}) {
		sender, err = g.SignerAddress(ctx)
		if err != nil {
			return nil, err
		}
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return child.Transact(opts, "transferFrom", sender, to, big(int64(unitID)))
	})
}

// Pause halts transfers on a fungible, pausable token.
func (g *Gateway) Pause(ctx context.Context, tokenID uint64) (*ReceiptOutcome, error) {
	return g.setPaused(ctx, tokenID, "pause")
}

// Unpause resumes transfers on a fungible, pausable token.
func (g *Gateway) Unpause(ctx context.Context, tokenID uint64) (*ReceiptOutcome, error) {
	return g.setPaused(ctx, tokenID, "unpause")
}

func (g *Gateway) setPaused(ctx context.Context, tokenID uint64, method string) (*ReceiptOutcome, error) {
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	kind := TokenKind(raw.KindTag)
	if kind != Fungible {
		return nil, apperror.Conflict("only fungible tokens support pause/unpause")
	}
	if !raw.Pausable {
		return nil, apperror.Conflict("token is not pausable")
	}
	child, err := g.childContract(ctx, kind, raw.TokenAddr)
	if err != nil {
		return nil, err
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return child.Transact(opts, method)
	})
}

// UpdateMetadata updates the factory-recorded metadata URI for tokenID.
func (g *Gateway) UpdateMetadata(ctx context.Context, tokenID uint64, uri string) (*ReceiptOutcome, error) {
	factory, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return factory.Transact(opts, "updateMetadataURI", big(int64(tokenID)), uri)
	})
}

// ListOnDex performs the post-deployment DEX-listing step for a fungible
// token.
func (g *Gateway) ListOnDex(ctx context.Context, tokenID uint64) (*ReceiptOutcome, error) {
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if TokenKind(raw.KindTag) != Fungible {
		return nil, apperror.Conflict("only fungible tokens can be listed on a DEX")
	}
	factory, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}
	return g.submitAndWait(ctx, func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return factory.Transact(opts, "listOnETCSwap", big(int64(tokenID)))
	})
}
