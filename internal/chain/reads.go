package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// tokenInfoRaw mirrors getTokenInfo's output tuple.
type tokenInfoRaw struct {
	KindTag     uint8
	TokenAddr   common.Address
	Owner       common.Address
	Name        string
	Symbol      string
	MetadataURI string
	CreatedAt   *big.Int
	Burnable    bool
	Pausable    bool
	ListedOnDex bool
}

func (g *Gateway) fetchTokenInfo(ctx context.Context, id uint64) (tokenInfoRaw, error) {
	factory, err := g.factory(ctx)
	if err != nil {
		return tokenInfoRaw{}, err
	}
	var raw []interface{}
	if err := call(ctx, factory, &raw, "getTokenInfo", big(int64(id))); err != nil {
		return tokenInfoRaw{}, apperror.NotFound(fmt.Sprintf("token %d not found", id))
	}
	if len(raw) < 10 {
		return tokenInfoRaw{}, apperror.NotFound(fmt.Sprintf("token %d not found", id))
	}
	info := tokenInfoRaw{
		KindTag:     raw[0].(uint8),
		TokenAddr:   raw[1].(common.Address),
		Owner:       raw[2].(common.Address),
		Name:        raw[3].(string),
		Symbol:      raw[4].(string),
		MetadataURI: raw[5].(string),
		CreatedAt:   raw[6].(*big.Int),
		Burnable:    raw[7].(bool),
		Pausable:    raw[8].(bool),
		ListedOnDex: raw[9].(bool),
	}
	if info.TokenAddr == (common.Address{}) {
		return tokenInfoRaw{}, apperror.NotFound(fmt.Sprintf("token %d not found", id))
	}
	return info, nil
}

func (g *Gateway) toToken(ctx context.Context, id uint64, raw tokenInfoRaw) (*Token, error) {
	kind := TokenKind(raw.KindTag)
	tok := &Token{
		ID:          id,
		Kind:        kind,
		Address:     raw.TokenAddr.Hex(),
		Owner:       raw.Owner.Hex(),
		Name:        raw.Name,
		Symbol:      raw.Symbol,
		MetadataURI: raw.MetadataURI,
		CreatedAt:   time.Unix(raw.CreatedAt.Int64(), 0).UTC(),
		Burnable:    raw.Burnable,
		Pausable:    raw.Pausable,
		ListedOnDex: raw.ListedOnDex,
	}
	if kind == Fungible {
		d, err := g.fungibleDecimals(ctx, raw.TokenAddr)
		if err == nil {
			tok.Decimals = &d
		}
	}
	return tok, nil
}

func (g *Gateway) fungibleDecimals(ctx context.Context, addr common.Address) (uint8, error) {
	child, err := g.childContract(ctx, Fungible, addr)
	if err != nil {
		return 0, err
	}
	var out []interface{}
	if err := call(ctx, child, &out, "decimals"); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, fmt.Errorf("decimals: empty result")
	}
	return out[0].(uint8), nil
}

// GetTokenInfo performs a synchronous read of a single token's details.
func (g *Gateway) GetTokenInfo(ctx context.Context, id uint64) (*Token, error) {
	raw, err := g.fetchTokenInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.toToken(ctx, id, raw)
}

// ListTokens reads tokenCount then iterates IDs from offset+1 through
// min(offset+limit, total) inclusive (IDs are 1-based). limit is clamped
// to [1, 500]; offset must be >= 0.
func (g *Gateway) ListTokens(ctx context.Context, limit, offset int) ([]*Token, int, error) {
	if offset < 0 {
		return nil, 0, apperror.BadRequest("offset must be >= 0")
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}

	factory, err := g.factory(ctx)
	if err != nil {
		return nil, 0, err
	}
	var countOut []interface{}
	if err := call(ctx, factory, &countOut, "tokenCount"); err != nil {
		return nil, 0, err
	}
	total := int(countOut[0].(*big.Int).Int64())

	start := offset + 1
	end := offset + limit
	if end > total {
		end = total
	}

	items := make([]*Token, 0)
	for id := start; id <= end; id++ {
		raw, err := g.fetchTokenInfo(ctx, uint64(id))
		if err != nil {
			continue // an id the factory no longer reports is skipped, not fatal
		}
		tok, err := g.toToken(ctx, uint64(id), raw)
		if err != nil {
			continue
		}
		items = append(items, tok)
	}
	return items, total, nil
}

// GetOwnerTokens returns every token owned by the given address, in
// factory return order, with no pagination.
func (g *Gateway) GetOwnerTokens(ctx context.Context, owner common.Address) ([]*Token, error) {
	factory, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}
	var idsOut []interface{}
	if err := call(ctx, factory, &idsOut, "getOwnerTokens", owner); err != nil {
		return nil, err
	}
	ids, _ := idsOut[0].([]*big.Int)

	items := make([]*Token, 0, len(ids))
	for _, idBig := range ids {
		id := idBig.Uint64()
		raw, err := g.fetchTokenInfo(ctx, id)
		if err != nil {
			continue
		}
		tok, err := g.toToken(ctx, id, raw)
		if err != nil {
			continue
		}
		items = append(items, tok)
	}
	return items, nil
}

// GetBalance returns a fresh balance snapshot for (tokenID, address).
func (g *Gateway) GetBalance(ctx context.Context, tokenID uint64, addr common.Address) (*Balance, error) {
	raw, err := g.fetchTokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	kind := TokenKind(raw.KindTag)
	child, err := g.childContract(ctx, kind, raw.TokenAddr)
	if err != nil {
		return nil, err
	}
	var out []interface{}
	if err := call(ctx, child, &out, "balanceOf", addr); err != nil {
		return nil, err
	}
	rawBalance := out[0].(*big.Int)

	bal := &Balance{Kind: kind, TokenID: tokenID, Address: addr.Hex(), Symbol: raw.Symbol}
	if kind == Fungible {
		decimals, err := g.fungibleDecimals(ctx, raw.TokenAddr)
		if err != nil {
			return nil, err
		}
		bal.Decimals = &decimals
		bal.Raw = rawBalance.String()
		bal.Formatted = FormatAmount(rawBalance, decimals)
	} else {
		count := rawBalance.Uint64()
		bal.UnitCount = &count
	}
	return bal, nil
}

// HealthCheckResult is the outcome of a liveness probe against the chain.
type HealthCheckResult struct {
	BlockNumber    uint64
	ChainID        int64
	SignerAddress  string
	FactoryAddress string
}

// HealthCheck confirms the gateway can reach the RPC node and reports the
// current block number, chain id, and signer/factory addresses.
func (g *Gateway) HealthCheck(ctx context.Context) (*HealthCheckResult, error) {
	client, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	blockNum, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	signerAddr, err := g.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	return &HealthCheckResult{
		BlockNumber:    blockNum,
		ChainID:        chainID.Int64(),
		SignerAddress:  signerAddr.Hex(),
		FactoryAddress: g.FactoryAddress().Hex(),
	}, nil
}
