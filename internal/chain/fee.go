package chain

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// DeploySpec describes a hypothetical (not-yet-submitted) deployment used
// to price a create call before committing to it.
type DeploySpec struct {
	Kind          TokenKind
	Name          string
	Symbol        string
	InitialSupply string
	Decimals      uint8
	MetadataURI   string
	BaseURI       string
	Burnable      bool
	Pausable      bool
	ListOnDex     bool
}

// EstimateFee prices a hypothetical create* call against the factory. The
// gas estimate carries a fixed +20% safety margin (integer math); the gas
// price is the node's current suggestion, falling back, when the node
// cannot suggest a single gas price, to a max-fee-per-gas built from the
// suggested tip plus twice the latest base fee (the tip alone when no base
// fee is available).
func (g *Gateway) EstimateFee(ctx context.Context, spec DeploySpec) (*FeeQuote, error) {
	client, err := g.client(ctx)
	if err != nil {
		return nil, apperror.UpstreamUnavailable(err)
	}
	signerAddr, err := g.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch spec.Kind {
	case Fungible:
		atomicSupply, perr := ParseAmount(spec.InitialSupply, spec.Decimals)
		if perr != nil {
			return nil, perr
		}
		data, err = factoryABI.Pack("createERC20", spec.Name, spec.Symbol, atomicSupply, spec.MetadataURI, spec.Burnable, spec.Pausable, spec.ListOnDex)
	case NonFungible:
		data, err = factoryABI.Pack("createERC721", spec.Name, spec.Symbol, spec.BaseURI, spec.Burnable)
	default:
		return nil, apperror.BadRequest("unknown token kind")
	}
	if err != nil {
		return nil, apperror.BadRequest("could not encode call: " + err.Error())
	}

	factoryAddr := g.factoryAddr
	msg := ethereum.CallMsg{From: signerAddr, To: &factoryAddr, Data: data}
	gasEstimate, err := client.EstimateGas(ctx, msg)
	if err != nil {
		return nil, apperror.UpstreamUnavailable(err)
	}
	gasLimit := gasEstimate * 120 / 100

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		tip, tipErr := client.SuggestGasTipCap(ctx)
		if tipErr != nil {
			return nil, apperror.UpstreamUnavailable(err)
		}
		header, hErr := client.HeaderByNumber(ctx, nil)
		if hErr != nil || header.BaseFee == nil {
			gasPrice = tip
		} else {
			gasPrice = new(big.Int).Add(tip, new(big.Int).Mul(header.BaseFee, new(big.Int).SetInt64(2)))
		}
	}

	cost := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)
	return &FeeQuote{
		GasLimit:              gasLimit,
		GasPrice:              gasPrice.String(),
		GasPriceInDisplayUnit: FormatAmount(gasPrice, 18),
		EstimatedCost:         FormatAmount(cost, 18),
	}, nil
}
