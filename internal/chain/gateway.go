// Package chain is the sole owner of the RPC connection, the operator
// signing identity, and the token-factory contract binding. Every call
// that touches the chain — reads, writes, fee estimation, health — goes
// through a Gateway value built once at bootstrap and passed explicitly to
// the HTTP handlers; there is no package-level connection or signer.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/synnergy-chain/token-gateway/pkg/utils"
)

// Gateway is the Chain Gateway component (C2). Reads may run concurrently;
// every write acquires the submission lease so nonce-acquire, sign, and
// broadcast form one contiguous critical section per spec §5.
type Gateway struct {
	rpcURL         string
	chainID        int64
	privateKeyHex  string
	factoryAddrHex string
	receiptWait    time.Duration
	log            *logrus.Logger

	startedAt time.Time

	clientOnce sync.Once
	clientVal  *ethclient.Client
	clientErr  error

	signerOnce  sync.Once
	signerVal   *bind.TransactOpts
	signerErr   error
	privKey     *ecdsa.PrivateKey
	signerAddr  common.Address

	factoryOnce     sync.Once
	factoryContract *bind.BoundContract
	factoryAddr     common.Address

	lease chan struct{}
}

// New constructs a Gateway. Nothing here dials the RPC node or touches the
// network — connection and signer construction are lazy (first use),
// matching spec §4.2. A malformed private key or factory address IS a
// fatal config error (caught by the caller before the process accepts
// traffic); an unreachable RPC endpoint is NOT — the Health Probe will
// simply report unhealthy until connectivity returns.
func New(rpcURL string, chainID int64, privateKeyHex, factoryAddrHex string, receiptWait time.Duration, log *logrus.Logger) (*Gateway, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	if _, err := crypto.HexToECDSA(privateKeyHex); err != nil {
		return nil, utils.Wrap(err, "operator private key")
	}
	if !common.IsHexAddress(factoryAddrHex) {
		return nil, fmt.Errorf("factory address %q is not a valid hex address", factoryAddrHex)
	}
	return &Gateway{
		rpcURL:         rpcURL,
		chainID:        chainID,
		privateKeyHex:  privateKeyHex,
		factoryAddrHex: factoryAddrHex,
		factoryAddr:    common.HexToAddress(factoryAddrHex),
		receiptWait:    receiptWait,
		log:            log,
		startedAt:      time.Now(),
		lease:          make(chan struct{}, 1),
	}, nil
}

// client lazily dials the RPC endpoint and caches the connection for the
// process lifetime.
func (g *Gateway) client(ctx context.Context) (*ethclient.Client, error) {
	g.clientOnce.Do(func() {
		g.clientVal, g.clientErr = ethclient.DialContext(ctx, g.rpcURL)
	})
	return g.clientVal, g.clientErr
}

// signer lazily derives the operator's transaction signer from the
// injected private key.
func (g *Gateway) signer(ctx context.Context) (*bind.TransactOpts, error) {
	g.signerOnce.Do(func() {
		privKey, err := crypto.HexToECDSA(g.privateKeyHex)
		if err != nil {
			g.signerErr = err
			return
		}
		auth, err := bind.NewKeyedTransactorWithChainID(privKey, big(g.chainID))
		if err != nil {
			g.signerErr = err
			return
		}
		g.privKey = privKey
		g.signerAddr = crypto.PubkeyToAddress(privKey.PublicKey)
		g.signerVal = auth
	})
	return g.signerVal, g.signerErr
}

// factory lazily binds the factory contract handle.
func (g *Gateway) factory(ctx context.Context) (*bind.BoundContract, error) {
	client, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	g.factoryOnce.Do(func() {
		g.factoryContract = bind.NewBoundContract(g.factoryAddr, factoryABI, client, client, client)
	})
	return g.factoryContract, nil
}

// acquireLease blocks until the caller is the sole holder of the
// submission lease. Go's channel semantics for a size-1 buffered channel
// used this way guarantee FIFO fairness among waiters.
func (g *Gateway) acquireLease(ctx context.Context) error {
	select {
	case g.lease <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gateway) releaseLease() {
	<-g.lease
}

// SignerAddress returns the operator's address, deriving the signer first
// if necessary.
func (g *Gateway) SignerAddress(ctx context.Context) (common.Address, error) {
	if _, err := g.signer(ctx); err != nil {
		return common.Address{}, err
	}
	return g.signerAddr, nil
}

// FactoryAddress returns the configured factory contract address.
func (g *Gateway) FactoryAddress() common.Address { return g.factoryAddr }

// StartedAt returns the timestamp the Gateway was constructed, used by the
// Health Probe to compute process uptime.
func (g *Gateway) StartedAt() time.Time { return g.startedAt }
