package chain

import "math/big"

// big converts an int64 chain ID to the *big.Int the go-ethereum bind
// package expects.
func big(n int64) *big.Int {
	return new(big.Int).SetInt64(n)
}
