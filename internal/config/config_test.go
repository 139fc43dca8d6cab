package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearRequiredEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RPC_URL", "OPERATOR_PRIVATE_KEY", "FACTORY_ADDRESS", "CHAIN_ID", "API_KEYS"} {
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadCollectsAllMissingFieldsAtOnce(t *testing.T) {
	clearRequiredEnv(t)
	_, err := Load()
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(verr.Problems), 4)
}

func TestLoadSucceedsWithAllRequiredFields(t *testing.T) {
	clearRequiredEnv(t)
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("OPERATOR_PRIVATE_KEY", "0xabc123")
	t.Setenv("FACTORY_ADDRESS", "0x0000000000000000000000000000000000000001")
	t.Setenv("CHAIN_ID", "31337")
	t.Setenv("API_KEYS", "key-one, key-two")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(31337), cfg.ChainID)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.APIKeys)
	assert.Equal(t, "abc123", cfg.OperatorPrivateKey)
}

func TestLoadDefaultsReceiptWaitAndLedgerCapacity(t *testing.T) {
	clearRequiredEnv(t)
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("OPERATOR_PRIVATE_KEY", "0xabc123")
	t.Setenv("FACTORY_ADDRESS", "0x0000000000000000000000000000000000000001")
	t.Setenv("CHAIN_ID", "1")
	t.Setenv("API_KEYS", "key")
	require.NoError(t, os.Unsetenv("RECEIPT_WAIT_SECONDS"))
	require.NoError(t, os.Unsetenv("OPERATION_LEDGER_CAPACITY"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.ReceiptWaitSeconds)
	assert.Equal(t, 10000, cfg.OperationLedgerCapacity)
}
