// Package config loads the gateway's process-wide configuration from the
// environment. An optional .env file is merged in first (teacher pattern:
// walletserver/config/config.go's godotenv.Load), but all required fields
// must ultimately resolve from the real process environment in production
// deployments.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/synnergy-chain/token-gateway/pkg/utils"
)

// Config is the validated, immutable configuration snapshot consumed by
// every other component. It is constructed once in Load and never mutated.
type Config struct {
	Host string
	Port string

	RPCURL             string
	ChainID            int64
	OperatorPrivateKey string // raw hex, 0x prefix optional
	FactoryAddress     string
	APIKeys            []string

	RateLimitWindowMS int
	RateLimitMax      int

	LogLevel string

	ReceiptWaitSeconds      int
	OperationLedgerCapacity int
	ShutdownGraceSeconds    int
}

// ValidationError collects every missing or malformed required field so the
// operator sees the whole list in one pass instead of fixing one variable
// at a time.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// Load reads and validates configuration from the environment. A missing
// .env file is not an error — many deployments (containers, systemd units)
// supply the real environment directly and never ship a .env at all.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var problems []string

	cfg := &Config{
		Host:                    utils.EnvOrDefault("GATEWAY_HOST", "0.0.0.0"),
		Port:                    utils.EnvOrDefault("GATEWAY_PORT", "3000"),
		RPCURL:                  utils.EnvOrDefault("RPC_URL", ""),
		OperatorPrivateKey:      strings.TrimPrefix(utils.EnvOrDefault("OPERATOR_PRIVATE_KEY", ""), "0x"),
		FactoryAddress:          utils.EnvOrDefault("FACTORY_ADDRESS", ""),
		LogLevel:                utils.EnvOrDefault("LOG_LEVEL", "info"),
		RateLimitWindowMS:       utils.EnvOrDefaultInt("RATE_LIMIT_WINDOW_MS", 60000),
		RateLimitMax:            utils.EnvOrDefaultInt("RATE_LIMIT_MAX", 100),
		ReceiptWaitSeconds:      utils.EnvOrDefaultInt("RECEIPT_WAIT_SECONDS", 20),
		OperationLedgerCapacity: utils.EnvOrDefaultInt("OPERATION_LEDGER_CAPACITY", 10000),
		ShutdownGraceSeconds:    utils.EnvOrDefaultInt("SHUTDOWN_GRACE_SECONDS", 15),
	}

	if cfg.RPCURL == "" {
		problems = append(problems, "RPC_URL is required")
	}
	if cfg.OperatorPrivateKey == "" {
		problems = append(problems, "OPERATOR_PRIVATE_KEY is required")
	}
	if cfg.FactoryAddress == "" {
		problems = append(problems, "FACTORY_ADDRESS is required")
	}

	chainIDRaw := utils.EnvOrDefault("CHAIN_ID", "")
	if chainIDRaw == "" {
		problems = append(problems, "CHAIN_ID is required")
	} else {
		n := utils.EnvOrDefaultInt("CHAIN_ID", -1)
		if n < 0 {
			problems = append(problems, "CHAIN_ID must be a non-negative integer")
		} else {
			cfg.ChainID = int64(n)
		}
	}

	keysRaw := utils.EnvOrDefault("API_KEYS", "")
	for _, k := range strings.Split(keysRaw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			cfg.APIKeys = append(cfg.APIKeys, k)
		}
	}
	if len(cfg.APIKeys) == 0 {
		problems = append(problems, "API_KEYS is required and must contain at least one non-empty key")
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return cfg, nil
}
