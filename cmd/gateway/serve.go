package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/synnergy-chain/token-gateway/internal/api"
	"github.com/synnergy-chain/token-gateway/internal/chain"
	"github.com/synnergy-chain/token-gateway/internal/config"
	"github.com/synnergy-chain/token-gateway/internal/ledger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "invalid configuration:")
			for _, p := range verr.Problems {
				fmt.Fprintln(os.Stderr, "  - "+p)
			}
			return errExit{}
		}
		return err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, lerr := logrus.ParseLevel(cfg.LogLevel); lerr == nil {
		log.SetLevel(level)
	}

	gw, err := chain.New(cfg.RPCURL, cfg.ChainID, cfg.OperatorPrivateKey, cfg.FactoryAddress, time.Duration(cfg.ReceiptWaitSeconds)*time.Second, log)
	if err != nil {
		return fmt.Errorf("chain gateway: %w", err)
	}

	led := ledger.New(cfg.OperationLedgerCapacity)

	router := api.NewRouter(gw, led, cfg.APIKeys, time.Duration(cfg.RateLimitWindowMS)*time.Millisecond, cfg.RateLimitMax, log)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("gateway listening")
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownGraceSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("gateway stopped")
	return nil
}

// errExit signals main to exit(1) without printing a redundant error —
// the diagnostic list was already written to stderr.
type errExit struct{}

func (errExit) Error() string { return "" }
