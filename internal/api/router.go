package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
	"github.com/synnergy-chain/token-gateway/internal/chain"
	"github.com/synnergy-chain/token-gateway/internal/ledger"
	"github.com/synnergy-chain/token-gateway/internal/middleware"

	"github.com/sirupsen/logrus"
)

// NewRouter builds the full route tree. Ordering, outermost to innermost,
// is recovery -> request id -> security headers -> body limit -> rate
// limit -> auth -> handler; /v1/health is registered outside the rate
// limit/auth group, so only recovery/request-id/security/body-limit apply
// to it, bypassing rate limiting and auth entirely.
func NewRouter(gw *chain.Gateway, led *ledger.Ledger, apiKeys []string, rateWindow time.Duration, rateMax int, log *logrus.Logger) *chi.Mux {
	s := &Server{Chain: gw, Ledger: led, Log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Security)
	r.Use(middleware.BodyLimit)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/health", s.Health)

		v1.Group(func(g chi.Router) {
			g.Use(middleware.RateLimit(rateWindow, rateMax))
			g.Use(middleware.Auth(apiKeys))

			g.Post("/tokens", s.CreateToken)
			g.Get("/tokens", s.ListTokens)
			g.Post("/tokens/estimate-fee", s.EstimateNewFee)
			g.Get("/tokens/{id}", s.GetToken)
			g.Patch("/tokens/{id}", s.UpdateMetadata)
			g.Get("/tokens/{id}/balance/{address}", s.GetBalance)
			g.Post("/tokens/{id}/estimate-fee", s.EstimateExistingFee)
			g.Post("/tokens/{id}/mint", s.Mint)
			g.Post("/tokens/{id}/burn", s.Burn)
			g.Post("/tokens/{id}/transfer", s.Transfer)
			g.Post("/tokens/{id}/pause", s.Pause)
			g.Post("/tokens/{id}/unpause", s.Unpause)
			g.Post("/tokens/{id}/list-on-dex", s.ListOnDex)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		fail(w, r, apperror.NotFound("route not found"))
	})

	return r
}
