package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
	"github.com/synnergy-chain/token-gateway/internal/chain"
	"github.com/synnergy-chain/token-gateway/internal/ledger"
)

type createTokenRequest struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	InitialSupply string `json:"initialSupply"`
	Decimals      *uint8 `json:"decimals"`
	MetadataURI   string `json:"metadataURI"`
	BaseURI       string `json:"baseURI"`
	Burnable      bool   `json:"burnable"`
	Pausable      bool   `json:"pausable"`
	ListOnDex     bool   `json:"listOnDex"`
}

// CreateToken deploys a fungible or non-fungible token, selected by the
// request body's kind field.
func (s *Server) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	kind, ok := chain.ParseTokenKind(req.Kind)
	if !ok {
		fail(w, r, apperror.BadRequest("kind must be \"Erc20\" or \"Erc721\""))
		return
	}
	if req.Name == "" || req.Symbol == "" {
		fail(w, r, apperror.BadRequest("name and symbol are required"))
		return
	}

	var (
		result *chain.DeployResult
		err    error
	)
	switch kind {
	case chain.Fungible:
		if req.InitialSupply == "" {
			fail(w, r, apperror.BadRequest("initialSupply is required for Erc20"))
			return
		}
		if err := chain.ValidateAmountSyntax(req.InitialSupply); err != nil {
			fail(w, r, err)
			return
		}
		decimals := uint8(18)
		if req.Decimals != nil {
			decimals = *req.Decimals
		}
		result, err = s.Chain.CreateFungible(r.Context(), req.Name, req.Symbol, req.InitialSupply, decimals, req.MetadataURI, req.Burnable, req.Pausable, req.ListOnDex)
	case chain.NonFungible:
		result, err = s.Chain.CreateNonFungible(r.Context(), req.Name, req.Symbol, req.BaseURI, req.Burnable)
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	var opID string
	if result.TokenID != nil {
		opID = s.Ledger.NextDeployID(*result.TokenID)
	} else {
		opID = s.Ledger.NextVerbID(ledger.KindDeploy, 0)
	}
	s.Ledger.Create(opID, ledger.KindDeploy, req.Name, req)

	payload := map[string]any{}
	if result.TokenID != nil {
		payload["tokenId"] = fmt.Sprintf("%d", *result.TokenID)
		payload["tokenAddress"] = result.TokenAddr
	} else {
		payload["tokenId"] = nil
		payload["tokenAddress"] = nil
	}
	s.finishAsync(w, r, opID, result.Outcome, payload)
}

// ListTokens reads a page of the factory's token registry, or — when
// ?owner= is set — every token owned by that address as one unpaginated
// page.
func (s *Server) ListTokens(w http.ResponseWriter, r *http.Request) {
	if ownerRaw := r.URL.Query().Get("owner"); ownerRaw != "" {
		owner, err := bodyAddress(ownerRaw, "owner", true)
		if err != nil {
			fail(w, r, err)
			return
		}
		tokens, err := s.Chain.GetOwnerTokens(r.Context(), owner)
		if err != nil {
			fail(w, r, err)
			return
		}
		respond(w, http.StatusOK, newPaginated(tokens, len(tokens), len(tokens), len(tokens), 0))
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	tokens, total, err := s.Chain.ListTokens(r.Context(), limit, offset)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, newPaginated(tokens, len(tokens), total, limit, offset))
}

// GetToken reads a single token's details.
func (s *Server) GetToken(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	tok, err := s.Chain.GetTokenInfo(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, Resource{Data: tok})
}

type updateMetadataRequest struct {
	MetadataURI string `json:"metadataURI"`
}

// UpdateMetadata updates a token's factory-recorded metadata URI.
func (s *Server) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req updateMetadataRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.MetadataURI == "" {
		fail(w, r, apperror.BadRequest("metadataURI is required"))
		return
	}

	outcome, err := s.Chain.UpdateMetadata(r.Context(), id, req.MetadataURI)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(ledger.KindUpdateMetadata, id)
	s.Ledger.Create(opID, ledger.KindUpdateMetadata, "", req)
	s.finishAsync(w, r, opID, outcome, map[string]any{"metadataURI": req.MetadataURI})
}

// GetBalance returns a fresh balance snapshot for (tokenId, address).
func (s *Server) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	addr, err := pathAddress(r, "address")
	if err != nil {
		fail(w, r, err)
		return
	}
	bal, err := s.Chain.GetBalance(r.Context(), id, addr)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, Resource{Data: bal})
}

type mintRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	URI    string `json:"uri"`
}

// Mint issues new units of a token to an address.
func (s *Server) Mint(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req mintRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	to, err := bodyAddress(req.To, "to", true)
	if err != nil {
		fail(w, r, err)
		return
	}
	// amount only applies to the fungible path (non-fungible mint uses uri
	// instead); the kind isn't known without an RPC call, so a syntax check
	// only runs when the caller actually sent an amount.
	if req.Amount != "" {
		if err := chain.ValidateAmountSyntax(req.Amount); err != nil {
			fail(w, r, err)
			return
		}
	}

	outcome, err := s.Chain.Mint(r.Context(), id, to, req.Amount, req.URI)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(ledger.KindMint, id)
	s.Ledger.Create(opID, ledger.KindMint, "", req)
	s.finishAsync(w, r, opID, outcome, req)
}

type burnRequest struct {
	Amount string `json:"amount"`
	UnitID uint64 `json:"unitId,string"`
}

// Burn destroys units of a token.
func (s *Server) Burn(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req burnRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Amount != "" {
		if err := chain.ValidateAmountSyntax(req.Amount); err != nil {
			fail(w, r, err)
			return
		}
	}
	outcome, err := s.Chain.Burn(r.Context(), id, req.Amount, req.UnitID)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(ledger.KindBurn, id)
	s.Ledger.Create(opID, ledger.KindBurn, "", req)
	s.finishAsync(w, r, opID, outcome, req)
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	UnitID uint64 `json:"unitId,string"`
}

// Transfer moves token units between accounts.
func (s *Server) Transfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	to, err := bodyAddress(req.To, "to", true)
	if err != nil {
		fail(w, r, err)
		return
	}
	from, err := bodyAddress(req.From, "from", false)
	if err != nil {
		fail(w, r, err)
		return
	}
	if req.Amount != "" {
		if err := chain.ValidateAmountSyntax(req.Amount); err != nil {
			fail(w, r, err)
			return
		}
	}

	outcome, err := s.Chain.Transfer(r.Context(), id, from, to, req.Amount, req.UnitID)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(ledger.KindTransfer, id)
	s.Ledger.Create(opID, ledger.KindTransfer, "", req)
	s.finishAsync(w, r, opID, outcome, req)
}

// Pause halts transfers on a fungible, pausable token.
func (s *Server) Pause(w http.ResponseWriter, r *http.Request) {
	s.pauseToggle(w, r, ledger.KindPause, s.Chain.Pause)
}

// Unpause resumes transfers on a fungible, pausable token.
func (s *Server) Unpause(w http.ResponseWriter, r *http.Request) {
	s.pauseToggle(w, r, ledger.KindUnpause, s.Chain.Unpause)
}

func (s *Server) pauseToggle(w http.ResponseWriter, r *http.Request, kind ledger.Kind, op func(ctx context.Context, id uint64) (*chain.ReceiptOutcome, error)) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	outcome, err := op(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(kind, id)
	s.Ledger.Create(opID, kind, "", nil)
	s.finishAsync(w, r, opID, outcome, nil)
}

// ListOnDex performs the post-deployment DEX-listing step for a fungible
// token.
func (s *Server) ListOnDex(w http.ResponseWriter, r *http.Request) {
	id, err := pathTokenID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	outcome, err := s.Chain.ListOnDex(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	opID := s.Ledger.NextVerbID(ledger.KindListOnDex, id)
	s.Ledger.Create(opID, ledger.KindListOnDex, "", nil)
	s.finishAsync(w, r, opID, outcome, nil)
}
