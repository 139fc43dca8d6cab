package api

import (
	"net/http"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
	"github.com/synnergy-chain/token-gateway/internal/chain"
)

type estimateFeeRequest struct {
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

func (req estimateFeeRequest) toSpec() (chain.DeploySpec, error) {
	kind, ok := chain.ParseTokenKind(req.Kind)
	if !ok {
		return chain.DeploySpec{}, apperror.BadRequest("kind must be \"Erc20\" or \"Erc721\"")
	}
	decimals := uint8(18)
	if req.Decimals != nil {
		decimals = *req.Decimals
	}
	spec := chain.DeploySpec{
		Kind:          kind,
		Name:          req.Name,
		Symbol:        req.Symbol,
		InitialSupply: req.InitialSupply,
		Decimals:      decimals,
		MetadataURI:   req.MetadataURI,
		BaseURI:       req.BaseURI,
		Burnable:      req.Burnable,
		Pausable:      req.Pausable,
		ListOnDex:     req.ListOnDex,
	}
	if kind == chain.Fungible && spec.InitialSupply == "" {
		spec.InitialSupply = "0"
	}
	return spec, nil
}

// EstimateNewFee prices a hypothetical brand-new deployment described
// entirely by the request body.
func (s *Server) EstimateNewFee(w http.ResponseWriter, r *http.Request) {
	var req estimateFeeRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Name == "" || req.Symbol == "" {
		fail(w, r, apperror.BadRequest("name and symbol are required"))
		return
	}
	spec, err := req.toSpec()
	if err != nil {
		fail(w, r, err)
		return
	}
	quote, err := s.Chain.EstimateFee(r.Context(), spec)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, Resource{Data: quote})
}

// EstimateExistingFee prices a hypothetical re-deploy of an existing
// token, built from its current on-chain parameters. A non-empty name,
// symbol, initialSupply, metadataURI or baseURI, or a decimals value, in the
// (optional) request body overrides the corresponding field read from the
// token, so a caller can price a variant without re-specifying everything.
// kind, burnable, pausable and listOnDex in the body are ignored; those
// always come from the token.
func (s *Server) EstimateExistingFee(w http.ResponseWriter, r *http.Request) {
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

	var req estimateFeeRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}

	spec := chain.DeploySpec{
		Kind:        tok.Kind,
		Name:        tok.Name,
		Symbol:      tok.Symbol,
		MetadataURI: tok.MetadataURI,
		BaseURI:     tok.MetadataURI,
		Burnable:    tok.Burnable,
		Pausable:    tok.Pausable,
		ListOnDex:   tok.ListedOnDex,
	}
	if tok.Decimals != nil {
		spec.Decimals = *tok.Decimals
	}
	spec.InitialSupply = "0"

	if req.Name != "" {
		spec.Name = req.Name
	}
	if req.Symbol != "" {
		spec.Symbol = req.Symbol
	}
	if req.InitialSupply != "" {
		spec.InitialSupply = req.InitialSupply
	}
	if req.Decimals != nil {
		spec.Decimals = *req.Decimals
	}
	if req.MetadataURI != "" {
		spec.MetadataURI = req.MetadataURI
	}
	if req.BaseURI != "" {
		spec.BaseURI = req.BaseURI
	}

	quote, err := s.Chain.EstimateFee(r.Context(), spec)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, Resource{Data: quote})
}
