package chain

import "time"

// TokenKind is the tagged variant distinguishing the two token standards
// the gateway fronts. There is no inheritance between them — every branch
// point downstream switches on this tag explicitly.
type TokenKind uint8

const (
	// Fungible tokens are divisible, carry a decimals parameter, and
	// support mint-to-amount, burn-amount, transfer-amount, optional
	// pause, and optional DEX listing.
	Fungible TokenKind = iota
	// NonFungible tokens are indivisible, carry a base URI, and mint a
	// fresh child-unit identifier per mint call.
	NonFungible
)

// String renders the wire name used throughout the REST surface.
func (k TokenKind) String() string {
	switch k {
	case Fungible:
		return "Erc20"
	case NonFungible:
		return "Erc721"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the wire name as a JSON string.
func (k TokenKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// ParseTokenKind maps a wire kind string to its tag. ok is false for any
// string other than the two the gateway understands.
func ParseTokenKind(s string) (TokenKind, bool) {
	switch s {
	case "Erc20":
		return Fungible, true
	case "Erc721":
		return NonFungible, true
	default:
		return 0, false
	}
}

// Token is the gateway's view of a deployed child contract, as reported by
// the factory plus (for mutable fields) the child itself.
type Token struct {
	ID           uint64    `json:"tokenId,string"`
	Kind         TokenKind `json:"kind"`
	Address      string    `json:"tokenAddress"`
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Decimals     *uint8    `json:"decimals,omitempty"`
	MetadataURI  string    `json:"metadataURI"`
	CreatedAt    time.Time `json:"createdAt"`
	Burnable     bool      `json:"burnable"`
	Pausable     bool      `json:"pausable"`
	ListedOnDex  bool      `json:"listedOnDex"`
}

// Balance is a fresh per-(token, address) snapshot. Exactly one of the
// fungible or non-fungible field groups is populated, matching the tagged
// variant in the data model.
type Balance struct {
	Kind      TokenKind `json:"kind"`
	TokenID   uint64    `json:"tokenId,string"`
	Address   string    `json:"address"`
	Symbol    string    `json:"symbol"`
	Decimals  *uint8    `json:"decimals,omitempty"`
	Raw       string    `json:"raw,omitempty"`
	Formatted string    `json:"formatted,omitempty"`
	UnitCount *uint64   `json:"unitCount,omitempty"`
}

// FeeQuote is an ephemeral fee estimate, never persisted.
type FeeQuote struct {
	GasLimit             uint64 `json:"gasLimit"`
	GasPrice             string `json:"gasPrice"`
	GasPriceInDisplayUnit string `json:"gasPriceInDisplayUnit"`
	EstimatedCost        string `json:"estimatedCost"`
}
