package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/synnergy-chain/token-gateway/internal/apperror"
)

// ValidateAmountSyntax checks that s is a well-formed, non-negative decimal
// amount string without needing a token's decimals. Handlers call this
// before any RPC round-trip so a malformed amount (e.g. "abc" or "-5")
// produces 400 BadRequest without ever reaching C2, per spec §4.5.
func ValidateAmountSyntax(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return apperror.BadRequest("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return apperror.BadRequest(fmt.Sprintf("amount %q must not be negative", s))
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	for _, c := range whole + frac {
		if c < '0' || c > '9' {
			return apperror.BadRequest(fmt.Sprintf("amount %q is not a valid decimal number", s))
		}
	}
	return nil
}

// ParseAmount converts a decimal display-unit string (e.g. "1.5") into the
// atomic integer amount for a token with the given decimals, truncating any
// fractional digits beyond decimals rather than rounding — per spec §4.2,
// amounts crossing the API boundary are decimal strings converted via
// (value × 10^decimals) with truncation of extraneous precision. Binary
// floating point is deliberately never used in this path.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	if err := ValidateAmountSyntax(s); err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) > int(decimals) {
		frac = frac[:decimals] // truncate extraneous precision
	}
	for len(frac) < int(decimals) {
		frac += "0"
	}

	digits := whole + frac
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	atomic, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, apperror.BadRequest(fmt.Sprintf("amount %q could not be converted to an atomic value", s))
	}
	return atomic, nil
}

// FormatAmount converts an atomic integer amount back into a decimal
// display-unit string, normalising trailing fractional zeros away. When
// decimals > 0 a single ".0" is kept, so a round-tripped "500" becomes
// "500.0" rather than "500.000...0".
func FormatAmount(atomic *big.Int, decimals uint8) string {
	s := atomic.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for len(s) <= int(decimals) {
		s = "0" + s
	}
	cut := len(s) - int(decimals)
	whole, frac := s[:cut], s[cut:]
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	out := whole
	if frac != "" {
		out += "." + frac
	} else if decimals > 0 {
		out += ".0"
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out
}
