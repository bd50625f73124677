package jupiter

import (
	"fmt"

	"github.com/shopspring/decimal"

	chain "swapgate/internal/chain/solana"
)

// ToRaw converts a human decimal amount into the token's integer base units.
// The value is scaled by 10^decimals in one step; digits beyond the token's
// precision are truncated toward zero, never rounded up, so the decoded value
// is always <= the requested one.
func ToRaw(token chain.TokenInfo, amount string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("amount %q is negative", amount)
	}
	return d.Shift(int32(token.Decimals)).Truncate(0).String(), nil
}

// ToHuman converts an integer base-unit amount back to its decimal value.
func ToHuman(token chain.TokenInfo, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse raw amount %q: %w", raw, err)
	}
	return d.Shift(-int32(token.Decimals)), nil
}
