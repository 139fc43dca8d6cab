package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountWholeNumber(t *testing.T) {
	v, err := ParseAmount("1000000", 18)
	require.NoError(t, err)
	want := new(big.Int)
	want.SetString("1000000000000000000000000", 10)
	assert.Equal(t, 0, v.Cmp(want))
}

func TestParseAmountFractional(t *testing.T) {
	v, err := ParseAmount("1.5", 2)
	require.NoError(t, err)
	assert.Equal(t, "150", v.String())
}

func TestParseAmountPadsShortFraction(t *testing.T) {
	v, err := ParseAmount("1.5", 18)
	require.NoError(t, err)
	want := new(big.Int)
	want.SetString("1500000000000000000", 10)
	assert.Equal(t, 0, v.Cmp(want))
}

func TestParseAmountTruncatesExcessFraction(t *testing.T) {
	v, err := ParseAmount("1.23456", 2)
	require.NoError(t, err)
	assert.Equal(t, "123", v.String())
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	_, err := ParseAmount("not-a-number", 18)
	assert.Error(t, err)
}

func TestParseAmountRejectsNegative(t *testing.T) {
	_, err := ParseAmount("-5", 0)
	require.Error(t, err)
}

func TestValidateAmountSyntaxAcceptsDecimal(t *testing.T) {
	assert.NoError(t, ValidateAmountSyntax("1.50"))
}

func TestValidateAmountSyntaxRejectsNegative(t *testing.T) {
	assert.Error(t, ValidateAmountSyntax("-1"))
}

func TestValidateAmountSyntaxRejectsGarbage(t *testing.T) {
	assert.Error(t, ValidateAmountSyntax("abc"))
}

func TestValidateAmountSyntaxRejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateAmountSyntax(""))
}

func TestFormatAmountRoundTrip(t *testing.T) {
	atomic, err := ParseAmount("500", 18)
	require.NoError(t, err)
	assert.Equal(t, "500.0", FormatAmount(atomic, 18))
}

func TestFormatAmountTrimsTrailingZeros(t *testing.T) {
	atomic, err := ParseAmount("1.200", 3)
	require.NoError(t, err)
	assert.Equal(t, "1.2", FormatAmount(atomic, 3))
}

func TestFormatAmountZeroDecimals(t *testing.T) {
	assert.Equal(t, "42", FormatAmount(big.NewInt(42), 0))
}
