package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpulse-dev/wealthpulse/internal/model"
)

func TestQuantityNegativeNoFractionalPart(t *testing.T) {
	quantity, _, err := Quantity(NewCursor("-1110"))
	require.Nil(t, err)
	assert.Equal(t, "-1110", quantity)
}

func TestQuantityStripsGroupingCommas(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2,314", "2314"},
		{"-1,110.38", "-1110.38"},
		{"24521.793", "24521.793"},
		{"13,245.00", "13245.00"},
	}
	for _, tt := range tests {
		quantity, rest, err := Quantity(NewCursor(tt.input))
		require.Nil(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, quantity, "input %q", tt.input)
		assert.Empty(t, rest.Rest())
	}
}

func TestQuantityNormalizationIsIdempotent(t *testing.T) {
	quantity, _, err := Quantity(NewCursor("-1,110.38"))
	require.Nil(t, err)

	again, _, err := Quantity(NewCursor(quantity))
	require.Nil(t, err)
	assert.Equal(t, quantity, again, "stripped separators never reappear")
}

func TestQuantityAcceptsMultipleDots(t *testing.T) {
	// No arity check on '.': the grammar is deliberately permissive here.
	quantity, _, err := Quantity(NewCursor("1.2.3"))
	require.Nil(t, err)
	assert.Equal(t, "1.2.3", quantity)
}

func TestQuantityEmptyIsError(t *testing.T) {
	_, _, err := Quantity(NewCursor(""))
	require.Error(t, err)
	assert.Equal(t, "digit", err.Expected)
}

func TestQuantityBareMinusIsError(t *testing.T) {
	_, _, err := Quantity(NewCursor("-x"))
	require.Error(t, err)
	assert.Equal(t, 1, err.Pos.Offset, "fails after the sign, where a digit belongs")
}

func TestQuantityStopsAtSymbol(t *testing.T) {
	quantity, rest, err := Quantity(NewCursor("13,245.463AAPL"))
	require.Nil(t, err)
	assert.Equal(t, "13245.463", quantity)
	assert.Equal(t, "AAPL", rest.Rest())
}

func TestQuotedSymbol(t *testing.T) {
	symbol, _, err := Symbol(NewCursor(`"MUTF2351"`))
	require.Nil(t, err)
	assert.Equal(t, model.Symbol{Value: "MUTF2351", Quoted: true}, symbol)
}

func TestUnquotedSymbolJustSymbol(t *testing.T) {
	symbol, _, err := Symbol(NewCursor("$"))
	require.Nil(t, err)
	assert.Equal(t, model.Symbol{Value: "$", Quoted: false}, symbol)
}

func TestUnquotedSymbolSymbolAndLetters(t *testing.T) {
	symbol, _, err := Symbol(NewCursor("US$"))
	require.Nil(t, err)
	assert.Equal(t, model.Symbol{Value: "US$", Quoted: false}, symbol)
}

func TestUnquotedSymbolJustLetters(t *testing.T) {
	symbol, _, err := Symbol(NewCursor("AAPL"))
	require.Nil(t, err)
	assert.Equal(t, model.Symbol{Value: "AAPL", Quoted: false}, symbol)
}

func TestUnquotedSymbolStopsAtDigit(t *testing.T) {
	// Digits are excluded so bare symbols never swallow a quantity.
	symbol, rest, err := Symbol(NewCursor("A1"))
	require.Nil(t, err)
	assert.Equal(t, "A", symbol.Value)
	assert.Equal(t, "1", rest.Rest())
}

func TestSymbolEmptyIsError(t *testing.T) {
	_, _, err := Symbol(NewCursor(""))
	require.Error(t, err)
}

func TestUnterminatedQuotedSymbolCommits(t *testing.T) {
	// The opening quote commits to the quoted form; the bare form is not
	// tried as a fallback.
	_, _, err := Symbol(NewCursor(`"MUTF2351`))
	require.Error(t, err)
	assert.Equal(t, "'\"'", err.Expected)
	assert.Equal(t, 9, err.Pos.Offset)
}

func TestAmountFormats(t *testing.T) {
	tests := []struct {
		input  string
		value  string
		symbol model.Symbol
		format model.AmountFormat
	}{
		{"$13,245.00", "13245.00", model.Symbol{Value: "$"}, model.SymbolLeftNoSpace},
		{"$ 13,245.00", "13245.00", model.Symbol{Value: "$"}, model.SymbolLeftWithSpace},
		{"13,245.463AAPL", "13245.463", model.Symbol{Value: "AAPL"}, model.SymbolRightNoSpace},
		{`13,245.463 "MUTF2351"`, "13245.463", model.Symbol{Value: "MUTF2351", Quoted: true}, model.SymbolRightWithSpace},
	}
	for _, tt := range tests {
		amount, rest, err := Amount(NewCursor(tt.input))
		require.Nil(t, err, "input %q", tt.input)
		assert.Equal(t, tt.value, amount.Value, "input %q", tt.input)
		assert.Equal(t, tt.symbol, amount.Symbol, "input %q", tt.input)
		assert.Equal(t, tt.format, amount.Format, "input %q", tt.input)
		assert.Empty(t, rest.Rest(), "input %q", tt.input)
	}
}

func TestAmountNegativeQuantity(t *testing.T) {
	amount, _, err := Amount(NewCursor("$-1,110.38"))
	require.Nil(t, err)
	assert.Equal(t, "-1110.38", amount.Value)
	assert.Equal(t, model.SymbolLeftNoSpace, amount.Format)
}

func TestAmountRoundTripsThroughString(t *testing.T) {
	for _, input := range []string{"$13245.00", "$ 13245.00", "13245.463AAPL", `13245.463 "MUTF2351"`} {
		amount, _, err := Amount(NewCursor(input))
		require.Nil(t, err, "input %q", input)
		assert.Equal(t, input, amount.String(), "format metadata must reproduce the token")
	}
}

func TestAmountFailureInsideQuantityIsReported(t *testing.T) {
	// Matches the symbol-first prefix, then dies inside the quantity: the
	// reported position is the quantity's, not the start of the amount.
	_, _, err := Amount(NewCursor("$-banana"))
	require.Error(t, err)
	assert.Equal(t, "digit", err.Expected)
	assert.Equal(t, 2, err.Pos.Offset)
	assert.Equal(t, 3, err.Pos.Column)
}

func TestAmountEmptyIsError(t *testing.T) {
	_, _, err := Amount(NewCursor(""))
	require.Error(t, err)
	assert.Equal(t, 0, err.Pos.Offset)
}

func TestAmountQuantityAloneIsError(t *testing.T) {
	// A quantity with no symbol matches neither ordering.
	_, _, err := Amount(NewCursor("13,245.00"))
	require.Error(t, err)
	assert.Equal(t, 9, err.Pos.Offset, "quantity consumed, then a symbol is required")
}
