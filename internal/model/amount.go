package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Symbol identifies a currency or security, e.g. $, US$, AAPL, "MUTF2351".
// Quoted records whether the source wrapped it in double quotes; quoted
// symbols may contain spaces and digits that bare symbols cannot.
type Symbol struct {
	Value  string
	Quoted bool
}

// String renders the symbol with its original quoting style.
func (s Symbol) String() string {
	if s.Quoted {
		return `"` + s.Value + `"`
	}
	return s.Value
}

// AmountFormat records where the symbol sat relative to the quantity and
// whether whitespace separated them. Two amounts with equal value and symbol
// but different formats are different source tokens.
type AmountFormat int

const (
	SymbolLeftNoSpace AmountFormat = iota // $5.42
	SymbolLeftWithSpace                   // $ 5.42
	SymbolRightNoSpace                    // 5.42AAPL
	SymbolRightWithSpace                  // 5.42 AAPL
)

func (f AmountFormat) String() string {
	switch f {
	case SymbolLeftNoSpace:
		return "symbol-left"
	case SymbolLeftWithSpace:
		return "symbol-left-spaced"
	case SymbolRightNoSpace:
		return "symbol-right"
	case SymbolRightWithSpace:
		return "symbol-right-spaced"
	}
	return fmt.Sprintf("AmountFormat(%d)", int(f))
}

// Amount pairs a quantity with a symbol. Value is the normalized quantity
// text: grouping commas stripped, sign and decimal point verbatim. It stays a
// string so decimal places survive exactly; use Decimal for arithmetic.
type Amount struct {
	Value  string
	Symbol Symbol
	Format AmountFormat
}

// Decimal converts the quantity text to an exact decimal. It fails on text
// the permissive quantity grammar admits but that is not a number, like
// "1.2.3".
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(a.Value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not a decimal: %w", a.Value, err)
	}
	return d, nil
}

// String reproduces the source token layout described by Format.
func (a Amount) String() string {
	switch a.Format {
	case SymbolLeftNoSpace:
		return a.Symbol.String() + a.Value
	case SymbolLeftWithSpace:
		return a.Symbol.String() + " " + a.Value
	case SymbolRightNoSpace:
		return a.Value + a.Symbol.String()
	default:
		return a.Value + " " + a.Symbol.String()
	}
}
