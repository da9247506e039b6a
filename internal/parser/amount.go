package parser

import (
	"strings"

	"github.com/wealthpulse-dev/wealthpulse/internal/model"
)

// Quantity parses a signed decimal literal and strips digit-grouping commas:
// "-1,110.38" -> "-1110.38". The result stays text on purpose — decimal
// places survive exactly and nothing is rounded through a float. The grammar
// puts no arity check on '.', so "1.2.3" is lexically accepted; conversion is
// where that surfaces (model.Amount.Decimal).
func Quantity(c Cursor) (string, Cursor, *SyntaxError) {
	var b strings.Builder
	nc := c
	if r, ok := nc.peek(); ok && r == '-' {
		b.WriteByte('-')
		_, nc = nc.next()
	}
	r, ok := nc.peek()
	if !ok || !isDigit(r) {
		return "", c, errExpected(nc, "digit")
	}
	b.WriteRune(r)
	_, nc = nc.next()
	rest, nc := nc.takeWhile(func(r rune) bool { return isDigit(r) || r == ',' || r == '.' })
	b.WriteString(strings.ReplaceAll(rest, ",", ""))
	return b.String(), nc, nil
}

// Symbol parses a currency or security identifier, quoted or bare. The
// quoted form is tried first; it admits spaces and digits that the bare form
// must exclude. An opening quote with no closing quote commits and fails.
func Symbol(c Cursor) (model.Symbol, Cursor, *SyntaxError) {
	symbol, nc, qerr := quotedSymbol(c)
	if qerr == nil {
		return symbol, nc, nil
	}
	if consumed(c, qerr) {
		return model.Symbol{}, c, qerr
	}
	symbol, nc, uerr := unquotedSymbol(c)
	if uerr != nil {
		return model.Symbol{}, c, furthest(qerr, uerr)
	}
	return symbol, nc, nil
}

func quotedSymbol(c Cursor) (model.Symbol, Cursor, *SyntaxError) {
	nc, err := expectRune(c, '"')
	if err != nil {
		return model.Symbol{}, c, err
	}
	value, nc, err := takeWhile1(nc, func(r rune) bool {
		return r != '"' && r != '\r' && r != '\n'
	}, "symbol character")
	if err != nil {
		return model.Symbol{}, c, err
	}
	nc, err = expectRune(nc, '"')
	if err != nil {
		return model.Symbol{}, c, err
	}
	return model.Symbol{Value: value, Quoted: true}, nc, nil
}

// unquotedSymbol excludes exactly the characters that would collide with the
// surrounding grammar: digits and '-' (every quantity starts with one of
// those), ';' (comments), '"' (quoted symbols), and whitespace. The exclusion
// set is what keeps Amount's two orderings mutually exclusive.
func unquotedSymbol(c Cursor) (model.Symbol, Cursor, *SyntaxError) {
	value, nc, err := takeWhile1(c, isUnquotedSymbolRune, "symbol")
	if err != nil {
		return model.Symbol{}, c, err
	}
	return model.Symbol{Value: value, Quoted: false}, nc, nil
}

func isUnquotedSymbolRune(r rune) bool {
	switch r {
	case '-', ';', '"', ' ', '\t', '\r', '\n':
		return false
	}
	return !isDigit(r)
}

// Amount parses a quantity/symbol pair in either order, recording which
// order and whether whitespace separated them. Symbol-first is tried first;
// a bare symbol can never start with a digit or '-', so digit-leading input
// only ever matches the quantity-first alternative and the priority order
// cannot misparse well-formed input. An alternative that fails after
// consuming input commits; otherwise the cursor rewinds and the other
// ordering is tried, and the furthest-progressing failure is reported.
func Amount(c Cursor) (model.Amount, Cursor, *SyntaxError) {
	amount, nc, lerr := symbolThenQuantity(c)
	if lerr == nil {
		return amount, nc, nil
	}
	if consumed(c, lerr) {
		return model.Amount{}, c, lerr
	}
	amount, nc, rerr := quantityThenSymbol(c)
	if rerr != nil {
		return model.Amount{}, c, furthest(lerr, rerr)
	}
	return amount, nc, nil
}

func symbolThenQuantity(c Cursor) (model.Amount, Cursor, *SyntaxError) {
	symbol, nc, err := Symbol(c)
	if err != nil {
		return model.Amount{}, c, err
	}
	spaced, nc := optionalWhitespace(nc)
	quantity, nc, err := Quantity(nc)
	if err != nil {
		return model.Amount{}, c, err
	}
	format := model.SymbolLeftNoSpace
	if spaced {
		format = model.SymbolLeftWithSpace
	}
	return model.Amount{Value: quantity, Symbol: symbol, Format: format}, nc, nil
}

func quantityThenSymbol(c Cursor) (model.Amount, Cursor, *SyntaxError) {
	quantity, nc, err := Quantity(c)
	if err != nil {
		return model.Amount{}, c, err
	}
	spaced, nc := optionalWhitespace(nc)
	symbol, nc, err := Symbol(nc)
	if err != nil {
		return model.Amount{}, c, err
	}
	format := model.SymbolRightNoSpace
	if spaced {
		format = model.SymbolRightWithSpace
	}
	return model.Amount{Value: quantity, Symbol: symbol, Format: format}, nc, nil
}
