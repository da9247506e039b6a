package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price asserts that a symbol was worth an amount on a date.
// e.g. P 2015-10-25 "MUTF2351" $5.42
type Price struct {
	Date   Date
	Symbol Symbol
	Amount Amount
}

// PriceDatabase is a sequence of prices in file order.
type PriceDatabase []Price

// Latest returns the last record for symbol in file order.
func (db PriceDatabase) Latest(symbol string) (Price, bool) {
	for i := len(db) - 1; i >= 0; i-- {
		if db[i].Symbol.Value == symbol {
			return db[i], true
		}
	}
	return Price{}, false
}

// Symbols returns each priced symbol once, in order of first appearance.
func (db PriceDatabase) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, p := range db {
		if !seen[p.Symbol.Value] {
			seen[p.Symbol.Value] = true
			symbols = append(symbols, p.Symbol.Value)
		}
	}
	return symbols
}

// Change returns the exact difference between the last and first recorded
// price for symbol.
func (db PriceDatabase) Change(symbol string) (decimal.Decimal, error) {
	var first, last *Price
	for i := range db {
		if db[i].Symbol.Value != symbol {
			continue
		}
		if first == nil {
			first = &db[i]
		}
		last = &db[i]
	}
	if first == nil {
		return decimal.Decimal{}, fmt.Errorf("no prices recorded for %q", symbol)
	}
	firstVal, err := first.Amount.Decimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	lastVal, err := last.Amount.Decimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return lastVal.Sub(firstVal), nil
}
