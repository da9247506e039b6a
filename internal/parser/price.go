package parser

import (
	"github.com/wealthpulse-dev/wealthpulse/internal/model"
)

// Price parses a historical price record:
//
//	P 2015-10-25 "MUTF2351" $5.42
//
// in that fixed order, with mandatory whitespace between fields.
func Price(c Cursor) (model.Price, Cursor, *SyntaxError) {
	nc, err := expectRune(c, 'P')
	if err != nil {
		return model.Price{}, c, err
	}
	_, nc, err = Whitespace(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	date, nc, err := Date(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	_, nc, err = Whitespace(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	symbol, nc, err := Symbol(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	_, nc, err = Whitespace(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	amount, nc, err := Amount(nc)
	if err != nil {
		return model.Price{}, c, err
	}
	return model.Price{Date: date, Symbol: symbol, Amount: amount}, nc, nil
}

// PriceDatabase parses zero or more price records separated by single line
// endings. Empty input yields an empty database. A first record that fails
// without consuming anything ends the sequence and hands the remainder back
// untouched; once a separator has been consumed the next record is committed,
// so a trailing line ending with nothing after it is a syntax error.
func PriceDatabase(c Cursor) (model.PriceDatabase, Cursor, *SyntaxError) {
	first, nc, err := Price(c)
	if err != nil {
		if consumed(c, err) {
			return nil, c, err
		}
		return model.PriceDatabase{}, c, nil
	}
	db := model.PriceDatabase{first}
	for {
		_, afterSep, serr := LineEnding(nc)
		if serr != nil {
			if consumed(nc, serr) {
				// A bare '\r' with no '\n'.
				return nil, nc, serr
			}
			return db, nc, nil
		}
		record, afterRecord, perr := Price(afterSep)
		if perr != nil {
			return nil, nc, perr
		}
		db = append(db, record)
		nc = afterRecord
	}
}
