package model

import (
	"fmt"
	"time"
)

// Status is the clearing state of a transaction.
type Status string

const (
	StatusCleared   Status = "cleared"   // '*'
	StatusUncleared Status = "uncleared" // '!'
)

// Date is a calendar date as written in the journal. The grammar does not
// range-check month or day — 2015-13-00 parses — so callers that care must
// use Valid as a post-parse check.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid reports whether the date names a real calendar day. The parser never
// calls this; it is an opt-in check for callers that want stricter input
// than the journal grammar requires.
func (d Date) Valid() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d out of range in %s", d.Month, d)
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Day() != d.Day || int(t.Month()) != d.Month {
		return fmt.Errorf("day %d out of range in %s", d.Day, d)
	}
	return nil
}

// Header is the first line of a transaction: date, clearing status, optional
// reconciliation code, payee, optional comment. Code and Comment are nil when
// absent; an empty code "()" is present-with-empty-text, not nil.
type Header struct {
	LineNumber int // 1-based line the header starts on
	Date       Date
	Status     Status
	Code       *string
	Payee      string
	Comment    *string
}
