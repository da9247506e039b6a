package parser

import (
	"unicode"

	"github.com/wealthpulse-dev/wealthpulse/internal/model"
)

// Account parses a hierarchical account name like Expenses:Food:Groceries.
// Segments are alphanumeric (digits may lead) and joined by ':'; at least one
// segment is required, and every ':' must be followed by another segment.
func Account(c Cursor) (model.Account, Cursor, *SyntaxError) {
	segment, nc, err := subAccount(c)
	if err != nil {
		return nil, c, err
	}
	path := model.Account{segment}
	for {
		r, ok := nc.peek()
		if !ok || r != ':' {
			return path, nc, nil
		}
		_, afterColon := nc.next()
		segment, afterSegment, err := subAccount(afterColon)
		if err != nil {
			// The ':' committed us to another segment.
			return nil, c, err
		}
		path = append(path, segment)
		nc = afterSegment
	}
}

func subAccount(c Cursor) (string, Cursor, *SyntaxError) {
	alphaNum := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	return takeWhile1(c, alphaNum, "letter or digit")
}
