package parser

import (
	"strconv"

	"github.com/wealthpulse-dev/wealthpulse/internal/model"
)

// Date parses a date like 2015-10-17. The year is unbounded width; month and
// day are exactly two digits. No calendar validation happens here — 2015-13-00
// parses — callers wanting stricter input use model.Date.Valid afterwards.
func Date(c Cursor) (model.Date, Cursor, *SyntaxError) {
	yearText, nc, err := takeWhile1(c, isDigit, "digit")
	if err != nil {
		return model.Date{}, c, err
	}
	nc, err = expectRune(nc, '-')
	if err != nil {
		return model.Date{}, c, err
	}
	month, nc, err := TwoDigits(nc)
	if err != nil {
		return model.Date{}, c, err
	}
	nc, err = expectRune(nc, '-')
	if err != nil {
		return model.Date{}, c, err
	}
	day, nc, err := TwoDigits(nc)
	if err != nil {
		return model.Date{}, c, err
	}
	year, _ := strconv.Atoi(yearText) // all digits, cannot fail
	return model.Date{Year: year, Month: month, Day: day}, nc, nil
}

// Status parses the clearing marker: '*' cleared, '!' uncleared.
func Status(c Cursor) (model.Status, Cursor, *SyntaxError) {
	if r, ok := c.peek(); ok {
		switch r {
		case '*':
			_, nc := c.next()
			return model.StatusCleared, nc, nil
		case '!':
			_, nc := c.next()
			return model.StatusUncleared, nc, nil
		}
	}
	return "", c, errExpected(c, "'*' or '!'")
}

// Code parses a reconciliation code like (cheque #802). The body may be
// empty: "()" yields "".
func Code(c Cursor) (string, Cursor, *SyntaxError) {
	nc, err := expectRune(c, '(')
	if err != nil {
		return "", c, err
	}
	body, nc := nc.takeWhile(func(r rune) bool { return r != '\r' && r != '\n' && r != ')' })
	nc, err = expectRune(nc, ')')
	if err != nil {
		return "", c, err
	}
	return body, nc, nil
}

// Payee parses one or more characters up to a comment marker or end of line.
// Trailing whitespace before a ';' belongs to the payee and is not trimmed.
func Payee(c Cursor) (string, Cursor, *SyntaxError) {
	return takeWhile1(c, func(r rune) bool { return r != ';' && r != '\r' && r != '\n' }, "payee")
}

// Comment parses ';' followed by the rest of the line. The ';' is dropped;
// a space right after it is kept verbatim.
func Comment(c Cursor) (string, Cursor, *SyntaxError) {
	nc, err := expectRune(c, ';')
	if err != nil {
		return "", c, err
	}
	body, nc := nc.takeWhile(func(r rune) bool { return r != '\r' && r != '\n' })
	return body, nc, nil
}

// Header parses a transaction's first line: date, status, optional code,
// payee, optional comment, with mandatory whitespace between fields. The
// line number is captured before anything is consumed, so multi-line inputs
// stamp the line the header starts on. An optional field that fails after
// consuming input — "(abc" with no ')', or a code with no whitespace after
// it — aborts the whole header at that position.
func Header(c Cursor) (model.Header, Cursor, *SyntaxError) {
	lineNumber := c.Line()

	date, nc, err := Date(c)
	if err != nil {
		return model.Header{}, c, err
	}
	_, nc, err = Whitespace(nc)
	if err != nil {
		return model.Header{}, c, err
	}
	status, nc, err := Status(nc)
	if err != nil {
		return model.Header{}, c, err
	}
	_, nc, err = Whitespace(nc)
	if err != nil {
		return model.Header{}, c, err
	}

	var code *string
	codeText, afterCode, cerr := Code(nc)
	switch {
	case cerr == nil:
		// The code's trailing whitespace is mandatory once a code is present.
		_, afterSpace, werr := Whitespace(afterCode)
		if werr != nil {
			return model.Header{}, c, werr
		}
		code = &codeText
		nc = afterSpace
	case consumed(nc, cerr):
		return model.Header{}, c, cerr
	}

	payee, nc, err := Payee(nc)
	if err != nil {
		return model.Header{}, c, err
	}

	var comment *string
	commentText, afterComment, merr := Comment(nc)
	switch {
	case merr == nil:
		comment = &commentText
		nc = afterComment
	case consumed(nc, merr):
		return model.Header{}, c, merr
	}

	return model.Header{
		LineNumber: lineNumber,
		Date:       date,
		Status:     status,
		Code:       code,
		Payee:      payee,
		Comment:    comment,
	}, nc, nil
}

// expectRune consumes exactly the given rune.
func expectRune(c Cursor, want rune) (Cursor, *SyntaxError) {
	r, ok := c.peek()
	if !ok || r != want {
		return c, errExpected(c, "'"+string(want)+"'")
	}
	_, nc := c.next()
	return nc, nil
}
