package parser

// Whitespace consumes one or more space or tab characters.
func Whitespace(c Cursor) (string, Cursor, *SyntaxError) {
	return takeWhile1(c, func(r rune) bool { return r == ' ' || r == '\t' }, "whitespace")
}

// LineEnding consumes one line terminator, accepting CRLF or bare LF. Both
// forms collapse to "\n"; callers never learn which one was present.
func LineEnding(c Cursor) (string, Cursor, *SyntaxError) {
	r, ok := c.peek()
	if !ok || (r != '\r' && r != '\n') {
		return "", c, errExpected(c, "line ending")
	}
	_, nc := c.next()
	if r == '\r' {
		r2, ok := nc.peek()
		if !ok || r2 != '\n' {
			return "", c, errExpected(nc, `'\n'`)
		}
		_, nc = nc.next()
	}
	return "\n", nc, nil
}

// TwoDigits consumes exactly two ASCII digits. e.g. "17" -> 17
func TwoDigits(c Cursor) (int, Cursor, *SyntaxError) {
	tens, nc, err := digit(c)
	if err != nil {
		return 0, c, err
	}
	ones, nc, err := digit(nc)
	if err != nil {
		return 0, c, err
	}
	return tens*10 + ones, nc, nil
}

func digit(c Cursor) (int, Cursor, *SyntaxError) {
	r, ok := c.peek()
	if !ok || !isDigit(r) {
		return 0, c, errExpected(c, "digit")
	}
	_, nc := c.next()
	return int(r - '0'), nc, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// takeWhile1 consumes one or more runes satisfying pred, failing in place
// when the first rune does not match.
func takeWhile1(c Cursor, pred func(rune) bool, what string) (string, Cursor, *SyntaxError) {
	text, nc := c.takeWhile(pred)
	if text == "" {
		return "", c, errExpected(c, what)
	}
	return text, nc, nil
}

// optionalWhitespace consumes whitespace if present and reports whether any
// was found. Amount formats depend on the answer.
func optionalWhitespace(c Cursor) (bool, Cursor) {
	_, nc, err := Whitespace(c)
	if err != nil {
		return false, c
	}
	return true, nc
}
