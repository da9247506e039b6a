// Package parser implements the journal grammar: transaction headers,
// amounts and symbols, account paths, and price databases.
//
// Every production has the shape
//
//	func X(c Cursor) (value, Cursor, *SyntaxError)
//
// consuming a prefix of the remaining input and returning the parsed value
// with the unconsumed remainder, or a failure carrying the furthest position
// reached. Productions compose by sequencing (early return on the first
// failure) and by choice (snapshot the cursor, try the next alternative only
// if the previous one failed without consuming anything).
package parser

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in the input, 1-based for both line and column.
type Position struct {
	Offset int // byte offset into the input
	Line   int
	Column int // runes since the start of the line
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Cursor is an immutable view into the unconsumed remainder of an input
// buffer. Advancing returns a new Cursor and leaves the original valid,
// which makes backtracking between alternatives all-or-nothing.
type Cursor struct {
	input string
	pos   Position
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input, pos: Position{Line: 1, Column: 1}}
}

// Position returns the current location without consuming anything.
func (c Cursor) Position() Position { return c.pos }

// Line returns the current 1-based line number without consuming anything.
// Header uses it to stamp the line a record starts on.
func (c Cursor) Line() int { return c.pos.Line }

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string { return c.input[c.pos.Offset:] }

func (c Cursor) atEOF() bool { return c.pos.Offset >= len(c.input) }

// peek returns the next rune without consuming it.
func (c Cursor) peek() (rune, bool) {
	if c.atEOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	return r, true
}

// next consumes a single rune, tracking line and column.
func (c Cursor) next() (rune, Cursor) {
	r, size := utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	nc := c
	nc.pos.Offset += size
	if r == '\n' {
		nc.pos.Line++
		nc.pos.Column = 1
	} else {
		nc.pos.Column++
	}
	return r, nc
}

// takeWhile consumes zero or more runes satisfying pred.
func (c Cursor) takeWhile(pred func(rune) bool) (string, Cursor) {
	nc := c
	for {
		r, ok := nc.peek()
		if !ok || !pred(r) {
			return c.input[c.pos.Offset:nc.pos.Offset], nc
		}
		_, nc = nc.next()
	}
}

// SyntaxError is the only failure kind the parser produces: the furthest
// position reached and what was expected there.
type SyntaxError struct {
	Pos      Position
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Pos, e.Expected)
}

// errExpected builds a failure at the cursor's current position.
func errExpected(c Cursor, what string) *SyntaxError {
	return &SyntaxError{Pos: c.pos, Expected: what}
}

// furthest picks the failure that progressed deepest into the input; ties go
// to the first alternative. Choice operators report with it so a branch that
// made progress before failing wins over one that failed at the start.
func furthest(a, b *SyntaxError) *SyntaxError {
	if b.Pos.Offset > a.Pos.Offset {
		return b
	}
	return a
}

// consumed reports whether err occurred past the start cursor, i.e. the
// failing production consumed input first. Such a failure commits: choice
// operators must not try another alternative after it, and optional fields
// must propagate it instead of treating the field as absent.
func consumed(start Cursor, err *SyntaxError) bool {
	return err.Pos.Offset > start.pos.Offset
}
