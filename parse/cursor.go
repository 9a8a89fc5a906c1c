package parse

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a location in the source text.
// Line and Column are zero-based; String renders them one-based.
type Position struct {
	Offset int
	Line   int
	Column int
	End    bool // true when the position is past the last character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Cursor is a position in a source string. Cursors are values: copying
// one is the clone operation, and advancing a copy never affects the
// original. Every parser receives a Cursor and returns a new one.
type Cursor struct {
	src  string
	off  int
	line int
	col  int
}

// NewCursor returns a cursor at the start of s.
func NewCursor(s string) Cursor {
	return Cursor{src: s}
}

// Next advances past one character and returns it. At the end of the
// input it returns false and leaves the cursor unchanged.
func (c *Cursor) Next() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += size
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return r, true
}

// Peek returns the next character without consuming it.
func (c Cursor) Peek() (rune, bool) {
	r, ok := c.Next()
	return r, ok
}

// Index returns the byte offset of the next character, or false if the
// cursor is at the end of the input.
func (c Cursor) Index() (int, bool) {
	if c.off >= len(c.src) {
		return len(c.src), false
	}
	return c.off, true
}

// Offset returns the byte offset into the source.
func (c Cursor) Offset() int {
	return c.off
}

func (c Cursor) AtEnd() bool {
	return c.off >= len(c.src)
}

func (c Cursor) Position() Position {
	return Position{
		Offset: c.off,
		Line:   c.line,
		Column: c.col,
		End:    c.AtEnd(),
	}
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Source returns the complete input the cursor was created from.
func (c Cursor) Source() string {
	return c.src
}

// Since returns the text consumed between start and c.
// Both cursors must come from the same source and start must not be ahead of c.
func (c Cursor) Since(start Cursor) string {
	return c.src[start.off:c.off]
}

// Err returns an Error at the cursor's position.
func (c Cursor) Err(exp Expected) *Error {
	return &Error{
		Expected: exp,
		Pos:      c.Position(),
		Found:    snippet(c.Rest(), foundLen),
	}
}

const foundLen = 10

// snippet returns at most n bytes of s without splitting a character.
func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
