package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error reports why and where a parse failed.
//
// A Fatal error stops an enclosing Or from trying its remaining
// alternatives. Child holds the error this one adds context to.
type Error struct {
	Expected Expected
	Pos      Position
	Found    string
	Fatal    bool
	Child    *Error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Pos.String())
	b.WriteString(": ")
	b.WriteString(e.Summary())
	last := e.Pos
	for c := e.Child; c != nil; c = c.Child {
		b.WriteString(": ")
		if c.Pos != last {
			b.WriteString(c.Pos.String())
			b.WriteString(": ")
			last = c.Pos
		}
		b.WriteString(c.Summary())
	}
	return b.String()
}

// Summary describes the failure without its position or context.
func (e *Error) Summary() string {
	if msg, ok := e.Expected.(ExpMessage); ok {
		return string(msg)
	}
	return fmt.Sprintf("expected %s, found %s", describe(e.Expected), e.found())
}

func (e *Error) found() string {
	if e.Pos.End {
		return "end of input"
	}
	return fmt.Sprintf("%q", e.Found)
}

func (e *Error) Unwrap() error {
	if e.Child == nil {
		return nil
	}
	return e.Child
}

// Brk returns a copy of e marked fatal.
func (e *Error) Brk() *Error {
	c := *e
	c.Fatal = true
	return &c
}

// Wrap returns a new error carrying msg as context, with e as its child.
// The new error keeps e's position and fatal flag, so it merges
// with sibling errors exactly as e would.
func (e *Error) Wrap(msg string) *Error {
	return &Error{
		Expected: ExpMessage(msg),
		Pos:      e.Pos,
		Found:    e.Found,
		Fatal:    e.Fatal,
		Child:    e,
	}
}

// Cont merges a continuation hint left by a preceding successful parser.
func (e *Error) Cont(hint *Error) *Error {
	return Longer(e, hint)
}

// Longer picks the more informative of two errors. A fatal error beats a
// non-fatal one, then the error further into the input wins. Errors at the
// same position merge their expectations.
func Longer(a, b *Error) *Error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Fatal != b.Fatal {
		if a.Fatal {
			return a
		}
		return b
	}
	switch {
	case a.Pos.Offset > b.Pos.Offset:
		return a
	case b.Pos.Offset > a.Pos.Offset:
		return b
	}
	child := a.Child
	if child == nil {
		child = b.Child
	}
	return &Error{
		Expected: MergeExpected(a.Expected, b.Expected),
		Pos:      a.Pos,
		Found:    a.Found,
		Fatal:    a.Fatal,
		Child:    child,
	}
}

// Render formats e for humans, showing the offending line of src with a
// caret under the failing column, followed by any context errors.
func (e *Error) Render(src string) string {
	var b strings.Builder
	for c := e; c != nil; c = c.Child {
		if c != e {
			b.WriteString("caused by ")
		}
		fmt.Fprintf(&b, "error at %s: %s\n", c.Pos, c.Summary())
		if c != e && c.Pos == e.Pos {
			continue
		}
		line, col := sourceLine(src, c.Pos.Offset)
		gutter := fmt.Sprintf("%4d | ", c.Pos.Line+1)
		b.WriteString(gutter)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(gutter)-2))
		b.WriteString("| ")
		b.WriteString(strings.Repeat(" ", col))
		b.WriteString("^\n")
	}
	return b.String()
}

// sourceLine returns the line of src containing offset and the column of
// offset within it, in characters.
func sourceLine(src string, offset int) (string, int) {
	if offset > len(src) {
		offset = len(src)
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	line := strings.TrimRight(src[start:end], "\r")
	return line, utf8.RuneCountInString(src[start:offset])
}
