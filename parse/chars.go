package parse

import (
	"fmt"
	"strings"
	"unicode"
)

// CharBool is a predicate over a single character together with a
// description of the characters it accepts.
type CharBool interface {
	CharBool(c rune) bool
	Expected() Expected
}

// Class is the concrete CharBool. Its methods build parsers from the
// predicate.
type Class struct {
	match func(rune) bool
	exp   Expected
}

func (cl Class) CharBool(c rune) bool {
	return cl.match(c)
}

func (cl Class) Expected() Expected {
	if cl.exp == nil {
		return ExpNamed("unknown character class")
	}
	return cl.exp
}

// Chars lifts any CharBool into a Class.
func Chars(cb CharBool) Class {
	if cl, ok := cb.(Class); ok {
		return cl
	}
	return Class{match: cb.CharBool, exp: cb.Expected()}
}

// Rune matches exactly c.
func Rune(c rune) Class {
	return Class{
		match: func(r rune) bool { return r == c },
		exp:   ExpChar(c),
	}
}

// In matches any character contained in set.
func In(set string) Class {
	return Class{
		match: func(r rune) bool { return strings.ContainsRune(set, r) },
		exp:   ExpCharIn(set),
	}
}

// Pred matches characters for which f returns true. Its expectation is
// unnamed; prefer NamedPred where errors matter.
func Pred(f func(rune) bool) Class {
	return Class{match: f}
}

func NamedPred(name string, f func(rune) bool) Class {
	return Class{match: f, exp: ExpNamed(name)}
}

// Union matches a character if any member matches.
func Union(members ...CharBool) Class {
	exp := make(ExpOneOf, len(members))
	for i, m := range members {
		exp[i] = m.Expected()
	}
	return Class{
		match: func(r rune) bool {
			for _, m := range members {
				if m.CharBool(r) {
					return true
				}
			}
			return false
		},
		exp: exp,
	}
}

// Except matches what cl matches unless other matches too.
func (cl Class) Except(other CharBool) Class {
	return Class{
		match: func(r rune) bool { return cl.match(r) && !other.CharBool(r) },
		exp:   ExpExcept{Base: cl.Expected(), Not: other.Expected()},
	}
}

func isAlpha(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHex(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isWordChar is the keyword boundary test.
func isWordChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

var (
	Alpha    = NamedPred("alphabetic", isAlpha)
	NumDigit = NamedPred("digit", isDigit)
	HexDigit = NamedPred("hex digit", isHex)
	AlphaNum = NamedPred("alphanumeric", func(c rune) bool { return isAlpha(c) || isDigit(c) })
	Any      = NamedPred("any character", func(rune) bool { return true })
	WS       = In(" \t")
	WSL      = In(" \t\r\n")
)

func (cl Class) One() Parser[rune]          { return OneChar(cl) }
func (cl Class) Star() Parser[string]       { return CharStar(cl) }
func (cl Class) Plus() Parser[string]       { return CharPlus(cl) }
func (cl Class) MinN(n int) Parser[string]  { return CharMin(cl, n) }
func (cl Class) Exact(n int) Parser[string] { return CharExact(cl, n) }
func (cl Class) SkipStar() Parser[Unit]     { return SkipMin(cl, 0) }
func (cl Class) SkipPlus() Parser[Unit]     { return SkipMin(cl, 1) }
func (cl Class) SkipMin(n int) Parser[Unit] { return SkipMin(cl, n) }
func (cl Class) SkipExact(n int) Parser[Unit] {
	return skip{run: charRun{cb: cl, min: n, exact: true}}
}

type oneChar struct {
	cb CharBool
}

// OneChar matches a single character accepted by cb.
func OneChar(cb CharBool) Parser[rune] {
	return oneChar{cb: cb}
}

func (p oneChar) Parse(c Cursor) (Result[rune], *Error) {
	next := c
	r, more := next.Next()
	if !more || !p.cb.CharBool(r) {
		return fail[rune](c.Err(p.cb.Expected()))
	}
	return ok(next, r, nil)
}

func (p oneChar) Expected() Expected {
	return p.cb.Expected()
}

// charRun consumes the longest run of characters accepted by cb. It looks
// at one character at a time and never gives characters back.
type charRun struct {
	cb    CharBool
	min   int
	exact bool
}

func CharStar(cb CharBool) Parser[string]       { return charRun{cb: cb} }
func CharPlus(cb CharBool) Parser[string]       { return charRun{cb: cb, min: 1} }
func CharMin(cb CharBool, n int) Parser[string] { return charRun{cb: cb, min: n} }

// CharExact matches exactly n characters accepted by cb, failing if fewer
// are available.
func CharExact(cb CharBool, n int) Parser[string] {
	return charRun{cb: cb, min: n, exact: true}
}

func (p charRun) Parse(c Cursor) (Result[string], *Error) {
	start := c
	n := 0
	for {
		if p.exact && n == p.min {
			return ok(c, c.Since(start), nil)
		}
		next := c
		r, more := next.Next()
		if !more || !p.cb.CharBool(r) {
			err := c.Err(p.cb.Expected())
			if n >= p.min {
				return ok(c, c.Since(start), err)
			}
			if n > 0 {
				err = err.Wrap(fmt.Sprintf("needed %d characters, found %d", p.min, n))
			}
			return fail[string](err)
		}
		c = next
		n++
	}
}

func (p charRun) Expected() Expected {
	return p.cb.Expected()
}

type skip struct {
	run charRun
}

// SkipMin consumes at least n characters accepted by cb and discards
// them. Skipping leaves no continuation hint behind.
func SkipMin(cb CharBool, n int) Parser[Unit] {
	return skip{run: charRun{cb: cb, min: n}}
}

func (p skip) Parse(c Cursor) (Result[Unit], *Error) {
	r, err := p.run.Parse(c)
	if err != nil {
		return fail[Unit](err)
	}
	return ok(r.Next, Unit{}, nil)
}

func (p skip) Expected() Expected {
	return p.run.Expected()
}
