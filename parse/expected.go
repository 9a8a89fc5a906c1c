package parse

import (
	"fmt"
	"reflect"
	"strings"
)

// Expected describes what input would have been accepted where a parse failed.
// Leaves name a literal or a class of characters; ExpOneOf, ExpExcept and
// ExpObject compose them into a tree.
type Expected interface {
	fmt.Stringer
	isExpected()
}

type (
	ExpChar    rune   // a literal character
	ExpStr     string // a literal string
	ExpCharIn  string // any character of the set
	ExpNamed   string // a named character class or construct
	ExpMessage string // free-form text, used for semantic failures and context
	ExpEOI     struct{}
	ExpOneOf   []Expected
)

// ExpExcept matches what Base matches unless Not matches.
type ExpExcept struct {
	Base Expected
	Not  Expected
}

// ExpObject is a described construct with an optional inner expectation.
type ExpObject struct {
	Name  string
	Inner Expected
}

func (ExpChar) isExpected()    {}
func (ExpStr) isExpected()     {}
func (ExpCharIn) isExpected()  {}
func (ExpNamed) isExpected()   {}
func (ExpMessage) isExpected() {}
func (ExpEOI) isExpected()     {}
func (ExpOneOf) isExpected()   {}
func (ExpExcept) isExpected()  {}
func (ExpObject) isExpected()  {}

func (e ExpChar) String() string    { return fmt.Sprintf("%q", rune(e)) }
func (e ExpStr) String() string     { return fmt.Sprintf("%q", string(e)) }
func (e ExpCharIn) String() string  { return fmt.Sprintf("one of %q", string(e)) }
func (e ExpNamed) String() string   { return string(e) }
func (e ExpMessage) String() string { return string(e) }
func (ExpEOI) String() string       { return "end of input" }

func (e ExpOneOf) String() string {
	parts := make([]string, len(e))
	for i, x := range e {
		parts[i] = describe(x)
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

func (e ExpExcept) String() string {
	return describe(e.Base) + " except " + describe(e.Not)
}

func (e ExpObject) String() string {
	if e.Inner == nil {
		return e.Name
	}
	return e.Name + " (" + describe(e.Inner) + ")"
}

func describe(e Expected) string {
	if e == nil {
		return "unknown"
	}
	return e.String()
}

// MergeExpected combines two expectations into a flat one-of.
// Nested one-ofs are flattened and duplicates dropped, so the merged
// set only grows with the number of distinct leaves in the grammar.
func MergeExpected(a, b Expected) Expected {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var out ExpOneOf
	add := func(e Expected) {
		for _, x := range out {
			if reflect.DeepEqual(x, e) {
				return
			}
		}
		out = append(out, e)
	}
	for _, e := range []Expected{a, b} {
		if list, ok := e.(ExpOneOf); ok {
			for _, x := range list {
				add(x)
			}
			continue
		}
		add(e)
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
