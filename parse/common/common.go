// Package common holds small parsers most grammars need: quoted strings,
// identifiers, integers, floats and booleans.
package common

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/gobble/parse"
)

// Esc reads a backslash escape. \t, \r and \n are translated; any other
// escaped character stands for itself.
var Esc parse.Parser[rune] = parse.IgThen(parse.Char('\\'), parse.Or(
	parse.Asv(parse.Char('t'), '\t'),
	parse.Asv(parse.Char('r'), '\r'),
	parse.Asv(parse.Char('n'), '\n'),
	parse.TakeChar,
))

// Quoted reads a double-quoted string, decoding escapes with Esc.
var Quoted parse.Parser[string] = parse.IgThen(parse.Char('"'), parse.Map(
	parse.CharsUntil(parse.Or(Esc, parse.TakeChar), parse.Char('"')),
	func(t parse.Tuple2[string, rune]) string { return t.A },
))

// Ident is a letter followed by letters, digits or underscores.
var Ident parse.Parser[string] = parse.Named("identifier", parse.AsString(parse.Seq2(
	parse.Alpha.One(),
	parse.Union(parse.Alpha, parse.NumDigit, parse.Rune('_')).Star(),
)))

var digits = parse.AsString(parse.Seq2(
	parse.NumDigit.One(),
	parse.Union(parse.NumDigit, parse.Rune('_')).Star(),
))

// UInt reads an unsigned decimal integer. Underscores may separate
// digits after the first. Values that do not fit in 64 bits are rejected.
var UInt parse.Parser[uint64] = parse.Named("unsigned integer", parse.TryMap(digits, func(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, parse.Reject(parse.ExpMessage("number too big"))
	}
	return n, err
}))

// Int reads a signed decimal integer with an optional leading minus.
var Int parse.Parser[int64] = parse.Named("integer", parse.TryMap(
	parse.Seq2(parse.Maybe(parse.Char('-')), UInt),
	func(t parse.Tuple2[*rune, uint64]) (int64, error) {
		if t.A == nil {
			if t.B > math.MaxInt64 {
				return 0, parse.Reject(parse.ExpMessage("number too big"))
			}
			return int64(t.B), nil
		}
		if t.B > math.MaxInt64+1 {
			return 0, parse.Reject(parse.ExpMessage("number too small"))
		}
		return -int64(t.B - 1) - 1, nil
	},
))

// Bool reads the keywords true and false.
var Bool parse.Parser[bool] = parse.Or(
	parse.Asv(parse.Keyword("true"), true),
	parse.Asv(parse.Keyword("false"), false),
)

// Exponent reads 'e' or 'E' followed by an Int.
var Exponent parse.Parser[int64] = parse.IgThen(parse.In("eE").One(), Int)

var dotPart = parse.Seq2(parse.Char('.'), parse.Union(parse.NumDigit, parse.Rune('_')).Star())

// Float reads a decimal number with a fractional part and an optional
// exponent, such as 32., -23.4 or 123.4e-2. Plain integers are not floats.
var Float parse.Parser[float64] = parse.Named("float", parse.TryMap(
	parse.AsString(parse.Seq3(Int, dotPart, parse.Maybe(Exponent))),
	func(s string) (float64, error) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, parse.Reject(parse.ExpMessage("float out of range"))
		}
		return f, err
	},
))
