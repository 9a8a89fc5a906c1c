package json

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/gobble/parse"
)

var value parse.Parser[Value]

func init() {
	value = buildValue()
}

// Parser returns the parser for a single JSON value followed by optional
// whitespace. It does not skip leading whitespace or require the end of
// the input, so it can be embedded in other grammars.
func Parser() parse.Parser[Value] {
	return value
}

// Parse parses a complete JSON document.
func Parse(src string) (Value, error) {
	return parse.Run(document, src)
}

var document = parse.Complete(parse.IgThen(parse.WSL.SkipStar(), parse.Lazy("value", Parser)))

func lexeme[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.ThenIg(p, parse.WSL.SkipStar())
}

func as[T any](p parse.Parser[T], f func(T) Value) parse.Parser[Value] {
	return parse.Map(p, f)
}

func buildValue() parse.Parser[Value] {
	ref := parse.Lazy("value", Parser)

	array := parse.IgThen(lexeme(parse.Char('[')), parse.Brk(
		parse.SepUntil(ref, lexeme(parse.Char(',')), lexeme(parse.Char(']'))),
	))

	member := parse.Map(
		parse.Seq2(parse.ThenIg(lexeme(stringLit), lexeme(parse.Char(':'))), ref),
		func(t parse.Tuple2[string, Value]) Member { return Member{Key: t.A, Value: t.B} },
	)
	object := parse.IgThen(lexeme(parse.Char('{')), parse.Brk(
		parse.SepUntil(member, lexeme(parse.Char(',')), lexeme(parse.Char('}'))),
	))

	return lexeme(parse.Named("value", parse.Or(
		as(object, func(ms []Member) Value { return Object(ms) }),
		as(array, func(vs []Value) Value { return Array(vs) }),
		as(stringLit, func(s string) Value { return String(s) }),
		as(number, func(f float64) Value { return Number(f) }),
		parse.Asv[string, Value](parse.Keyword("true"), Bool(true)),
		parse.Asv[string, Value](parse.Keyword("false"), Bool(false)),
		parse.Asv[string, Value](parse.Keyword("null"), Null{}),
	)))
}

var (
	control = parse.NamedPred("control character", func(r rune) bool { return r < 0x20 })
	plain   = parse.Any.Except(parse.Union(parse.Rune('"'), parse.Rune('\\'), control)).One()

	hex4 = parse.TryMap(parse.TakeN(4), func(s string) (rune, error) {
		n, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, parse.RejectFatal(parse.ExpNamed("4 hex digits"))
		}
		return rune(n), nil
	})

	escape = parse.IgThen(parse.Char('\\'), parse.Or(
		parse.Char('"'),
		parse.Char('\\'),
		parse.Char('/'),
		parse.Asv(parse.Char('b'), '\b'),
		parse.Asv(parse.Char('f'), '\f'),
		parse.Asv(parse.Char('n'), '\n'),
		parse.Asv(parse.Char('r'), '\r'),
		parse.Asv(parse.Char('t'), '\t'),
		parse.IgThen(parse.Char('u'), hex4),
	))

	stringLit = parse.IgThen(parse.Char('"'), parse.Brk(parse.Map(
		parse.RepeatUntilIg(parse.Or(escape, plain), parse.Char('"')),
		decodeUTF16,
	)))

	digits1to9 = parse.In("123456789")
	number     = parse.Named("number", parse.TryMap(parse.AsString(parse.Seq4(
		parse.Maybe(parse.Char('-')),
		parse.Or(parse.Tag("0"), parse.AsString(parse.Seq2(digits1to9.One(), parse.NumDigit.Star()))),
		parse.Maybe(parse.Seq2(parse.Char('.'), parse.NumDigit.Plus())),
		parse.Maybe(parse.Seq3(parse.In("eE").One(), parse.Maybe(parse.In("+-").One()), parse.NumDigit.Plus())),
	)), func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, parse.Reject(parse.ExpMessage("number out of range"))
		}
		return f, nil
	}))
)

// decodeUTF16 joins \u escapes that form surrogate pairs. A surrogate
// without its partner becomes U+FFFD.
func decodeUTF16(rs []rune) string {
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if utf16.IsSurrogate(r) && i+1 < len(rs) {
			if d := utf16.DecodeRune(r, rs[i+1]); d != unicode.ReplacementChar {
				b.WriteRune(d)
				i++
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
