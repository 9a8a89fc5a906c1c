// Package parse is a parser combinator library for strings.
//
// # Overview
//
// A grammar is described by combining small parsers. Primitive parsers
// match literal text or classes of characters; combinators sequence them,
// choose between them, repeat them and convert their values. The result is
// an ordinary recursive-descent parser.
//
//	ident := parse.AsString(parse.Seq2(parse.Alpha.Plus(), parse.Union(parse.AlphaNum, parse.Rune('_')).Star()))
//	call := parse.Seq2(
//	    parse.ThenIg(ident, parse.Char('(')),
//	    parse.SepUntil(ident, parse.Char(','), parse.Char(')')),
//	)
//	v, err := parse.Run(call, "loadFile1(fname,ref)")
//	// v.A == "loadFile1", v.B == []string{"fname", "ref"}
//
// # Cursors
//
// Parsers read from a Cursor, a value holding the source string, a byte
// offset and a line and column. Copying a Cursor clones it, so a parser
// that fails simply drops its copy and the caller retries from the cursor
// it still holds. That is all backtracking amounts to.
//
// # Parsers
//
// A Parser[T] returns either a Result[T] with the advanced cursor, or an
// *Error. Results may carry a Hint: the error that stopped an optional or
// repeated part of the match. When the next parser in a sequence fails,
// the hint is merged into its error, so messages read "expected ',' or ']'"
// rather than only "expected ']'". A hint stays with the sequence until a
// later parser consumes past its position.
//
// Go methods cannot introduce type parameters, so the combinators are
// functions: Then, ThenIg, IgThen, Or, Map, TryMap, Asv, Ig, Brk, Maybe
// and the SeqN family. Character classes are the exception; Class has
// methods One, Star, Plus, MinN, Exact, Except and the Skip variants.
//
// # Errors
//
// An Error records what was expected, where, and whether it is fatal.
// When Or has to choose between two failures it keeps the one that got
// further into the input and merges the expectations of failures at the
// same position. A fatal error always wins, and Or does not try further
// alternatives after one. Brk marks a parser's failures fatal once a
// prefix such as an opening quote has committed the parse.
//
//	p := parse.Or(
//	    parse.IgThen(parse.Char('"'), parse.Brk(parse.ReadEscaped('"', parse.StdEscapes))),
//	    parse.Alpha.Plus(),
//	)
//	_, err := parse.Run(p, `"unterminated`)
//	fmt.Print(err.(*parse.Error).Render(`"unterminated`))
//
// # Repetition
//
// Star, Plus, Repeat and RepeatN repeat a parser; Separated, RepeatUntil
// and SepUntil handle lists. A failing separator or terminator ends a list
// normally, but a missing item after a separator is an error. Every
// open-ended loop stops on a match that consumed nothing.
//
// # Recursion
//
// Grammars that refer to themselves use Lazy to delay building the
// recursive reference until parse time.
//
// # Thread Safety
//
// Parsers hold no mutable state. A parser value may be used from several
// goroutines at once.
package parse
