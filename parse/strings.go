package parse

import "strings"

type asString[T any] struct {
	p Parser[T]
}

// AsString discards p's value and returns the source text p consumed.
func AsString[T any](p Parser[T]) Parser[string] {
	return asString[T]{p: p}
}

func (p asString[T]) Parse(c Cursor) (Result[string], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[string](err)
	}
	return ok(r.Next, r.Next.Since(c), r.Hint)
}

func (p asString[T]) Expected() Expected {
	return p.p.Expected()
}

// String2 concatenates the strings produced by a and b.
func String2(a, b Parser[string]) Parser[string] {
	return Map(Seq2(a, b), func(t Tuple2[string, string]) string { return t.A + t.B })
}

// CharsUntil collects the characters produced by p until term matches.
func CharsUntil[U any](p Parser[rune], term Parser[U]) Parser[Tuple2[string, U]] {
	return Map(RepeatUntil(p, term), func(t Tuple2[[]rune, U]) Tuple2[string, U] {
		return Tuple2[string, U]{A: string(t.A), B: t.B}
	})
}

type stringsUntil[U any] struct {
	p    Parser[string]
	term Parser[U]
	min  int
}

// StringsPlusUntil joins the strings produced by p until term matches.
// p must match at least once before term is tried.
func StringsPlusUntil[U any](p Parser[string], term Parser[U]) Parser[Tuple2[string, U]] {
	return stringsUntil[U]{p: p, term: term, min: 1}
}

func (p stringsUntil[U]) Parse(c Cursor) (Result[Tuple2[string, U]], *Error) {
	var b strings.Builder
	cur := c
	for done := 0; ; done++ {
		var terr *Error
		if done >= p.min {
			rt, err := p.term.Parse(cur)
			if err == nil {
				return ok(rt.Next, Tuple2[string, U]{A: b.String(), B: rt.Value}, rt.Hint)
			}
			terr = err
		}
		r, err := p.p.Parse(cur)
		if err != nil {
			return fail[Tuple2[string, U]](Longer(err, terr))
		}
		if r.Next.Offset() == cur.Offset() && done >= p.min {
			return fail[Tuple2[string, U]](terr)
		}
		b.WriteString(r.Value)
		cur = r.Next
	}
}

func (p stringsUntil[U]) Expected() Expected {
	return p.p.Expected()
}
