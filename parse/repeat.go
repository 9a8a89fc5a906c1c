package parse

import "fmt"

type repeat[T any] struct {
	p   Parser[T]
	min int
}

// Star applies p until it fails and collects the values.
func Star[T any](p Parser[T]) Parser[[]T] {
	return repeat[T]{p: p}
}

// Plus is Star requiring at least one match. With no match it fails with
// p's own error.
func Plus[T any](p Parser[T]) Parser[[]T] {
	return repeat[T]{p: p, min: 1}
}

// Repeat applies p until it fails and requires at least min matches.
// A match that consumes nothing ends the loop; it counts as often as needed
// to reach min, since p would match there again every time.
func Repeat[T any](p Parser[T], min int) Parser[[]T] {
	return repeat[T]{p: p, min: min}
}

func (p repeat[T]) Parse(c Cursor) (Result[[]T], *Error) {
	out := []T{}
	cur := c
	var hint *Error
	for {
		r, err := step(p.p, cur, hint)
		if err != nil {
			if err.Fatal {
				return fail[[]T](err)
			}
			if len(out) >= p.min {
				return ok(cur, out, err)
			}
			if len(out) == 0 && p.min == 1 {
				return fail[[]T](err)
			}
			return fail[[]T](err.Wrap(fmt.Sprintf("needed at least %d, found %d", p.min, len(out))))
		}
		out = append(out, r.Value)
		if r.Next.Offset() == cur.Offset() {
			for len(out) < p.min {
				out = append(out, r.Value)
			}
			return ok(r.Next, out, r.Hint)
		}
		cur, hint = r.Next, r.Hint
	}
}

func (p repeat[T]) Expected() Expected {
	return p.p.Expected()
}

type repeatN[T any] struct {
	p Parser[T]
	n int
}

// RepeatN applies p exactly n times.
func RepeatN[T any](p Parser[T], n int) Parser[[]T] {
	return repeatN[T]{p: p, n: n}
}

func (p repeatN[T]) Parse(c Cursor) (Result[[]T], *Error) {
	return doRepeatN(p.p, c, p.n)
}

func doRepeatN[T any](p Parser[T], c Cursor, n int) (Result[[]T], *Error) {
	out := make([]T, 0, n)
	cur := c
	var hint *Error
	for k := 0; k < n; k++ {
		r, err := step(p, cur, hint)
		if err != nil {
			return fail[[]T](err.Wrap(fmt.Sprintf("needed %d, failed at attempt %d", n, k+1)))
		}
		out = append(out, r.Value)
		cur, hint = r.Next, r.Hint
	}
	return ok(cur, out, hint)
}

func (p repeatN[T]) Expected() Expected {
	return p.p.Expected()
}

type separated[T, S any] struct {
	item   Parser[T]
	sep    Parser[S]
	minOne bool
}

// Separated parses items divided by sep. A failing sep ends the list; an
// item missing after a separator is an error. When the first item fails the
// result is an empty list, unless minOne is set.
func Separated[T, S any](item Parser[T], sep Parser[S], minOne bool) Parser[[]T] {
	return separated[T, S]{item: item, sep: sep, minOne: minOne}
}

func (p separated[T, S]) Parse(c Cursor) (Result[[]T], *Error) {
	first, err := p.item.Parse(c)
	if err != nil {
		if err.Fatal || p.minOne {
			return fail[[]T](err)
		}
		return ok(c, []T{}, err)
	}
	out := []T{first.Value}
	cur, hint := first.Next, first.Hint
	for {
		rs, serr := p.sep.Parse(cur)
		if serr != nil {
			if serr.Fatal {
				return fail[[]T](serr)
			}
			return ok(cur, out, Longer(serr, hint))
		}
		ri, ierr := step(p.item, rs.Next, rs.Hint)
		if ierr != nil {
			return fail[[]T](ierr.Wrap("missing item after separator"))
		}
		out = append(out, ri.Value)
		if ri.Next.Offset() == cur.Offset() {
			return ok(ri.Next, out, ri.Hint)
		}
		cur, hint = ri.Next, ri.Hint
	}
}

func (p separated[T, S]) Expected() Expected {
	return p.item.Expected()
}

type repeatUntil[T, U any] struct {
	item Parser[T]
	term Parser[U]
}

// RepeatUntil applies item until term matches, checking term first at
// every step. It returns the items and term's value.
func RepeatUntil[T, U any](item Parser[T], term Parser[U]) Parser[Tuple2[[]T, U]] {
	return repeatUntil[T, U]{item: item, term: term}
}

// RepeatUntilIg is RepeatUntil without term's value.
func RepeatUntilIg[T, U any](item Parser[T], term Parser[U]) Parser[[]T] {
	return Map(RepeatUntil(item, term), func(t Tuple2[[]T, U]) []T { return t.A })
}

func (p repeatUntil[T, U]) Parse(c Cursor) (Result[Tuple2[[]T, U]], *Error) {
	return doRepeatUntil(p.item, p.term, c)
}

func doRepeatUntil[T, U any](item Parser[T], term Parser[U], c Cursor) (Result[Tuple2[[]T, U]], *Error) {
	out := []T{}
	cur := c
	for {
		rt, terr := term.Parse(cur)
		if terr == nil {
			return ok(rt.Next, Tuple2[[]T, U]{A: out, B: rt.Value}, rt.Hint)
		}
		if terr.Fatal {
			return fail[Tuple2[[]T, U]](terr)
		}
		ri, ierr := item.Parse(cur)
		if ierr != nil {
			// term already failed at this position, and parsers are pure,
			// so its error stands in for the final recovery attempt.
			return fail[Tuple2[[]T, U]](Longer(ierr, terr))
		}
		if ri.Next.Offset() == cur.Offset() {
			return fail[Tuple2[[]T, U]](terr)
		}
		out = append(out, ri.Value)
		cur = ri.Next
	}
}

func (p repeatUntil[T, U]) Expected() Expected {
	return MergeExpected(p.item.Expected(), p.term.Expected())
}

type sepUntil[T, S, U any] struct {
	item Parser[T]
	sep  Parser[S]
	term Parser[U]
}

// SepUntil parses items divided by sep and closed by term, the shape of
// arrays, objects and argument lists. Neither the separators nor the
// terminator are returned. A trailing separator before term is an error,
// and so is an item and separator pair that consumes nothing.
func SepUntil[T, S, U any](item Parser[T], sep Parser[S], term Parser[U]) Parser[[]T] {
	return sepUntil[T, S, U]{item: item, sep: sep, term: term}
}

func (p sepUntil[T, S, U]) Parse(c Cursor) (Result[[]T], *Error) {
	rt, terr := p.term.Parse(c)
	if terr == nil {
		return ok(rt.Next, []T{}, rt.Hint)
	}
	if terr.Fatal {
		return fail[[]T](terr)
	}
	out := []T{}
	cur := c
	hint := terr
	for {
		start := cur
		ri, ierr := p.item.Parse(cur)
		if ierr != nil {
			if len(out) == 0 {
				return fail[[]T](Longer(ierr, hint))
			}
			return fail[[]T](ierr.Cont(hint).Wrap("missing item after separator"))
		}
		out = append(out, ri.Value)
		cur = ri.Next
		rt, terr := p.term.Parse(cur)
		if terr == nil {
			return ok(rt.Next, out, rt.Hint)
		}
		if terr.Fatal {
			return fail[[]T](terr)
		}
		rs, serr := p.sep.Parse(cur)
		if serr != nil {
			return fail[[]T](Longer(Longer(serr, terr), ri.Hint))
		}
		if rs.Next.Offset() == start.Offset() {
			return fail[[]T](Longer(Longer(terr, rs.Hint), ri.Hint))
		}
		cur, hint = rs.Next, rs.Hint
	}
}

func (p sepUntil[T, S, U]) Expected() Expected {
	return MergeExpected(p.item.Expected(), p.term.Expected())
}

type reflector[A, B, C any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
}

// Reflect parses any number of a, then b, then exactly as many c as there
// were a, like balanced brackets around a value.
func Reflect[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[[]A, B, []C]] {
	return reflector[A, B, C]{a: a, b: b, c: c}
}

func (p reflector[A, B, C]) Parse(c Cursor) (Result[Tuple3[[]A, B, []C]], *Error) {
	rl, err := doRepeatUntil(p.a, p.b, c)
	if err != nil {
		return fail[Tuple3[[]A, B, []C]](err)
	}
	rr, err := doRepeatN(p.c, rl.Next, len(rl.Value.A))
	if err != nil {
		return fail[Tuple3[[]A, B, []C]](err.Cont(rl.Hint))
	}
	return ok(rr.Next, Tuple3[[]A, B, []C]{A: rl.Value.A, B: rl.Value.B, C: rr.Value}, rr.Hint)
}

func (p reflector[A, B, C]) Expected() Expected {
	return p.a.Expected()
}
