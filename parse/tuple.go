package parse

// Tuples carry the values of sequenced parsers. SeqN runs its parsers in
// order exactly as nested Then calls would, merging each continuation hint
// into the next parser's failure.
type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type seq2[A, B any] struct {
	a Parser[A]
	b Parser[B]
}

func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Tuple2[A, B]] {
	return seq2[A, B]{a: a, b: b}
}

func (p seq2[A, B]) Parse(c Cursor) (Result[Tuple2[A, B]], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[Tuple2[A, B]](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[Tuple2[A, B]](err)
	}
	return ok(rb.Next, Tuple2[A, B]{A: ra.Value, B: rb.Value}, rb.Hint)
}

func (p seq2[A, B]) Expected() Expected {
	return p.a.Expected()
}

type seq3[A, B, C any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
}

func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[A, B, C]] {
	return seq3[A, B, C]{a: a, b: b, c: c}
}

func (p seq3[A, B, C]) Parse(c Cursor) (Result[Tuple3[A, B, C]], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[Tuple3[A, B, C]](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[Tuple3[A, B, C]](err)
	}
	rc, err := step(p.c, rb.Next, rb.Hint)
	if err != nil {
		return fail[Tuple3[A, B, C]](err)
	}
	return ok(rc.Next, Tuple3[A, B, C]{A: ra.Value, B: rb.Value, C: rc.Value}, rc.Hint)
}

func (p seq3[A, B, C]) Expected() Expected {
	return p.a.Expected()
}

type seq4[A, B, C, D any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
	d Parser[D]
}

func Seq4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return seq4[A, B, C, D]{a: a, b: b, c: c, d: d}
}

func (p seq4[A, B, C, D]) Parse(c Cursor) (Result[Tuple4[A, B, C, D]], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[Tuple4[A, B, C, D]](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[Tuple4[A, B, C, D]](err)
	}
	rc, err := step(p.c, rb.Next, rb.Hint)
	if err != nil {
		return fail[Tuple4[A, B, C, D]](err)
	}
	rd, err := step(p.d, rc.Next, rc.Hint)
	if err != nil {
		return fail[Tuple4[A, B, C, D]](err)
	}
	return ok(rd.Next, Tuple4[A, B, C, D]{A: ra.Value, B: rb.Value, C: rc.Value, D: rd.Value}, rd.Hint)
}

func (p seq4[A, B, C, D]) Expected() Expected {
	return p.a.Expected()
}

type seq5[A, B, C, D, E any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
	d Parser[D]
	e Parser[E]
}

func Seq5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return seq5[A, B, C, D, E]{a: a, b: b, c: c, d: d, e: e}
}

func (p seq5[A, B, C, D, E]) Parse(c Cursor) (Result[Tuple5[A, B, C, D, E]], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[Tuple5[A, B, C, D, E]](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[Tuple5[A, B, C, D, E]](err)
	}
	rc, err := step(p.c, rb.Next, rb.Hint)
	if err != nil {
		return fail[Tuple5[A, B, C, D, E]](err)
	}
	rd, err := step(p.d, rc.Next, rc.Hint)
	if err != nil {
		return fail[Tuple5[A, B, C, D, E]](err)
	}
	re, err := step(p.e, rd.Next, rd.Hint)
	if err != nil {
		return fail[Tuple5[A, B, C, D, E]](err)
	}
	return ok(re.Next, Tuple5[A, B, C, D, E]{A: ra.Value, B: rb.Value, C: rc.Value, D: rd.Value, E: re.Value}, re.Hint)
}

func (p seq5[A, B, C, D, E]) Expected() Expected {
	return p.a.Expected()
}

type seq6[A, B, C, D, E, F any] struct {
	a Parser[A]
	b Parser[B]
	c Parser[C]
	d Parser[D]
	e Parser[E]
	f Parser[F]
}

func Seq6[A, B, C, D, E, F any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E], f Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	return seq6[A, B, C, D, E, F]{a: a, b: b, c: c, d: d, e: e, f: f}
}

func (p seq6[A, B, C, D, E, F]) Parse(c Cursor) (Result[Tuple6[A, B, C, D, E, F]], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	rc, err := step(p.c, rb.Next, rb.Hint)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	rd, err := step(p.d, rc.Next, rc.Hint)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	re, err := step(p.e, rd.Next, rd.Hint)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	rf, err := step(p.f, re.Next, re.Hint)
	if err != nil {
		return fail[Tuple6[A, B, C, D, E, F]](err)
	}
	return ok(rf.Next, Tuple6[A, B, C, D, E, F]{A: ra.Value, B: rb.Value, C: rc.Value, D: rd.Value, E: re.Value, F: rf.Value}, rf.Hint)
}

func (p seq6[A, B, C, D, E, F]) Expected() Expected {
	return p.a.Expected()
}
