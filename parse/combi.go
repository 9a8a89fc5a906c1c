package parse

import (
	"errors"
)

// Then runs a and then b, returning both values.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[Tuple2[A, B]] {
	return Seq2(a, b)
}

type thenIg[A, B any] struct {
	a Parser[A]
	b Parser[B]
}

// ThenIg runs a and then b, keeping only a's value.
func ThenIg[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return thenIg[A, B]{a: a, b: b}
}

func (p thenIg[A, B]) Parse(c Cursor) (Result[A], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[A](err)
	}
	rb, err := step(p.b, ra.Next, ra.Hint)
	if err != nil {
		return fail[A](err)
	}
	return ok(rb.Next, ra.Value, rb.Hint)
}

func (p thenIg[A, B]) Expected() Expected {
	return p.a.Expected()
}

type igThen[A, B any] struct {
	a Parser[A]
	b Parser[B]
}

// IgThen runs a and then b, keeping only b's value.
func IgThen[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return igThen[A, B]{a: a, b: b}
}

func (p igThen[A, B]) Parse(c Cursor) (Result[B], *Error) {
	ra, err := p.a.Parse(c)
	if err != nil {
		return fail[B](err)
	}
	return step(p.b, ra.Next, ra.Hint)
}

func (p igThen[A, B]) Expected() Expected {
	return p.a.Expected()
}

// Middle runs a, b and c in order and keeps b's value.
func Middle[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[B] {
	return ThenIg(IgThen(a, b), c)
}

// step runs p at c, merging the hint left by the previous parser into a
// failure. On success the old hint is kept as long as p did not get past it.
func step[T any](p Parser[T], c Cursor, hint *Error) (Result[T], *Error) {
	r, err := p.Parse(c)
	if err != nil {
		return fail[T](err.Cont(hint))
	}
	if hint != nil && hint.Pos.Offset >= r.Next.Offset() {
		r.Hint = Longer(r.Hint, hint)
	}
	return r, nil
}

type or[T any] struct {
	a, b Parser[T]
}

// Or tries each parser in order at the same position and returns the first
// success. A fatal failure is returned at once without trying the rest.
// When every alternative fails the errors are merged with Longer.
func Or[T any](a, b Parser[T], more ...Parser[T]) Parser[T] {
	p := Parser[T](or[T]{a: a, b: b})
	for _, m := range more {
		p = or[T]{a: p, b: m}
	}
	return p
}

func (p or[T]) Parse(c Cursor) (Result[T], *Error) {
	ra, ea := p.a.Parse(c)
	if ea == nil {
		return ra, nil
	}
	if ea.Fatal {
		return fail[T](ea)
	}
	rb, eb := p.b.Parse(c)
	if eb == nil {
		rb.Hint = Longer(rb.Hint, ea)
		return rb, nil
	}
	if eb.Fatal {
		return fail[T](eb)
	}
	return fail[T](Longer(ea, eb))
}

func (p or[T]) Expected() Expected {
	return MergeExpected(p.a.Expected(), p.b.Expected())
}

type mapped[A, B any] struct {
	p Parser[A]
	f func(A) B
}

// Map converts the value of a successful parse.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return mapped[A, B]{p: p, f: f}
}

func (p mapped[A, B]) Parse(c Cursor) (Result[B], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[B](err)
	}
	return ok(r.Next, p.f(r.Value), r.Hint)
}

func (p mapped[A, B]) Expected() Expected {
	return p.p.Expected()
}

// Rejection is returned by TryMap functions to reject a value with a
// specific expectation.
type Rejection struct {
	Expected Expected
	Fatal    bool
}

func (r *Rejection) Error() string {
	return "expected " + describe(r.Expected)
}

// Reject returns an error that makes TryMap fail expecting exp.
func Reject(exp Expected) error {
	return &Rejection{Expected: exp}
}

// RejectFatal is Reject with the fatal flag set.
func RejectFatal(exp Expected) error {
	return &Rejection{Expected: exp, Fatal: true}
}

type tryMapped[A, B any] struct {
	p Parser[A]
	f func(A) (B, error)
}

// TryMap converts the value of a successful parse with a function that may
// reject it. The failure is reported at the position after the match.
// A *Rejection supplies the expectation and fatal flag; any other error
// becomes an ExpMessage.
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return tryMapped[A, B]{p: p, f: f}
}

func (p tryMapped[A, B]) Parse(c Cursor) (Result[B], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[B](err)
	}
	v, ferr := p.f(r.Value)
	if ferr != nil {
		var rej *Rejection
		if errors.As(ferr, &rej) {
			e := r.Next.Err(rej.Expected)
			e.Fatal = rej.Fatal
			return fail[B](e)
		}
		return fail[B](r.Next.Err(ExpMessage(ferr.Error())))
	}
	return ok(r.Next, v, r.Hint)
}

func (p tryMapped[A, B]) Expected() Expected {
	return p.p.Expected()
}

// Asv replaces the value of p with v.
func Asv[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Ig discards the value of p.
func Ig[A any](p Parser[A]) Parser[Unit] {
	return Asv(p, Unit{})
}

type brk[T any] struct {
	p Parser[T]
}

// Brk marks every failure of p as fatal, so an enclosing Or reports it
// instead of trying other alternatives. Use it once a prefix has committed
// the parse to one branch.
func Brk[T any](p Parser[T]) Parser[T] {
	return brk[T]{p: p}
}

func (p brk[T]) Parse(c Cursor) (Result[T], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[T](err.Brk())
	}
	return r, nil
}

func (p brk[T]) Expected() Expected {
	return p.p.Expected()
}

type maybe[T any] struct {
	p Parser[T]
}

// Maybe makes p optional. When p fails without being fatal, Maybe succeeds
// with nil and keeps the failure as the continuation hint.
func Maybe[T any](p Parser[T]) Parser[*T] {
	return maybe[T]{p: p}
}

func (p maybe[T]) Parse(c Cursor) (Result[*T], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		if err.Fatal {
			return fail[*T](err)
		}
		return ok[*T](c, nil, err)
	}
	v := r.Value
	return ok(r.Next, &v, r.Hint)
}

func (p maybe[T]) Expected() Expected {
	return p.p.Expected()
}

type peek[T any] struct {
	p Parser[T]
}

// Peek runs p but does not consume the input it matched.
func Peek[T any](p Parser[T]) Parser[T] {
	return peek[T]{p: p}
}

func (p peek[T]) Parse(c Cursor) (Result[T], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[T](err)
	}
	return ok(c, r.Value, nil)
}

func (p peek[T]) Expected() Expected {
	return p.p.Expected()
}

// Spaced surrounds p with optional spaces and tabs.
func Spaced[T any](p Parser[T]) Parser[T] {
	return Middle(WS.SkipStar(), p, WS.SkipStar())
}

// SpacedNL surrounds p with optional whitespace including newlines.
func SpacedNL[T any](p Parser[T]) Parser[T] {
	return Middle(WSL.SkipStar(), p, WSL.SkipStar())
}

// Complete requires p to consume the whole input.
func Complete[T any](p Parser[T]) Parser[T] {
	return ThenIg(p, EOI)
}
