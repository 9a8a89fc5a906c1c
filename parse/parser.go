package parse

import "fmt"

// Unit is the value of parsers that only recognise input.
type Unit = struct{}

// Result is a successful parse: the cursor after the match, the value
// produced, and an optional hint describing what a longer match would
// have needed next. Hints only improve later error messages.
type Result[T any] struct {
	Next  Cursor
	Value T
	Hint  *Error
}

// Parser is the core abstraction. Parse must not modify shared state, so
// a parser value can be reused across calls and goroutines.
type Parser[T any] interface {
	Parse(c Cursor) (Result[T], *Error)
	// Expected describes what the parser accepts.
	Expected() Expected
}

// Func adapts an ordinary function to a Parser.
type Func[T any] func(c Cursor) (Result[T], *Error)

func (f Func[T]) Parse(c Cursor) (Result[T], *Error) {
	return f(c)
}

func (f Func[T]) Expected() Expected {
	return ExpNamed(fmt.Sprintf("%T", f))
}

// Run parses src from the beginning. Input left after the match is
// ignored; use Complete or EOI to require that all of src is consumed.
func Run[T any](p Parser[T], src string) (T, error) {
	r, err := p.Parse(NewCursor(src))
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Value, nil
}

func fail[T any](err *Error) (Result[T], *Error) {
	return Result[T]{}, err
}

func ok[T any](next Cursor, v T, hint *Error) (Result[T], *Error) {
	return Result[T]{Next: next, Value: v, Hint: hint}, nil
}

type named[T any] struct {
	name string
	p    Parser[T]
}

// Named gives p a description. When p fails without getting past its
// starting position, the error expects name instead of p's internals.
func Named[T any](name string, p Parser[T]) Parser[T] {
	return named[T]{name: name, p: p}
}

func (p named[T]) Parse(c Cursor) (Result[T], *Error) {
	r, err := p.p.Parse(c)
	if err != nil && !err.Fatal && err.Pos.Offset == c.Offset() {
		e := *err
		e.Expected = ExpNamed(p.name)
		return fail[T](&e)
	}
	return r, err
}

func (p named[T]) Expected() Expected {
	return ExpNamed(p.name)
}

type lazy[T any] struct {
	name string
	f    func() Parser[T]
}

// Lazy defers building a parser until it is used, which is how recursive
// grammars refer to themselves.
func Lazy[T any](name string, f func() Parser[T]) Parser[T] {
	return lazy[T]{name: name, f: f}
}

func (p lazy[T]) Parse(c Cursor) (Result[T], *Error) {
	return p.f().Parse(c)
}

func (p lazy[T]) Expected() Expected {
	return ExpNamed(p.name)
}

type failing[T any] struct {
	exp Expected
}

// Fail returns a parser that always fails expecting exp.
func Fail[T any](exp Expected) Parser[T] {
	return failing[T]{exp: exp}
}

func (p failing[T]) Parse(c Cursor) (Result[T], *Error) {
	return fail[T](c.Err(p.exp))
}

func (p failing[T]) Expected() Expected {
	return p.exp
}

type succeed[T any] struct {
	v T
}

// Succeed returns a parser that consumes nothing and yields v.
func Succeed[T any](v T) Parser[T] {
	return succeed[T]{v: v}
}

func (p succeed[T]) Parse(c Cursor) (Result[T], *Error) {
	return ok(c, p.v, nil)
}

func (p succeed[T]) Expected() Expected {
	return ExpNamed("nothing")
}
