package parse

type tag struct {
	s string
}

// Tag matches the literal string s and returns it. A mismatch is reported
// at the first character that differs.
func Tag(s string) Parser[string] {
	return tag{s: s}
}

func (p tag) Parse(c Cursor) (Result[string], *Error) {
	cur := c
	for _, want := range p.s {
		at := cur
		r, more := cur.Next()
		if !more || r != want {
			return fail[string](at.Err(ExpStr(p.s)))
		}
	}
	return ok(cur, p.s, nil)
}

func (p tag) Expected() Expected {
	return ExpStr(p.s)
}

// Char matches the single character c.
func Char(c rune) Parser[rune] {
	return OneChar(Rune(c))
}

type keyword struct {
	s string
}

// Keyword matches s only when it is not followed by a letter, digit or
// underscore, so Keyword("let") does not match the start of "letter".
func Keyword(s string) Parser[string] {
	return keyword{s: s}
}

func (p keyword) Parse(c Cursor) (Result[string], *Error) {
	r, err := tag(p).Parse(c)
	if err != nil {
		return r, err
	}
	if next, more := r.Next.Peek(); more && isWordChar(next) {
		return fail[string](r.Next.Err(p.Expected()))
	}
	return r, nil
}

func (p keyword) Expected() Expected {
	return ExpObject{Name: "keyword", Inner: ExpStr(p.s)}
}

type eoi struct{}

// EOI succeeds only at the end of the input.
var EOI Parser[Unit] = eoi{}

func (eoi) Parse(c Cursor) (Result[Unit], *Error) {
	if !c.AtEnd() {
		return fail[Unit](c.Err(ExpEOI{}))
	}
	return ok(c, Unit{}, nil)
}

func (eoi) Expected() Expected {
	return ExpEOI{}
}

// TakeN consumes exactly n characters of any kind.
func TakeN(n int) Parser[string] {
	return CharExact(Any, n)
}

// TakeChar consumes any single character.
var TakeChar = Any.One()

// Escapes maps the character after a backslash to the character it stands for.
type Escapes map[rune]rune

// StdEscapes translates \t, \r and \n.
var StdEscapes = Escapes{'t': '\t', 'r': '\r', 'n': '\n'}

type escaped struct {
	close rune
	table Escapes
}

// ReadEscaped reads up to and including the first unescaped close and
// returns the decoded text without it. A backslash followed by a key of
// table produces the mapped character; any other escaped character stands
// for itself. Running out of input first is a fatal error.
func ReadEscaped(close rune, table Escapes) Parser[string] {
	return escaped{close: close, table: table}
}

func (p escaped) Parse(c Cursor) (Result[string], *Error) {
	var out []rune
	cur := c
	for {
		at := cur
		r, more := cur.Next()
		if !more {
			return fail[string](at.Err(ExpChar(p.close)).Wrap("unterminated literal").Brk())
		}
		switch r {
		case p.close:
			return ok(cur, string(out), nil)
		case '\\':
			e, more := cur.Next()
			if !more {
				return fail[string](cur.Err(ExpNamed("escaped character")).Wrap("unterminated literal").Brk())
			}
			if m, found := p.table[e]; found {
				e = m
			}
			out = append(out, e)
		default:
			out = append(out, r)
		}
	}
}

func (p escaped) Expected() Expected {
	return ExpObject{Name: "text", Inner: ExpChar(p.close)}
}

// Spanned is a value with the positions where its match started and ended.
type Spanned[T any] struct {
	Value T
	Start Position
	End   Position
}

type withPos[T any] struct {
	p Parser[T]
}

// WithPos records where p's match starts and ends.
func WithPos[T any](p Parser[T]) Parser[Spanned[T]] {
	return withPos[T]{p: p}
}

func (p withPos[T]) Parse(c Cursor) (Result[Spanned[T]], *Error) {
	r, err := p.p.Parse(c)
	if err != nil {
		return fail[Spanned[T]](err)
	}
	return ok(r.Next, Spanned[T]{Value: r.Value, Start: c.Position(), End: r.Next.Position()}, r.Hint)
}

func (p withPos[T]) Expected() Expected {
	return p.p.Expected()
}

// CurrentPos consumes nothing and returns the current position.
var CurrentPos Parser[Position] = Func[Position](func(c Cursor) (Result[Position], *Error) {
	return ok(c, c.Position(), nil)
})
