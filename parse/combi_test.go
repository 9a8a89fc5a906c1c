package parse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencing(t *testing.T) {
	r, err := Then(Tag("a"), Tag("b")).Parse(NewCursor("abc"))
	require.Nil(t, err)
	assert.Equal(t, Tuple2[string, string]{A: "a", B: "b"}, r.Value)
	assert.Equal(t, 2, r.Next.Offset())

	v, rerr := Run(ThenIg(Alpha.Plus(), Char(';')), "abc;")
	require.NoError(t, rerr)
	assert.Equal(t, "abc", v)

	v, rerr = Run(IgThen(Char('$'), Alpha.Plus()), "$home")
	require.NoError(t, rerr)
	assert.Equal(t, "home", v)

	v, rerr = Run(Middle(Char('('), Alpha.Plus(), Char(')')), "(x)")
	require.NoError(t, rerr)
	assert.Equal(t, "x", v)

	v, rerr = Run(Spaced(Alpha.Plus()), "   \t  doggo  ")
	require.NoError(t, rerr)
	assert.Equal(t, "doggo", v)
}

func TestSequenceMergesHint(t *testing.T) {
	_, err := Then(Alpha.Star(), Char(';')).Parse(NewCursor("ab1"))
	require.NotNil(t, err)
	assert.Equal(t, 2, err.Pos.Offset)
	assert.Equal(t, ExpOneOf{ExpChar(';'), ExpNamed("alphabetic")}, err.Expected)
	assert.Equal(t, `1:3: expected ';' or alphabetic, found "1"`, err.Error())
}

func TestSequenceKeepsFurtherHint(t *testing.T) {
	product := Seq2(NumDigit.Plus(), Star(IgThen(Char('*'), NumDigit.Plus())))
	sum := Seq2(product, Star(IgThen(Char('+'), product)))

	r, err := sum.Parse(NewCursor("2*"))
	require.Nil(t, err)
	assert.Equal(t, 1, r.Next.Offset())
	require.NotNil(t, r.Hint)
	assert.Equal(t, 2, r.Hint.Pos.Offset)

	_, rerr := Run(Complete(sum), "2*")
	var perr *Error
	require.ErrorAs(t, rerr, &perr)
	assert.Equal(t, 2, perr.Pos.Offset)
	assert.Equal(t, ExpNamed("digit"), perr.Expected)
}

func TestSequenceDropsPassedHint(t *testing.T) {
	r, err := Seq2(Maybe(Char('-')), NumDigit.Plus()).Parse(NewCursor("5"))
	require.Nil(t, err)
	require.NotNil(t, r.Hint)
	assert.Equal(t, 1, r.Hint.Pos.Offset)
	assert.Equal(t, ExpNamed("digit"), r.Hint.Expected)
}

func TestOr(t *testing.T) {
	tests := map[string]struct {
		parser Parser[string]
		input  string
		want   string
		offset int
		exp    Expected
	}{
		"left bias": {
			parser: Or(Tag("ab"), Tag("a")),
			input:  "ab",
			want:   "ab",
		},
		"second succeeds": {
			parser: Or(Tag("x"), Tag("a")),
			input:  "ab",
			want:   "a",
		},
		"furthest failure wins": {
			parser: Or(Tag("hello!"), Tag("hex")),
			input:  "hellox",
			offset: 5,
			exp:    ExpStr("hello!"),
		},
		"tie merges": {
			parser: Or(Tag("a"), Tag("b"), Tag("c")),
			input:  "d",
			offset: 0,
			exp:    ExpOneOf{ExpStr("a"), ExpStr("b"), ExpStr("c")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := tt.parser.Parse(NewCursor(tt.input))
			if tt.exp != nil {
				require.NotNil(t, err)
				assert.Equal(t, tt.offset, err.Pos.Offset)
				assert.Equal(t, tt.exp, err.Expected)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.want, r.Value)
		})
	}
}

func TestOrFatalShortCircuit(t *testing.T) {
	never := Func[string](func(c Cursor) (Result[string], *Error) {
		t.Fatal("alternative after a fatal failure must not run")
		return fail[string](nil)
	})

	_, err := Or(Brk(Tag("x")), never).Parse(NewCursor("y"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
	assert.Equal(t, ExpStr("x"), err.Expected)
}

func TestOrFatalBeatsFurther(t *testing.T) {
	_, err := Or(Tag("abc"), Brk(Tag("x"))).Parse(NewCursor("abz"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
	assert.Equal(t, 0, err.Pos.Offset)
}

func TestOrKeepsLoserAsHint(t *testing.T) {
	r, err := Or(Tag("ab"), Tag("a")).Parse(NewCursor("ac"))
	require.Nil(t, err)
	require.NotNil(t, r.Hint)
	assert.Equal(t, 1, r.Hint.Pos.Offset)
	assert.Equal(t, ExpStr("ab"), r.Hint.Expected)
}

func TestMapAndAsv(t *testing.T) {
	n, err := Run(Map(NumDigit.Plus(), func(s string) int { return len(s) }), "1234x")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	b, err := Run(Asv(Tag("yes"), true), "yes")
	require.NoError(t, err)
	assert.True(t, b)

	u, err := Run(Ig(Tag("x")), "x")
	require.NoError(t, err)
	assert.Equal(t, Unit{}, u)
}

func TestTryMap(t *testing.T) {
	small := TryMap(NumDigit.Plus(), func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		if n > 100 {
			return 0, Reject(ExpMessage("number up to 100"))
		}
		if n == 13 {
			return 0, RejectFatal(ExpMessage("unlucky number"))
		}
		if n == 0 {
			return 0, errors.New("zero is not allowed")
		}
		return n, nil
	})

	tests := map[string]struct {
		input string
		want  int
		exp   Expected
		fatal bool
	}{
		"accepted":  {input: "42x", want: 42},
		"rejected":  {input: "500x", exp: ExpMessage("number up to 100")},
		"fatal":     {input: "13", exp: ExpMessage("unlucky number"), fatal: true},
		"plain err": {input: "0", exp: ExpMessage("zero is not allowed")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := small.Parse(NewCursor(tt.input))
			if tt.exp == nil {
				require.Nil(t, err)
				assert.Equal(t, tt.want, r.Value)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.exp, err.Expected)
			assert.Equal(t, tt.fatal, err.Fatal)
		})
	}

	_, err := small.Parse(NewCursor("500x"))
	require.NotNil(t, err)
	assert.Equal(t, 3, err.Pos.Offset, "rejection is reported after the match")
}

func TestMaybe(t *testing.T) {
	r, err := Maybe(Tag("-")).Parse(NewCursor("5"))
	require.Nil(t, err)
	assert.Nil(t, r.Value)
	assert.Equal(t, 0, r.Next.Offset())
	require.NotNil(t, r.Hint)
	assert.Equal(t, ExpStr("-"), r.Hint.Expected)

	r, err = Maybe(Tag("-")).Parse(NewCursor("-5"))
	require.Nil(t, err)
	require.NotNil(t, r.Value)
	assert.Equal(t, "-", *r.Value)

	_, err = Maybe(Brk(Tag("-"))).Parse(NewCursor("5"))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
}

func TestPeek(t *testing.T) {
	r, err := Peek(Tag("ab")).Parse(NewCursor("abc"))
	require.Nil(t, err)
	assert.Equal(t, "ab", r.Value)
	assert.Equal(t, 0, r.Next.Offset())
}

func TestComplete(t *testing.T) {
	_, err := Run(Complete(Alpha.Plus()), "abc")
	assert.NoError(t, err)

	_, err = Run(Complete(Alpha.Plus()), "abc1")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ExpOneOf{ExpEOI{}, ExpNamed("alphabetic")}, perr.Expected)
}

func TestNamed(t *testing.T) {
	number := Named("number", NumDigit.Plus())

	_, err := number.Parse(NewCursor("x"))
	require.NotNil(t, err)
	assert.Equal(t, ExpNamed("number"), err.Expected)

	v, rerr := Run(number, "12")
	require.NoError(t, rerr)
	assert.Equal(t, "12", v)

	// Failures past the start keep their detail.
	pair := Named("pair", Then(Char('('), Char(')')))
	_, err = pair.Parse(NewCursor("(x"))
	require.NotNil(t, err)
	assert.Equal(t, ExpChar(')'), err.Expected)
}

func TestLazyRecursion(t *testing.T) {
	var depth Parser[int]
	depth = Lazy("parens", func() Parser[int] {
		return Or(
			Map(Middle(Char('('), depth, Char(')')), func(n int) int { return n + 1 }),
			Succeed(0),
		)
	})

	n, err := Run(Complete(depth), "((()))")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Run(Complete(depth), "(()")
	assert.Error(t, err)
}

func TestFailAndSucceed(t *testing.T) {
	_, err := Fail[int](ExpMessage("never")).Parse(NewCursor("abc"))
	require.NotNil(t, err)
	assert.Equal(t, ExpMessage("never"), err.Expected)

	r, err := Succeed(7).Parse(NewCursor("abc"))
	require.Nil(t, err)
	assert.Equal(t, 7, r.Value)
	assert.Equal(t, 0, r.Next.Offset())
}

func TestDeterminism(t *testing.T) {
	p := SepUntil(Spaced(AlphaNum.Plus()), Char(','), Char(']'))
	inputs := []string{"a, b ,c]", "a,,b]", "x y]", ""}

	for _, in := range inputs {
		r1, e1 := p.Parse(NewCursor(in))
		r2, e2 := p.Parse(NewCursor(in))
		assert.Equal(t, r1, r2, "result for %q", in)
		assert.Equal(t, e1, e2, "error for %q", in)
	}
}

func TestCursorNonInterference(t *testing.T) {
	c := NewCursor("hello world")
	before := c
	_, _ = Then(Alpha.Plus(), Tag(" world")).Parse(c)
	_, _ = Tag("help").Parse(c)
	assert.Equal(t, before, c)
}
