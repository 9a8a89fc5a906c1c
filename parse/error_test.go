package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errAt(offset int, exp Expected, fatal bool) *Error {
	return &Error{Expected: exp, Pos: Position{Offset: offset}, Fatal: fatal}
}

func TestLonger(t *testing.T) {
	tests := []struct {
		name string
		a, b *Error
		want *Error
	}{
		{"nil left", nil, errAt(1, ExpChar('a'), false), errAt(1, ExpChar('a'), false)},
		{"nil right", errAt(1, ExpChar('a'), false), nil, errAt(1, ExpChar('a'), false)},
		{"further wins", errAt(1, ExpChar('a'), false), errAt(3, ExpChar('b'), false), errAt(3, ExpChar('b'), false)},
		{"fatal wins over further", errAt(1, ExpChar('a'), true), errAt(3, ExpChar('b'), false), errAt(1, ExpChar('a'), true)},
		{"tie merges", errAt(2, ExpChar('a'), false), errAt(2, ExpChar('b'), false), errAt(2, ExpOneOf{ExpChar('a'), ExpChar('b')}, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Longer(tt.a, tt.b))
		})
	}
}

func TestMergeExpected(t *testing.T) {
	a, b, c := ExpChar('a'), ExpStr("b"), ExpNamed("c")

	tests := []struct {
		name string
		x, y Expected
		want Expected
	}{
		{"same", a, a, a},
		{"pair", a, b, ExpOneOf{a, b}},
		{"flattens", ExpOneOf{a, b}, ExpOneOf{b, c}, ExpOneOf{a, b, c}},
		{"nil", nil, c, c},
		{"nested structures compare by value", ExpExcept{a, b}, ExpExcept{a, b}, ExpExcept{a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeExpected(tt.x, tt.y))
		})
	}
}

func TestExpectedString(t *testing.T) {
	tests := []struct {
		exp  Expected
		want string
	}{
		{ExpChar('x'), "'x'"},
		{ExpStr("let"), `"let"`},
		{ExpCharIn("+-"), `one of "+-"`},
		{ExpEOI{}, "end of input"},
		{ExpOneOf{ExpChar(','), ExpChar(']')}, "',' or ']'"},
		{ExpOneOf{ExpChar('a'), ExpChar('b'), ExpChar('c')}, "'a', 'b' or 'c'"},
		{ExpExcept{Base: ExpNamed("any character"), Not: ExpChar('"')}, `any character except '"'`},
		{ExpObject{Name: "keyword", Inner: ExpStr("if")}, `keyword ("if")`},
		{ExpObject{Name: "value"}, "value"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.exp.String())
		})
	}
}

func TestErrorBrkAndWrap(t *testing.T) {
	base := errAt(4, ExpChar('a'), false)

	fatal := base.Brk()
	assert.True(t, fatal.Fatal)
	assert.False(t, base.Fatal, "Brk returns a copy")

	wrapped := fatal.Wrap("in list")
	assert.Equal(t, ExpMessage("in list"), wrapped.Expected)
	assert.Equal(t, fatal.Pos, wrapped.Pos)
	assert.True(t, wrapped.Fatal)
	assert.Same(t, fatal, wrapped.Child)
	assert.True(t, errors.Is(wrapped, fatal))

	var child *Error
	require.True(t, errors.As(errors.Unwrap(wrapped), &child))
	assert.Equal(t, ExpChar('a'), child.Expected)
	assert.Nil(t, base.Unwrap())
}

func TestErrorRender(t *testing.T) {
	src := "hello\nwxrld"
	_, err := Run(IgThen(Tag("hello\n"), Tag("world")), src)
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `2:2: expected "world", found "xrld"`, perr.Error())

	want := "error at 2:2: expected \"world\", found \"xrld\"\n" +
		"   2 | wxrld\n" +
		"     |  ^\n"
	assert.Equal(t, want, perr.Render(src))
}

func TestErrorRenderChain(t *testing.T) {
	src := `say "hi`
	p := IgThen(Tag("say "), IgThen(Char('"'), ReadEscaped('"', StdEscapes)))
	_, err := Run(p, src)
	var perr *Error
	require.ErrorAs(t, err, &perr)

	want := "error at 1:8: unterminated literal\n" +
		"   1 | say \"hi\n" +
		"     |        ^\n" +
		"caused by error at 1:8: expected '\"', found end of input\n"
	assert.Equal(t, want, perr.Render(src))
}

func TestSourceLine(t *testing.T) {
	line, col := sourceLine("ab\r\ncdé\nef", 8)
	assert.Equal(t, "cdé", line)
	assert.Equal(t, 3, col)

	line, col = sourceLine("abc", 10)
	assert.Equal(t, "abc", line)
	assert.Equal(t, 3, col)
}
