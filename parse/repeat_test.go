package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarAndPlus(t *testing.T) {
	r, err := Star(Tag("ab")).Parse(NewCursor("ababx"))
	require.Nil(t, err)
	assert.Equal(t, []string{"ab", "ab"}, r.Value)
	assert.Equal(t, 4, r.Next.Offset())
	require.NotNil(t, r.Hint)
	assert.Equal(t, ExpStr("ab"), r.Hint.Expected)

	r, err = Star(Tag("ab")).Parse(NewCursor("x"))
	require.Nil(t, err)
	assert.NotNil(t, r.Value)
	assert.Empty(t, r.Value)

	_, err = Plus(Tag("ab")).Parse(NewCursor("x"))
	require.NotNil(t, err)
	assert.Equal(t, ExpStr("ab"), err.Expected)
	assert.Nil(t, err.Child)
}

func TestRepeatMinimum(t *testing.T) {
	_, err := Repeat(Tag("ab"), 3).Parse(NewCursor("abab"))
	require.NotNil(t, err)
	assert.Equal(t, ExpMessage("needed at least 3, found 2"), err.Expected)
	require.NotNil(t, err.Child)
	assert.Equal(t, ExpStr("ab"), err.Child.Expected)

	v, rerr := Run(Repeat(Tag("ab"), 2), "ababab")
	require.NoError(t, rerr)
	assert.Len(t, v, 3)
}

func TestRepeatStopsOnZeroWidth(t *testing.T) {
	r, err := Star(Maybe(Tag(""))).Parse(NewCursor("abc"))
	require.Nil(t, err)
	assert.Len(t, r.Value, 1)
	assert.Equal(t, 0, r.Next.Offset())

	v, rerr := Run(Star(Alpha.Star()), "123")
	require.NoError(t, rerr)
	assert.Equal(t, []string{""}, v)
}

func TestRepeatZeroWidthFillsMinimum(t *testing.T) {
	v, err := Run(Repeat(Tag(""), 3), "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", ""}, v)

	r, perr := Plus(Maybe(Char('x'))).Parse(NewCursor("abc"))
	require.Nil(t, perr)
	assert.Len(t, r.Value, 1)
	assert.Equal(t, 0, r.Next.Offset())
}

func TestSeparatedStopsOnZeroWidth(t *testing.T) {
	r, err := Separated(Maybe(Char('x')), Maybe(Char(',')), false).Parse(NewCursor("a"))
	require.Nil(t, err)
	assert.Len(t, r.Value, 2)
	assert.Equal(t, 0, r.Next.Offset())
}

func TestRepeatUntilZeroWidthItem(t *testing.T) {
	_, err := RepeatUntil(Alpha.Star(), Char('.')).Parse(NewCursor("1"))
	require.NotNil(t, err)
	assert.Equal(t, 0, err.Pos.Offset)
	assert.Equal(t, ExpChar('.'), err.Expected)
}

func TestSepUntilZeroWidthItemAndSeparator(t *testing.T) {
	p := SepUntil(Maybe(Char('x')), Maybe(Char(',')), Char(']'))

	_, err := p.Parse(NewCursor("a"))
	require.NotNil(t, err)
	assert.False(t, err.Fatal)
	assert.Equal(t, 0, err.Pos.Offset)
	assert.ElementsMatch(t, ExpOneOf{ExpChar(']'), ExpChar(','), ExpChar('x')}, err.Expected)

	r, err := p.Parse(NewCursor("x,,x]"))
	require.Nil(t, err)
	assert.Len(t, r.Value, 3)
	assert.Equal(t, 5, r.Next.Offset())
}

func TestRepeatFatal(t *testing.T) {
	item := Or(IgThen(Char('"'), Brk(Tag("x\""))), Tag("y"))
	_, err := Star(item).Parse(NewCursor(`y"x"y"z`))
	require.NotNil(t, err)
	assert.True(t, err.Fatal)
	assert.Equal(t, 6, err.Pos.Offset)
}

func TestRepeatN(t *testing.T) {
	word := ThenIg(Alpha.Plus(), WS.SkipStar())
	v, rerr := Run(RepeatN(word, 3), "hello fish car cat")
	require.NoError(t, rerr)
	assert.Equal(t, []string{"hello", "fish", "car"}, v)

	_, err := RepeatN(Char('a'), 3).Parse(NewCursor("aab"))
	require.NotNil(t, err)
	assert.Equal(t, ExpMessage("needed 3, failed at attempt 3"), err.Expected)
	assert.Equal(t, 2, err.Pos.Offset)
	assert.Equal(t, `1:3: needed 3, failed at attempt 3: expected 'a', found "b"`, err.Error())
}

func TestSeparated(t *testing.T) {
	num := NumDigit.Plus()

	tests := map[string]struct {
		input  string
		minOne bool
		want   []string
		next   int
		errAt  int
		fails  bool
	}{
		"list":             {input: "1,22,333;", want: []string{"1", "22", "333"}, next: 8},
		"single":           {input: "7", want: []string{"7"}, next: 1},
		"empty":            {input: "x", want: []string{}, next: 0},
		"empty minOne":     {input: "x", minOne: true, fails: true},
		"dangling sep":     {input: "1,2,;", fails: true, errAt: 4},
		"minOne satisfied": {input: "5,6", minOne: true, want: []string{"5", "6"}, next: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := Separated(num, Char(','), tt.minOne).Parse(NewCursor(tt.input))
			if tt.fails {
				require.NotNil(t, err)
				assert.Equal(t, tt.errAt, err.Pos.Offset)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.next, r.Next.Offset())
		})
	}

	_, err := Separated(num, Char(','), false).Parse(NewCursor("1,2,;"))
	require.NotNil(t, err)
	assert.False(t, err.Fatal)
	assert.Equal(t, ExpMessage("missing item after separator"), err.Expected)
}

func TestRepeatUntil(t *testing.T) {
	r, err := RepeatUntil(Alpha.One(), Char('.')).Parse(NewCursor("abc.d"))
	require.Nil(t, err)
	assert.Equal(t, []rune("abc"), r.Value.A)
	assert.Equal(t, '.', r.Value.B)
	assert.Equal(t, 4, r.Next.Offset())

	_, err = RepeatUntil(Alpha.One(), Char('.')).Parse(NewCursor("ab1"))
	require.NotNil(t, err)
	assert.Equal(t, 2, err.Pos.Offset)
	assert.Equal(t, ExpOneOf{ExpNamed("alphabetic"), ExpChar('.')}, err.Expected)

	v, rerr := Run(RepeatUntilIg(Alpha.One(), Char('.')), ".")
	require.NoError(t, rerr)
	assert.Empty(t, v)

	_, err = RepeatUntil(Alpha.Star(), Char('.')).Parse(NewCursor("1"))
	require.NotNil(t, err, "zero-width item must not loop")
}

func TestSepUntil(t *testing.T) {
	list := IgThen(Char('['), SepUntil(NumDigit.Plus(), Char(','), Char(']')))

	tests := map[string]struct {
		input string
		want  []string
		errAt int
		exp   Expected
	}{
		"empty":          {input: "[]", want: []string{}},
		"one":            {input: "[1]", want: []string{"1"}},
		"two":            {input: "[1,2]", want: []string{"1", "2"}},
		"trailing comma": {input: "[1,2,]", errAt: 5, exp: ExpMessage("missing item after separator")},
		"missing comma": {
			input: "[1 2]",
			errAt: 2,
			exp:   ExpOneOf{ExpChar(','), ExpChar(']'), ExpNamed("digit")},
		},
		"not an item": {
			input: "[x]",
			errAt: 1,
			exp:   ExpOneOf{ExpNamed("digit"), ExpChar(']')},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := Run(list, tt.input)
			if tt.exp != nil {
				var perr *Error
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.errAt, perr.Pos.Offset)
				assert.Equal(t, tt.exp, perr.Expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestReflect(t *testing.T) {
	p := Reflect(Spaced(Tag("(")), Alpha.Plus(), Spaced(Tag(")")))

	v, err := Run(p, "(((help)))")
	require.NoError(t, err)
	assert.Equal(t, []string{"(", "(", "("}, v.A)
	assert.Equal(t, "help", v.B)
	assert.Equal(t, []string{")", ")", ")"}, v.C)

	_, err = Run(p, "(((no))")
	assert.Error(t, err)

	v, err = Run(p, "bare")
	require.NoError(t, err)
	assert.Empty(t, v.A)
	assert.Empty(t, v.C)
}
