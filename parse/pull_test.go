package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPull(t *testing.T) {
	word := ThenIg(Alpha.Plus(), WS.SkipStar())

	var got []string
	for v, err := range Pull(word, "aaa bbb bab") {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"aaa", "bbb", "bab"}, got)
}

func TestPullYieldsError(t *testing.T) {
	word := ThenIg(Alpha.Plus(), WS.SkipStar())

	var got []string
	var errs []error
	for v, err := range Pull(word, "aa 12") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"aa"}, got)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "1:4")
}

func TestPullUntil(t *testing.T) {
	item := ThenIg(NumDigit.Plus(), Char(';'))

	var got []string
	for v, err := range PullUntil(item, Tag("--"), "1;22;--rest") {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"1", "22"}, got)
}

func TestPullStopsOnZeroWidth(t *testing.T) {
	var got []string
	var errs []error
	for v, err := range Pull(Alpha.Star(), "ab 12") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"ab", ""}, got)
	require.Len(t, errs, 1)
	var perr *Error
	require.ErrorAs(t, errs[0], &perr)
	assert.Equal(t, 2, perr.Pos.Offset)

	errs = nil
	for _, err := range Pull(Alpha.Star(), "ab") {
		if err != nil {
			errs = append(errs, err)
		}
	}
	assert.Empty(t, errs, "a zero-width match at the end is a clean finish")
}

func TestPullBreak(t *testing.T) {
	n := 0
	for range Pull(Alpha.One(), "abcdef") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
