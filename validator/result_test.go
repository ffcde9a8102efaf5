package validator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr_RestAbsentWhenNotGiven(t *testing.T) {
	r := Err[int]("boom")

	assert.True(t, r.IsErr())
	assert.Nil(t, r.Rest())

	first, ok := r.First()
	require.True(t, ok)
	assert.Equal(t, "boom", first)
	assert.Equal(t, []string{"boom"}, r.Errors())
}

func TestErr_EmptyRestIsAbsent(t *testing.T) {
	r := Err[int]("boom", []string{}...)

	assert.Nil(t, r.Rest())
	assert.Equal(t, Err[int]("boom"), r)
}

func TestErr_KeepsOrder(t *testing.T) {
	r := Err[int]("a", "b", "c")

	assert.Equal(t, []string{"b", "c"}, r.Rest())
	assert.Equal(t, []string{"a", "b", "c"}, r.Errors())
}

func TestOk_Value(t *testing.T) {
	r := Ok[int, string](42)

	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Nil(t, r.Errors())

	_, hasErr := r.First()
	assert.False(t, hasErr)
}

func TestMapResult(t *testing.T) {
	double := func(v int) int { return v * 2 }

	t.Run("ok is transformed", func(t *testing.T) {
		for _, v := range []int{-3, 0, 1, 21} {
			assert.Equal(t, Ok[int, string](double(v)), MapResult(Ok[int, string](v), double))
		}
	})

	t.Run("error passes through with rest", func(t *testing.T) {
		in := Err[int]("e1", "e2", "e3")
		out := MapResult(in, strconv.Itoa)

		assert.Equal(t, Err[string]("e1", "e2", "e3"), out)
	})

	t.Run("f is not called on error", func(t *testing.T) {
		called := false
		MapResult(Err[int]("e"), func(int) int { called = true; return 0 })
		assert.False(t, called)
	})
}

func TestResult_Match(t *testing.T) {
	var got []string

	Ok[int, string](1).Match(
		func(v int) { got = append(got, "ok:"+strconv.Itoa(v)) },
		func(string, []string) { got = append(got, "err") },
	)
	Err[int]("x", "y").Match(
		func(int) { got = append(got, "ok") },
		func(first string, rest []string) { got = append(got, "err:"+first+":"+rest[0]) },
	)

	assert.Equal(t, []string{"ok:1", "err:x:y"}, got)
}

func TestFold(t *testing.T) {
	count := func(r Result[int, string]) int {
		return Fold(r,
			func(int) int { return 0 },
			func(_ string, rest []string) int { return 1 + len(rest) },
		)
	}

	assert.Equal(t, 0, count(Ok[int, string](7)))
	assert.Equal(t, 3, count(Err[int]("a", "b", "c")))
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Ok(5)", Ok[int, string](5).String())
	assert.Equal(t, "Err(bad)", Err[int]("bad").String())
	assert.Equal(t, "Err(bad, [worse])", Err[int]("bad", "worse").String())
}
