package result

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdering_ErrBeforeOk(t *testing.T) {
	t.Parallel()

	e := Err[int]("z")
	for _, x := range []int{-100, 0, 100} {
		ok := Ok[int, string](x)
		assert.True(t, Less(e, ok))
		assert.True(t, LessOrEqual(e, ok))
		assert.True(t, Greater(ok, e))
		assert.True(t, GreaterOrEqual(ok, e))
		assert.False(t, Less(ok, e))
	}
}

func TestOrdering_OkDelegates(t *testing.T) {
	t.Parallel()

	three, five := Ok[int, string](3), Ok[int, string](5)
	assert.True(t, Less(three, five))
	assert.False(t, Less(five, three))
	assert.True(t, Greater(Ok[int, int](5), Ok[int, int](4)))
	assert.True(t, LessOrEqual(three, three))
	assert.True(t, GreaterOrEqual(three, three))
	assert.Equal(t, 0, Compare(three, three))
}

func TestOrdering_ErrVsErrIsEqual(t *testing.T) {
	t.Parallel()

	a, b := Err[int]("a"), Err[int]("b")
	assert.Equal(t, 0, Compare(a, b))
	assert.False(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.False(t, Greater(a, b))
	assert.False(t, Greater(b, a))
	assert.True(t, LessOrEqual(a, b))
	assert.True(t, GreaterOrEqual(a, b))
}

func TestOrdering_Consistency(t *testing.T) {
	t.Parallel()

	all := []Result[int, string]{Err[int]("x"), Err[int]("y"), Ok[int, string](1), Ok[int, string](2)}
	for _, a := range all {
		for _, b := range all {
			lt, le := Less(a, b), LessOrEqual(a, b)
			gt, ge := Greater(a, b), GreaterOrEqual(a, b)
			assert.Equal(t, le, !gt, "%v vs %v", a, b)
			assert.Equal(t, ge, !lt, "%v vs %v", a, b)
			assert.Equal(t, lt, Greater(b, a), "%v vs %v", a, b)
		}
	}
}

func TestCompareFunc_DifferentSuccessTypes(t *testing.T) {
	t.Parallel()

	byValue := func(n int, s string) int {
		m, _ := strconv.Atoi(s)
		return cmp.Compare(n, m)
	}

	assert.Equal(t, -1, CompareFunc(Ok[int, error](3), Ok[string, error]("5"), byValue))
	assert.Equal(t, 1, CompareFunc(Ok[int, error](7), Ok[string, error]("5"), byValue))
	assert.Equal(t, -1, CompareFunc(Err[int](assert.AnError), Ok[string, error]("5"), byValue))
	assert.Equal(t, 0, CompareFunc(Err[int](assert.AnError), Err[string](assert.AnError), byValue))
}
