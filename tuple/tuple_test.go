package tuple

import (
	"context"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, NewTuple0().Arity())
	assert.Equal(t, 1, NewTuple1("solo").Arity())
	assert.Equal(t, 3, NewTuple3(1, 2, 3).Arity())
	assert.Equal(t, 6, NewTuple6(1, 2, 3, 4, 5, 6).Arity())
}

func TestIsUnit(t *testing.T) {
	t.Parallel()

	assert.True(t, NewTuple0().IsUnit())
	assert.False(t, NewTuple1(0).IsUnit())
	assert.False(t, NewTuple2("a", "b").IsUnit())
}

func TestSealed(t *testing.T) {
	t.Parallel()

	tuples := []Tuple{NewTuple0(), NewTuple1("x"), NewTuple2(1, true)}

	for want, tuple := range tuples {
		assert.Equal(t, want, tuple.Arity())
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	tuple := NewTuple3("hello", 42, true)

	assert.Equal(t, "hello", tuple.First())
	assert.Equal(t, 42, tuple.Second())
	assert.True(t, tuple.Third())
}

func TestSetters(t *testing.T) {
	t.Parallel()

	tuple := NewTuple2("hello", 1)
	tuple.SetFirst("goodbye")
	tuple.SetSecond(2)

	assert.Equal(t, NewTuple2("goodbye", 2), tuple)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	pair := NewTuple2(1, 2)
	triple := Append2(pair, 3)

	assert.Equal(t, NewTuple3(1, 2, 3), triple)
	assert.Equal(t, 3, triple.Arity())
}

func TestPrepend(t *testing.T) {
	t.Parallel()

	pair := NewTuple2(1, 2)
	triple := Prepend2(pair, 0)

	assert.Equal(t, NewTuple3(0, 1, 2), triple)
}

func TestAppendFromEmpty(t *testing.T) {
	t.Parallel()

	single := Append0(NewTuple0(), "seed")

	assert.Equal(t, NewTuple1("seed"), single)
}

func TestGrowMixedTypes(t *testing.T) {
	t.Parallel()

	grown := Append2(NewTuple2("id", 7), true)

	assert.Equal(t, "id", grown.First())
	assert.Equal(t, 7, grown.Second())
	assert.True(t, grown.Third())
}

func TestHeadTailAccess(t *testing.T) {
	t.Parallel()

	tuple := NewTuple3("head", 42, "tail")

	assert.Equal(t, "head", tuple.Head())
	assert.Equal(t, "tail", tuple.Tail())

	tuple.SetHead("front")
	tuple.SetTail("back")

	assert.Equal(t, NewTuple3("front", 42, "back"), tuple)
}

func TestHeadTailSinglePosition(t *testing.T) {
	t.Parallel()

	// On a single-value tuple head and tail are the same position.
	tuple := NewTuple1(9)

	assert.Equal(t, 9, tuple.Head())
	assert.Equal(t, 9, tuple.Tail())

	tuple.SetTail(10)

	assert.Equal(t, 10, tuple.Head())
}

func TestTruncateHead(t *testing.T) {
	t.Parallel()

	head, rest := NewTuple3(1, 2, 3).TruncateHead()

	assert.Equal(t, 1, head)
	assert.Equal(t, NewTuple2(2, 3), rest)
}

func TestTruncateTail(t *testing.T) {
	t.Parallel()

	rest, tail := NewTuple3(1, 2, 3).TruncateTail()

	assert.Equal(t, NewTuple2(1, 2), rest)
	assert.Equal(t, 3, tail)
}

func TestTruncateToEmpty(t *testing.T) {
	t.Parallel()

	head, rest := NewTuple1("only").TruncateHead()

	assert.Equal(t, "only", head)
	assert.Equal(t, NewTuple0(), rest)
	assert.True(t, rest.IsUnit())
}

func TestHeadTail(t *testing.T) {
	t.Parallel()

	head, tail := NewTuple4("a", "b", "c", "d").HeadTail()

	assert.Equal(t, "a", head)
	assert.Equal(t, "d", tail)
}

func TestTruncateHeadTail(t *testing.T) {
	t.Parallel()

	head, middle, tail := NewTuple4(1, 2, 3, 4).TruncateHeadTail()

	assert.Equal(t, 1, head)
	assert.Equal(t, NewTuple2(2, 3), middle)
	assert.Equal(t, 4, tail)

	head2, middle2, tail2 := NewTuple2("a", "b").TruncateHeadTail()

	assert.Equal(t, "a", head2)
	assert.Equal(t, NewTuple0(), middle2)
	assert.Equal(t, "b", tail2)
}

func TestGrowTruncateRoundTrip(t *testing.T) {
	t.Parallel()

	grown := Append3(NewTuple3(1, 2, 3), 4)
	rest, tail := grown.TruncateTail()

	assert.Equal(t, NewTuple3(1, 2, 3), rest)
	assert.Equal(t, 4, tail)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	joined := Join2x3(NewTuple2(1, 2), NewTuple3(3, 4, 5))

	assert.Equal(t, NewTuple5(1, 2, 3, 4, 5), joined)
}

func TestJoinWithEmpty(t *testing.T) {
	t.Parallel()

	pair := NewTuple2("x", "y")

	assert.Equal(t, pair, Join0x2(NewTuple0(), pair))
	assert.Equal(t, pair, Join2x0(pair, NewTuple0()))
	assert.Equal(t, NewTuple0(), Join0x0(NewTuple0(), NewTuple0()))
}

func TestJoinMixedTypes(t *testing.T) {
	t.Parallel()

	joined := Join1x2(NewTuple1("id"), NewTuple2(42, true))

	assert.Equal(t, "id", joined.First())
	assert.Equal(t, 42, joined.Second())
	assert.True(t, joined.Third())
}

func TestApply(t *testing.T) {
	t.Parallel()

	sum := Apply3(func(a, b, c int) int {
		return a + b + c
	}, NewTuple3(1, 2, 3))

	assert.Equal(t, 6, sum)
}

func TestApplyZeroArity(t *testing.T) {
	t.Parallel()

	got := Apply0(func() string {
		return "constant"
	}, NewTuple0())

	assert.Equal(t, "constant", got)
}

func TestApplyErr(t *testing.T) {
	t.Parallel()

	divide := func(num, den int) (int, error) {
		if den == 0 {
			return 0, assert.AnError
		}

		return num / den, nil
	}

	quotient, err := ApplyErr2(divide, NewTuple2(10, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, quotient)

	_, err = ApplyErr2(divide, NewTuple2(10, 0))
	require.ErrorIs(t, err, assert.AnError)
}

func TestApplyOpt(t *testing.T) {
	t.Parallel()

	lookup := map[string]int{"present": 1}

	value, ok := ApplyOpt1(func(key string) (int, bool) {
		found, exists := lookup[key]

		return found, exists
	}, NewTuple1("present"))

	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = ApplyOpt1(func(key string) (int, bool) {
		found, exists := lookup[key]

		return found, exists
	}, NewTuple1("absent"))

	assert.False(t, ok)
}

func TestApplySeq(t *testing.T) {
	t.Parallel()

	countTo := func(from, to int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := from; i <= to; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	seq := ApplySeq2(countTo, NewTuple2(1, 4))

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(seq))
}

func TestApplyAsync(t *testing.T) {
	t.Parallel()

	fut := ApplyAsync2(context.Background(), func(_ context.Context, a, b int) (int, error) {
		return a * b, nil
	}, NewTuple2(6, 7))

	result, err := fut.Await()

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestApplyAsyncError(t *testing.T) {
	t.Parallel()

	fut := ApplyAsync1(context.Background(), func(context.Context, string) (string, error) {
		return "", assert.AnError
	}, NewTuple1("input"))

	_, err := fut.Await()

	require.ErrorIs(t, err, assert.AnError)
}

func TestSeq(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(Seq3(NewTuple3("a", "b", "c"))))
	assert.Empty(t, slices.Collect(Seq0[int](NewTuple0())))
}

func TestSeqEarlyStop(t *testing.T) {
	t.Parallel()

	var seen []int

	for v := range Seq3(NewTuple3(1, 2, 3)) {
		seen = append(seen, v)

		if v == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}

func TestSlice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4, 5, 6}, Slice3(NewTuple3(4, 5, 6)))
	assert.Empty(t, Slice0[string](NewTuple0()))
}

func TestIndexVersusTruncateAgree(t *testing.T) {
	t.Parallel()

	tuple := NewTuple3("x", "y", "z")
	head, rest := tuple.TruncateHead()

	assert.Equal(t, tuple.First(), head)
	assert.Equal(t, tuple.Second(), rest.First())
	assert.Equal(t, tuple.Third(), rest.Second())
}
