package conduit

import (
	"context"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func even(elem int) bool {
	return elem%2 == 0
}

func TestMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := SourceSlice([]int{1, 2, 3, 4, 5})

	strs := Map(ints, func(elem int) string {
		return strconv.Itoa(elem * 2)
	})

	result, err := ReduceSlice(ctx, strs)

	is.NoErr(err)
	is.Equal(result, []string{"2", "4", "6", "8", "10"})
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Filter(SourceSlice([]int{1, 2, 3, 4, 5}), even)

	result, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.Equal(result, []int{2, 4})
}

func TestTake(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := SourceSlice([]int{1, 2, 3, 4, 5})

	result, err := ReduceSlice(ctx, Take(ints, 3))

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})

	// untaken elements remain in the stream
	rest, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.Equal(rest, []int{4, 5})
}

func TestTake_MoreThanAvailable(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := ReduceSlice(ctx, Take(SourceSlice([]int{1, 2}), 10))

	is.NoErr(err)
	is.Equal(result, []int{1, 2})
}

func TestTake_Zero(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	pulled := 0
	ints := NewSource(func(_ context.Context) (int, bool, error) {
		pulled++
		return pulled, true, nil
	})

	result, err := ReduceSlice(ctx, Take(ints, 0))

	is.NoErr(err)
	is.Equal(len(result), 0)
	is.Equal(pulled, 0)
}

func TestDrop(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := ReduceSlice(ctx, Drop(SourceSlice([]int{1, 2, 3, 4, 5}), 2))

	is.NoErr(err)
	is.Equal(result, []int{3, 4, 5})
}

func TestTakeWhile(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := SourceSlice([]int{2, 4, 5, 6})

	result, err := ReduceSlice(ctx, TakeWhile(ints, even))

	is.NoErr(err)
	is.Equal(result, []int{2, 4})

	// the non-matching element is pushed back for the next consumer
	rest, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.Equal(rest, []int{5, 6})
}

func TestDropWhile(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := ReduceSlice(ctx, DropWhile(SourceSlice([]int{2, 4, 5, 6}), even))

	is.NoErr(err)
	is.Equal(result, []int{5, 6})
}

func TestPeek(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	peeked := []int{}

	ints := Peek(SourceSlice([]int{1, 2, 3}), func(elem int) {
		peeked = append(peeked, elem)
	})

	result, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
	is.Equal(peeked, []int{1, 2, 3})
}
