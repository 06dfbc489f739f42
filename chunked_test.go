package conduit

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func isLower(elem byte) bool {
	return elem >= 'a' && elem <= 'z'
}

func TestDropElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 2}, {3, 4, 5}, {6}})

	err := DropElems[Slice[int], int](ctx, chunks, 3)
	is.NoErr(err)

	// the unconsumed suffix of the split chunk is pushed back
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Slice[int]{{4, 5}, {6}})
}

func TestDropElems_ChunkBoundary(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 2}, {3, 4}})

	err := DropElems[Slice[int], int](ctx, chunks, 2)
	is.NoErr(err)

	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Slice[int]{{3, 4}})
}

func TestDropElems_MoreThanAvailable(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 2}, {3}})

	err := DropElems[Slice[int], int](ctx, chunks, 10)
	is.NoErr(err)

	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(len(rest), 0)
}

func TestDropWhileElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{2, 4}, {6, 7, 8}, {9}})

	err := DropWhileElems(ctx, chunks, func(elem int) bool {
		return elem%2 == 0
	})
	is.NoErr(err)

	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Slice[int]{{7, 8}, {9}})
}

func TestTakeElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"ab", "c", "", "def"})

	taken, err := ReduceSlice(ctx, TakeElems[Str, byte](chunks, 4))

	is.NoErr(err)
	is.Equal(taken, []Str{"ab", "c", "d"})

	// "ef" is still pending for the next reader
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Str{"ef"})
}

func TestTakeElems_StopsPulling(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	pulled := 0
	chunks := NewSource(func(_ context.Context) (Slice[int], bool, error) {
		pulled++
		return Slice[int]{pulled}, true, nil
	})

	taken, err := ReduceSlice(ctx, TakeElems[Slice[int], int](chunks, 2))

	is.NoErr(err)
	is.Equal(taken, []Slice[int]{{1}, {2}})
	is.Equal(pulled, 2)
}

func TestTakeWhileElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"ab", "c", "", "def"})

	matched := TakeWhileElems(chunks, isLower)

	count, err := CountElems[Str, byte](ctx, matched)

	is.NoErr(err)
	is.Equal(count, 6)

	// all elements matched, so nothing is left over
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(len(rest), 0)
}

func TestTakeWhileElems_MidChunk(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"ab", "c1", "de"})

	matched, err := ReduceSlice(ctx, TakeWhileElems(chunks, isLower))

	is.NoErr(err)
	is.Equal(matched, []Str{"ab", "c"})

	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Str{"1", "de"})
}

func TestFilterElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 2}, {3, 5}, {4, 6}})

	filtered, err := ReduceSlice(ctx, FilterElems(chunks, func(elem int) bool {
		return elem%2 == 0
	}))

	is.NoErr(err)

	// chunks with no matching elements are forwarded empty, not suppressed
	is.Equal(filtered, []Slice[int]{{2}, {}, {4, 6}})
}

func TestMapElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"ab", "cd"})

	upper, err := ReduceSlice(ctx, MapElems(chunks, func(elem byte) byte {
		return elem - 'a' + 'A'
	}))

	is.NoErr(err)
	is.Equal(upper, []Str{"AB", "CD"})
}

func TestFlattenElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 2}, {}, {3}, {4, 5, 6}})

	flat, err := ReduceSlice(ctx, FlattenElems[Slice[int], int](chunks))

	is.NoErr(err)
	is.Equal(flat, []int{1, 2, 3, 4, 5, 6})
}

func TestReduceElems_ChunkInvariance(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	concat := func(elem int, acc []int) []int {
		return append(acc, elem)
	}

	// any re-chunking of the same logical sequence reduces to the same result
	chunkings := [][]Slice[int]{
		{{1, 2}, {3}},
		{{1}, {2}, {3}},
		{{}, {1, 2, 3}, {}},
		{{1, 2, 3}},
	}

	for _, chunks := range chunkings {
		chunked, err := ReduceElems(ctx, SourceSlice(chunks), nil, concat)
		is.NoErr(err)

		flat, err := Reduce(ctx, SourceSlice([]int{1, 2, 3}), nil, concat)
		is.NoErr(err)

		is.Equal(chunked, flat)
	}
}

func TestAnyMatchElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Slice[int]{{1, 3}, {5, 6, 7}, {9}})

	found, err := AnyMatchElems(ctx, chunks, func(elem int) bool {
		return elem%2 == 0
	})

	is.NoErr(err)
	is.True(found)

	// stops mid-stream: the chunk holding the match is consumed, later chunks are not
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Slice[int]{{9}})
}

func TestAllMatchElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"ab", "c", "", "def"})

	all, err := AllMatchElems(ctx, chunks, isLower)

	is.NoErr(err)
	is.True(all)

	chunks = SourceSlice([]Str{"ab", "c!", "def"})

	all, err = AllMatchElems(ctx, chunks, isLower)

	is.NoErr(err)
	is.True(!all)

	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Str{"def"})
}

func TestCountElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	count, err := CountElems[Str, byte](ctx, SourceSlice([]Str{"ab", "", "cde"}))

	is.NoErr(err)
	is.Equal(count, 5)
}

func TestSumElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	sum, err := SumElems[Slice[int], int](ctx, SourceSlice([]Slice[int]{{1, 2}, {3, 4}}))

	is.NoErr(err)
	is.Equal(sum, 10)
}

func TestProductElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	product, err := ProductElems[Slice[int], int](ctx, SourceSlice([]Slice[int]{{2, 3}, {4}}))

	is.NoErr(err)
	is.Equal(product, 24)

	product, err = ProductElems[Slice[int], int](ctx, SourceSlice[Slice[int]]())

	is.NoErr(err)
	is.Equal(product, 1)
}

func TestMaximumElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	best, found, err := MaximumElems[Slice[int], int](ctx, SourceSlice([]Slice[int]{{3, 1}, {4, 1}, {5}}))

	is.NoErr(err)
	is.True(found)
	is.Equal(best, 5)

	_, found, err = MaximumElems[Slice[int], int](ctx, SourceSlice([]Slice[int]{{}, {}}))

	is.NoErr(err)
	is.True(!found)
}

func TestMinimumElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	best, found, err := MinimumElems[Slice[int], int](ctx, SourceSlice([]Slice[int]{{3}, {1, 4}}))

	is.NoErr(err)
	is.True(found)
	is.Equal(best, 1)
}

func TestFirstElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"", "abc", "de"})

	first, found, err := FirstElems[Str, byte](ctx, chunks)

	is.NoErr(err)
	is.True(found)
	is.Equal(first, byte('a'))

	// the rest of the split chunk is pushed back
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Str{"bc", "de"})
}

func TestLastElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	last, found, err := LastElems[Str, byte](ctx, SourceSlice([]Str{"ab", "", "cde"}))

	is.NoErr(err)
	is.True(found)
	is.Equal(last, byte('e'))

	_, found, err = LastElems[Str, byte](ctx, SourceSlice[Str]())

	is.NoErr(err)
	is.True(!found)
}

func TestNullElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	chunks := SourceSlice([]Str{"", "", "ab"})

	empty, err := NullElems[Str, byte](ctx, chunks)

	is.NoErr(err)
	is.True(!empty)

	// leading empty chunks are discarded, the first non-empty one is pushed back
	rest, err := ReduceSlice(ctx, chunks)

	is.NoErr(err)
	is.Equal(rest, []Str{"ab"})

	empty, err = NullElems[Str, byte](ctx, SourceSlice([]Str{"", ""}))

	is.NoErr(err)
	is.True(empty)
}

func TestContainsElems(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	found, err := ContainsElems(ctx, SourceSlice([]Slice[int]{{1, 2}, {3}}), 3)

	is.NoErr(err)
	is.True(found)

	found, err = ContainsElems(ctx, SourceSlice([]Slice[int]{{1, 2}, {3}}), 9)

	is.NoErr(err)
	is.True(!found)
}

func TestTakeDropComplementarity(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	for n := 0; n <= 7; n++ {
		chunks := SourceSlice([]Slice[int]{{1, 2}, {3, 4, 5}, {}, {6}})

		taken, err := ReduceElems(ctx, TakeElems[Slice[int], int](chunks, n), nil, CollectSlice[int]())
		is.NoErr(err)

		rest, err := ReduceElems(ctx, chunks, nil, CollectSlice[int]())
		is.NoErr(err)

		// taken and rest together reproduce the original element sequence
		is.Equal(append(taken, rest...), []int{1, 2, 3, 4, 5, 6})
	}
}
